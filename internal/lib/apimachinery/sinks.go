package apimachinery

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"
)

// RequestFailedError represents a remote service having rejected a request.
// Message is the fully composed, human-readable failure text and StatusCode
// is the status the remote responded with.
type RequestFailedError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// FailureSink is a capability for surfacing a failed remote call. Callers
// select an implementation explicitly: RaiseToCaller hands the failure back
// as an ordinary error; RespondThrough additionally writes it to an ambient
// HTTP response channel.
type FailureSink interface {
	// Fail records a failure with the given status code and composed message
	// and returns the error the caller should propagate.
	Fail(statusCode int, message string) error
}

// RaiseToCaller is a FailureSink that surfaces failures as plain errors.
type RaiseToCaller struct{}

func (RaiseToCaller) Fail(statusCode int, message string) error {
	return &RequestFailedError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// RespondThrough is a FailureSink that writes failures to an HTTP response
// as a JSON body carrying the original status code, then returns the same
// failure so the caller can stop processing.
type RespondThrough struct {
	W http.ResponseWriter
}

func (r RespondThrough) Fail(statusCode int, message string) error {
	failure := &RequestFailedError{
		StatusCode: statusCode,
		Message:    message,
	}
	r.W.Header().Set("Content-Type", "application/json")
	r.W.WriteHeader(statusCode)
	responseBody, err := json.Marshal(failure)
	if err != nil {
		log.Println(errors.Wrap(err, "error marshaling failure response body"))
	}
	if _, err := r.W.Write(responseBody); err != nil {
		log.Println(errors.Wrap(err, "error writing failure response body"))
	}
	return failure
}
