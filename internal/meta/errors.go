package meta

import (
	"encoding/json"
	"fmt"
)

// ErrAuthentication represents an error wherein a request to the API could
// not be authenticated.
type ErrAuthentication struct {
	// Reason is a natural language explanation for why authentication failed.
	Reason string `json:"reason,omitempty"`
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

// MarshalJSON amends ErrAuthentication instances with a message field so
// that callers can surface failure detail without knowing the error type.
func (e ErrAuthentication) MarshalJSON() ([]byte, error) {
	type Alias ErrAuthentication
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}

// ErrAuthorization represents an error wherein an authenticated caller lacks
// permission to carry out the requested operation.
type ErrAuthorization struct{}

func (e *ErrAuthorization) Error() string {
	return "The request is not authorized."
}

func (e ErrAuthorization) MarshalJSON() ([]byte, error) {
	type Alias ErrAuthorization
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}

// ErrBadRequest represents an error wherein a request was invalid.
type ErrBadRequest struct {
	// Reason is a natural language explanation for why the request was invalid.
	Reason string `json:"reason,omitempty"`
	// Details optionally enumerates specific problems with the request, e.g.
	// outputs from request body validation.
	Details []string `json:"details,omitempty"`
}

func (e *ErrBadRequest) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("Bad request: %s", e.Reason)
	}
	msg := fmt.Sprintf("Bad request: %s:", e.Reason)
	for i, detail := range e.Details {
		msg = fmt.Sprintf("%s\n  %d. %s", msg, i, detail)
	}
	return msg
}

func (e ErrBadRequest) MarshalJSON() ([]byte, error) {
	type Alias ErrBadRequest
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}

// NewErrBadRequest returns an *ErrBadRequest with the given reason and
// optional details.
func NewErrBadRequest(reason string, details ...string) *ErrBadRequest {
	return &ErrBadRequest{
		Reason:  reason,
		Details: details,
	}
}

// ErrNotFound represents an error wherein a requested resource does not
// exist.
type ErrNotFound struct {
	// Type identifies the type of the resource that was not found.
	Type string `json:"type,omitempty"`
	// ID identifies the specific resource that was not found.
	ID string `json:"id,omitempty"`
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found.", e.Type, e.ID)
}

func (e ErrNotFound) MarshalJSON() ([]byte, error) {
	type Alias ErrNotFound
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}

// ErrConflict represents an error wherein a request cannot be completed
// because it would violate some constraint, e.g. a uniqueness constraint.
type ErrConflict struct {
	// Type identifies the type of the resource involved in the conflict.
	Type string `json:"type,omitempty"`
	// ID identifies the specific resource involved in the conflict.
	ID string `json:"id,omitempty"`
	// Reason is a natural language explanation of the conflict.
	Reason string `json:"reason,omitempty"`
}

func (e *ErrConflict) Error() string {
	return e.Reason
}

func (e ErrConflict) MarshalJSON() ([]byte, error) {
	type Alias ErrConflict
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}

// ErrInternalServer represents a condition wherein the server has encountered
// an unexpected error and does not wish to communicate further details of
// that error to the caller.
type ErrInternalServer struct{}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}

func (e ErrInternalServer) MarshalJSON() ([]byte, error) {
	type Alias ErrInternalServer
	return json.Marshal(
		struct {
			Message string `json:"message"`
			Alias   `json:",inline"`
		}{
			Message: (&e).Error(),
			Alias:   (Alias)(e),
		},
	)
}
