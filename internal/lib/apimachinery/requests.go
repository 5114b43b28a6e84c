// Package apimachinery removes the tedium from service-to-service HTTP
// calls: it assembles outbound requests from an inbound request context
// (forwarding only an allow-listed set of headers, scoping to a tenant,
// stamping a correlation ID) and normalizes responses into parsed JSON
// payloads or descriptive failures.
package apimachinery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/adrinr/budibase/internal/header"
)

// RequestContext describes the inbound request on whose behalf an outbound
// call is made. It is read-only input to BuildRequest and never reaches the
// transport layer.
type RequestContext struct {
	// Headers are the inbound request's headers. Nil describes a
	// system-to-system call with no end-user session; the configured internal
	// API key is attached in that case.
	Headers http.Header
	// TenantID scopes the outbound call to a tenant. Callers thread this
	// explicitly; there is no ambient current-tenant lookup.
	TenantID string
}

// RequestInit models the caller-specified portion of an outbound call.
type RequestInit struct {
	// Method specifies the HTTP method to be used.
	Method string
	// Path specifies a path (relative to the remote service's base URL) to be
	// used.
	Path string
	// QueryParams optionally specifies any URL query parameters to be used.
	QueryParams map[string]string
	// Headers optionally specifies headers to be used, in any supported shape.
	Headers HeaderInput
	// Body optionally provides an object that can be marshaled to create the
	// body of the HTTP request. A nil or empty object produces no body.
	Body interface{}
	// Operation is a short label for the attempted operation, used only in
	// composed failure messages.
	Operation string
	// Sink selects how a failed call is surfaced. Nil means RaiseToCaller.
	Sink FailureSink
	// RespObj optionally provides an object into which the HTTP response body
	// can be unmarshaled.
	RespObj interface{}
}

// OutboundRequest is a fully assembled outbound call. It carries no
// reference to the RequestContext it was built from.
type OutboundRequest struct {
	Method  string
	URL     string
	Headers http.Header
	// Body is the JSON serialization of the request body, or nil when the
	// request has no body.
	Body []byte

	// bodyErr defers a body serialization problem to SubmitRequest so that
	// BuildRequest itself cannot fail.
	bodyErr error
}

// BaseClient provides the machinery shared by all specialized service
// clients.
type BaseClient struct {
	// BaseURL locates the remote service.
	BaseURL string
	// InternalAPIKey optionally authenticates system-to-system calls, i.e.
	// calls made with no inbound request context.
	InternalAPIKey string
	// HTTPClient is the transport used for outbound calls. Nil means
	// http.DefaultClient.
	HTTPClient *http.Client
}

// BuildRequest assembles an OutboundRequest from an optional inbound request
// context and a RequestInit. It is infallible: malformed header inputs are
// tolerated by normalization and body serialization problems are deferred to
// SubmitRequest.
func (b *BaseClient) BuildRequest(
	rctx *RequestContext,
	init RequestInit,
) OutboundRequest {
	headers := init.Headers.normalize()

	if rctx == nil || rctx.Headers == nil {
		if b.InternalAPIKey != "" {
			headers.Set(header.APIKey, b.InternalAPIKey)
		}
	} else {
		for _, name := range header.Forwarded {
			for _, value := range rctx.Headers.Values(name) {
				headers.Add(name, value)
			}
		}
	}

	if rctx != nil && rctx.TenantID != "" {
		headers.Set(header.TenantID, rctx.TenantID)
	}

	req := OutboundRequest{
		Method:  init.Method,
		URL:     joinURL(b.BaseURL, init.Path),
		Headers: headers,
	}

	if len(init.QueryParams) > 0 {
		q := url.Values{}
		for k, v := range init.QueryParams {
			q.Set(k, v)
		}
		req.URL = fmt.Sprintf("%s?%s", req.URL, q.Encode())
	}

	if init.Body != nil {
		bodyBytes, err := json.Marshal(init.Body)
		if err != nil {
			req.bodyErr = errors.Wrap(err, "error marshaling request body")
		} else if !emptyJSON(bodyBytes) {
			headers.Set("Content-Type", "application/json")
			req.Body = bodyBytes
		}
	}

	correlationID := ""
	if rctx != nil && rctx.Headers != nil {
		correlationID = rctx.Headers.Get(header.CorrelationID)
	}
	if correlationID == "" {
		correlationID = uuid.NewV4().String()
	}
	headers.Set(header.CorrelationID, correlationID)

	return req
}

// SubmitRequest performs the network round trip described by an
// OutboundRequest and returns the raw HTTP response.
func (b *BaseClient) SubmitRequest(
	ctx context.Context,
	req OutboundRequest,
) (*http.Response, error) {
	if req.bodyErr != nil {
		return nil, req.bodyErr
	}
	var reqBodyReader io.Reader
	if len(req.Body) > 0 {
		reqBodyReader = bytes.NewBuffer(req.Body)
	}
	r, err := http.NewRequest(req.Method, req.URL, reqBodyReader)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			req.Method,
			req.URL,
		)
	}
	r = r.WithContext(ctx)
	for name, values := range req.Headers {
		for _, value := range values {
			r.Header.Add(name, value)
		}
	}
	httpClient := b.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(r)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking remote service")
	}
	return resp, nil
}

// ExecuteRequest builds, submits, and checks a single outbound call, and
// decodes the response body into init.RespObj when one is provided.
func (b *BaseClient) ExecuteRequest(
	ctx context.Context,
	rctx *RequestContext,
	init RequestInit,
) error {
	resp, err := b.SubmitRequest(ctx, b.BuildRequest(rctx, init))
	if err != nil {
		return err
	}
	respBody, err := CheckResponse(resp, init.Operation, init.Sink)
	if err != nil {
		return err
	}
	if init.RespObj != nil {
		if err := json.Unmarshal(respBody, init.RespObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
	}
	return nil
}

// CheckResponse interprets a received HTTP response. A status < 300 yields
// the response body as raw JSON; a body that is not valid JSON on this path
// is a malformed response and surfaces as an error. A status >= 300 is
// composed into a failure of the form "Unable to <operation> - <detail>",
// with detail drawn from the JSON body's message field when the response is
// JSON, and routed through the given FailureSink. A nil sink raises to the
// caller.
func CheckResponse(
	resp *http.Response,
	operation string,
	sink FailureSink,
) (json.RawMessage, error) {
	if sink == nil {
		sink = RaiseToCaller{}
	}
	defer resp.Body.Close()
	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading response body")
	}
	if resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(bodyBytes))
		if isJSONContentType(resp.Header.Get("Content-Type")) {
			parsed := struct {
				Message string `json:"message"`
			}{}
			if err := json.Unmarshal(bodyBytes, &parsed); err == nil &&
				parsed.Message != "" {
				detail = parsed.Message
			}
		}
		statusCode := resp.StatusCode
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		return nil, sink.Fail(
			statusCode,
			fmt.Sprintf("Unable to %s - %s", operation, detail),
		)
	}
	if !json.Valid(bodyBytes) {
		return nil, errors.Errorf(
			"error parsing response to %s: body is not valid JSON",
			operation,
		)
	}
	return json.RawMessage(bodyBytes), nil
}

func isJSONContentType(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// emptyJSON reports whether marshaled body bytes describe a body that should
// not be sent at all.
func emptyJSON(bodyBytes []byte) bool {
	trimmed := string(bytes.TrimSpace(bodyBytes))
	return trimmed == "" || trimmed == "{}" || trimmed == "null"
}
