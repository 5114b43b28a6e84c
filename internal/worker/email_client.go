package worker

import (
	"context"
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// EmailClient sends email through the worker service.
type EmailClient interface {
	// Send asks the worker service to send one email.
	Send(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		req SendEmailRequest,
	) (SendEmailResponse, error)
}

type emailClient struct {
	*baseClient
}

// NewEmailClient returns a specialized client for sending email.
func NewEmailClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) EmailClient {
	return &emailClient{
		baseClient: newBaseClient(workerURL, internalAPIKey, sink),
	}
}

func (e *emailClient) Send(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	req SendEmailRequest,
) (SendEmailResponse, error) {
	resp := SendEmailResponse{}
	return resp, e.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodPost,
			Path:      "/api/global/email/send",
			Body:      req,
			Operation: "send email",
			Sink:      e.sink,
			RespObj:   &resp,
		},
	)
}
