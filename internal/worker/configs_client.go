package worker

import (
	"context"
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// ConfigsClient reads global configuration from the worker service.
type ConfigsClient interface {
	// Checklist returns the tenant's setup checklist.
	Checklist(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
	) (Checklist, error)
}

type configsClient struct {
	*baseClient
}

// NewConfigsClient returns a specialized client for global configuration.
func NewConfigsClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) ConfigsClient {
	return &configsClient{
		baseClient: newBaseClient(workerURL, internalAPIKey, sink),
	}
}

func (c *configsClient) Checklist(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
) (Checklist, error) {
	checklist := Checklist{}
	return checklist, c.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      "/api/global/configs/checklist",
			Operation: "fetch checklist",
			Sink:      c.sink,
			RespObj:   &checklist,
		},
	)
}
