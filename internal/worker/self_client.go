package worker

import (
	"context"
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// SelfClient manages resources belonging to the calling user.
type SelfClient interface {
	// GenerateAPIKey creates (or rotates) the calling user's personal API key.
	GenerateAPIKey(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
	) (APIKey, error)
	// FetchAPIKey returns the calling user's personal API key.
	FetchAPIKey(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
	) (APIKey, error)
}

type selfClient struct {
	*baseClient
}

// NewSelfClient returns a specialized client for the calling user's own
// resources.
func NewSelfClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) SelfClient {
	return &selfClient{
		baseClient: newBaseClient(workerURL, internalAPIKey, sink),
	}
}

func (s *selfClient) GenerateAPIKey(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
) (APIKey, error) {
	key := APIKey{}
	return key, s.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodPost,
			Path:      "/api/global/self/api_key",
			Operation: "generate API key",
			Sink:      s.sink,
			RespObj:   &key,
		},
	)
}

func (s *selfClient) FetchAPIKey(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
) (APIKey, error) {
	key := APIKey{}
	return key, s.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      "/api/global/self/api_key",
			Operation: "fetch API key",
			Sink:      s.sink,
			RespObj:   &key,
		},
	)
}
