package worker

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// RolesClient manages app roles through the worker service.
type RolesClient interface {
	// Get returns the roles defined for one app.
	Get(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		appID string,
	) (AppRoles, error)
	// Remove deletes all roles defined for one app, e.g. when the app itself
	// is deleted.
	Remove(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		appID string,
	) error
}

type rolesClient struct {
	*baseClient
}

// NewRolesClient returns a specialized client for app role management.
func NewRolesClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) RolesClient {
	return &rolesClient{
		baseClient: newBaseClient(workerURL, internalAPIKey, sink),
	}
}

func (r *rolesClient) Get(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	appID string,
) (AppRoles, error) {
	roles := AppRoles{}
	return roles, r.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      fmt.Sprintf("/api/global/roles/%s", appID),
			Operation: "get roles",
			Sink:      r.sink,
			RespObj:   &roles,
		},
	)
}

func (r *rolesClient) Remove(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	appID string,
) error {
	return r.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodDelete,
			Path:      fmt.Sprintf("/api/global/roles/%s", appID),
			Operation: "remove roles",
			Sink:      r.sink,
		},
	)
}
