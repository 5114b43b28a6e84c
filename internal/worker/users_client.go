package worker

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

// UsersClient manages users through the worker service.
type UsersClient interface {
	// List returns all users visible to the calling tenant.
	List(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
	) ([]User, error)
	// Save creates or updates a user.
	Save(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		user User,
	) (User, error)
	// Get returns a single user by ID.
	Get(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		id string,
	) (User, error)
	// Delete removes a single user by ID.
	Delete(
		ctx context.Context,
		rctx *apimachinery.RequestContext,
		id string,
	) error
}

type usersClient struct {
	*baseClient
}

// NewUsersClient returns a specialized client for user management.
func NewUsersClient(
	workerURL string,
	internalAPIKey string,
	sink apimachinery.FailureSink,
) UsersClient {
	return &usersClient{
		baseClient: newBaseClient(workerURL, internalAPIKey, sink),
	}
}

func (u *usersClient) List(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
) ([]User, error) {
	users := []User{}
	return users, u.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      "/api/global/users",
			Operation: "list users",
			Sink:      u.sink,
			RespObj:   &users,
		},
	)
}

func (u *usersClient) Save(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	user User,
) (User, error) {
	saved := User{}
	return saved, u.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodPost,
			Path:      "/api/global/users",
			Body:      user,
			Operation: "save user",
			Sink:      u.sink,
			RespObj:   &saved,
		},
	)
}

func (u *usersClient) Get(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	id string,
) (User, error) {
	user := User{}
	return user, u.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodGet,
			Path:      fmt.Sprintf("/api/global/users/%s", id),
			Operation: "get user",
			Sink:      u.sink,
			RespObj:   &user,
		},
	)
}

func (u *usersClient) Delete(
	ctx context.Context,
	rctx *apimachinery.RequestContext,
	id string,
) error {
	return u.ExecuteRequest(
		ctx,
		rctx,
		apimachinery.RequestInit{
			Method:    http.MethodDelete,
			Path:      fmt.Sprintf("/api/global/users/%s", id),
			Operation: "delete user",
			Sink:      u.sink,
		},
	)
}
