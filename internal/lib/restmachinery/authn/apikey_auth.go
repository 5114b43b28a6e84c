// Package authn provides request authentication filters.
package authn

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/lib/restmachinery"
	"github.com/adrinr/budibase/internal/meta"
)

type principalContextKey struct{}

// ContextWithCaller returns a context carrying the ID of the authenticated
// caller. An empty ID marks the internal service principal.
func ContextWithCaller(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, principalContextKey{}, userID)
}

// CallerFromContext returns the authenticated caller's user ID from a
// context, or an empty string for the internal service principal.
func CallerFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(principalContextKey{}).(string)
	return userID
}

// FindUserIDFn resolves a personal API key to the ID of the user owning it.
type FindUserIDFn func(apiKey string) (string, error)

type apiKeyAuthFilter struct {
	internalAPIKey string
	findUserID     FindUserIDFn
}

// NewAPIKeyAuthFilter returns a restmachinery.Filter that authenticates
// requests by API key header: either the internal service key or a user's
// personal key.
func NewAPIKeyAuthFilter(
	internalAPIKey string,
	findUserID FindUserIDFn,
) restmachinery.Filter {
	return &apiKeyAuthFilter{
		internalAPIKey: internalAPIKey,
		findUserID:     findUserID,
	}
}

func (a *apiKeyAuthFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(header.APIKey)
		if apiKey == "" {
			a.writeResponse(
				w,
				http.StatusUnauthorized,
				&meta.ErrAuthentication{
					Reason: "API key header is missing.",
				},
			)
			return
		}

		// Is it the internal service key?
		if a.internalAPIKey != "" && apiKey == a.internalAPIKey {
			ctx := ContextWithCaller(r.Context(), "")
			handle(w, r.WithContext(ctx))
			return
		}

		// Is it a user's personal key?
		userID, err := a.findUserID(apiKey)
		if err != nil {
			if _, ok := errors.Cause(err).(*meta.ErrNotFound); ok {
				a.writeResponse(
					w,
					http.StatusUnauthorized,
					&meta.ErrAuthentication{
						Reason: "API key is not recognized.",
					},
				)
				return
			}
			log.Println(err)
			a.writeResponse(
				w,
				http.StatusInternalServerError,
				&meta.ErrInternalServer{},
			)
			return
		}
		ctx := ContextWithCaller(r.Context(), userID)
		handle(w, r.WithContext(ctx))
	}
}

func (a *apiKeyAuthFilter) writeResponse(
	w http.ResponseWriter,
	statusCode int,
	response interface{},
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	responseBody, err := json.Marshal(response)
	if err != nil {
		log.Println(errors.Wrap(err, "error marshaling response body"))
	}
	if _, err := w.Write(responseBody); err != nil {
		log.Println(errors.Wrap(err, "error writing response body"))
	}
}
