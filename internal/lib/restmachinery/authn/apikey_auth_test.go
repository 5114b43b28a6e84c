package authn

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/meta"
)

const testInternalAPIKey = "budibase"

func TestAPIKeyAuthFilterWithHeaderMissing(t *testing.T) {
	a := NewAPIKeyAuthFilter(testInternalAPIKey, nil)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handlerCalled := false
	a.Decorate(func(http.ResponseWriter, *http.Request) {
		handlerCalled = true
	})(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, handlerCalled)
}

func TestAPIKeyAuthFilterWithInternalKey(t *testing.T) {
	a := NewAPIKeyAuthFilter(testInternalAPIKey, nil)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set(header.APIKey, testInternalAPIKey)
	rr := httptest.NewRecorder()
	handlerCalled := false
	a.Decorate(func(_ http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		require.Empty(t, CallerFromContext(r.Context()))
	})(rr, req)
	require.True(t, handlerCalled)
}

func TestAPIKeyAuthFilterWithUserKey(t *testing.T) {
	a := NewAPIKeyAuthFilter(
		testInternalAPIKey,
		func(apiKey string) (string, error) {
			require.Equal(t, "bb_key", apiKey)
			return "us_1", nil
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set(header.APIKey, "bb_key")
	rr := httptest.NewRecorder()
	handlerCalled := false
	a.Decorate(func(_ http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		require.Equal(t, "us_1", CallerFromContext(r.Context()))
	})(rr, req)
	require.True(t, handlerCalled)
}

func TestAPIKeyAuthFilterWithUnrecognizedKey(t *testing.T) {
	a := NewAPIKeyAuthFilter(
		testInternalAPIKey,
		func(string) (string, error) {
			return "", &meta.ErrNotFound{Type: "APIKey"}
		},
	)
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	req.Header.Set(header.APIKey, "nope")
	rr := httptest.NewRecorder()
	handlerCalled := false
	a.Decorate(func(http.ResponseWriter, *http.Request) {
		handlerCalled = true
	})(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, handlerCalled)
}
