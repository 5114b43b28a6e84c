package worker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

func TestNewSelfClient(t *testing.T) {
	client := NewSelfClient(testWorkerURL, testInternalAPIKey, nil)
	require.IsType(t, &selfClient{}, client)
	requireBaseClient(t, client.(*selfClient).baseClient)
}

func TestSelfClientGenerateAPIKey(t *testing.T) {
	inbound := http.Header{}
	inbound.Set(header.SessionID, "se_1")
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/global/self/api_key", r.URL.Path)
				require.Equal(t, "se_1", r.Header.Get(header.SessionID))
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"userId": "us_1", "apiKey": "bb_key"}`)
			},
		),
	)
	defer server.Close()
	client := NewSelfClient(server.URL, testInternalAPIKey, nil)
	key, err := client.GenerateAPIKey(
		context.Background(),
		&apimachinery.RequestContext{Headers: inbound},
	)
	require.NoError(t, err)
	require.Equal(t, "bb_key", key.APIKey)
}

func TestSelfClientFetchAPIKey(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/global/self/api_key", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"userId": "us_1", "apiKey": "bb_key"}`)
			},
		),
	)
	defer server.Close()
	client := NewSelfClient(server.URL, testInternalAPIKey, nil)
	key, err := client.FetchAPIKey(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "us_1", key.UserID)
	require.Equal(t, "bb_key", key.APIKey)
}
