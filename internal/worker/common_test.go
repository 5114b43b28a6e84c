package worker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

const (
	testWorkerURL      = "http://worker.example.com"
	testInternalAPIKey = "budibase"
	testTenantID       = "default"
)

func requireBaseClient(t *testing.T, base *baseClient) {
	require.NotNil(t, base)
	require.NotNil(t, base.BaseClient)
	require.Equal(t, testWorkerURL, base.BaseURL)
	require.Equal(t, testInternalAPIKey, base.InternalAPIKey)
	require.NotNil(t, base.HTTPClient)
}

func TestNewClient(t *testing.T) {
	client, ok := NewClient(
		testWorkerURL,
		testInternalAPIKey,
		apimachinery.RaiseToCaller{},
	).(*client)
	require.True(t, ok)
	require.NotNil(t, client.Email())
	require.NotNil(t, client.Users())
	require.NotNil(t, client.Self())
	require.NotNil(t, client.Configs())
	require.NotNil(t, client.Roles())
}
