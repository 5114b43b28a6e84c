package worker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigsClient(t *testing.T) {
	client := NewConfigsClient(testWorkerURL, testInternalAPIKey, nil)
	require.IsType(t, &configsClient{}, client)
	requireBaseClient(t, client.(*configsClient).baseClient)
}

func TestConfigsClientChecklist(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/global/configs/checklist", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(
					w,
					`{
						"apps": {"checked": true, "label": "Create your first app"},
						"smtp": {"checked": false, "label": "Set up email"}
					}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewConfigsClient(server.URL, testInternalAPIKey, nil)
	checklist, err := client.Checklist(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, checklist["apps"].Checked)
	require.False(t, checklist["smtp"].Checked)
}
