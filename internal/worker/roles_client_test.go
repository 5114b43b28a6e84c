package worker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRolesClient(t *testing.T) {
	client := NewRolesClient(testWorkerURL, testInternalAPIKey, nil)
	require.IsType(t, &rolesClient{}, client)
	requireBaseClient(t, client.(*rolesClient).baseClient)
}

func TestRolesClientGet(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/global/roles/app_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(
					w,
					`{"roles": [{"_id": "ro_1", "name": "PUBLIC"}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewRolesClient(server.URL, testInternalAPIKey, nil)
	roles, err := client.Get(context.Background(), nil, "app_1")
	require.NoError(t, err)
	require.Len(t, roles.Roles, 1)
	require.Equal(t, "PUBLIC", roles.Roles[0].Name)
}

func TestRolesClientRemove(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/global/roles/app_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"message": "Roles deleted."}`)
			},
		),
	)
	defer server.Close()
	client := NewRolesClient(server.URL, testInternalAPIKey, nil)
	err := client.Remove(context.Background(), nil, "app_1")
	require.NoError(t, err)
}
