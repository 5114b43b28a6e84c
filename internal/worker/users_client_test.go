package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adrinr/budibase/internal/header"
	"github.com/adrinr/budibase/internal/lib/apimachinery"
)

func TestNewUsersClient(t *testing.T) {
	client := NewUsersClient(testWorkerURL, testInternalAPIKey, nil)
	require.IsType(t, &usersClient{}, client)
	requireBaseClient(t, client.(*usersClient).baseClient)
}

func TestUsersClientList(t *testing.T) {
	testUsers := []User{
		{
			ID:    "us_1",
			Email: "tony@starkindustries.com",
		},
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/global/users", r.URL.Path)
				require.Equal(t, testTenantID, r.Header.Get(header.TenantID))
				bodyBytes, err := json.Marshal(testUsers)
				require.NoError(t, err)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testInternalAPIKey, nil)
	users, err := client.List(
		context.Background(),
		&apimachinery.RequestContext{TenantID: testTenantID},
	)
	require.NoError(t, err)
	require.Equal(t, testUsers, users)
}

func TestUsersClientSave(t *testing.T) {
	testUser := User{
		Email:    "tony@starkindustries.com",
		TenantID: testTenantID,
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/global/users", r.URL.Path)
				require.Equal(
					t,
					"application/json",
					r.Header.Get("Content-Type"),
				)
				received := User{}
				require.NoError(
					t,
					json.NewDecoder(r.Body).Decode(&received),
				)
				require.Equal(t, testUser.Email, received.Email)
				received.ID = "us_1"
				bodyBytes, err := json.Marshal(received)
				require.NoError(t, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testInternalAPIKey, nil)
	saved, err := client.Save(context.Background(), nil, testUser)
	require.NoError(t, err)
	require.Equal(t, "us_1", saved.ID)
}

func TestUsersClientGet(t *testing.T) {
	testUser := User{
		ID:    "us_1",
		Email: "tony@starkindustries.com",
	}
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/global/users/us_1", r.URL.Path)
				bodyBytes, err := json.Marshal(testUser)
				require.NoError(t, err)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, string(bodyBytes))
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testInternalAPIKey, nil)
	user, err := client.Get(context.Background(), nil, "us_1")
	require.NoError(t, err)
	require.Equal(t, testUser, user)
}

func TestUsersClientGetNotFound(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprintln(w, `{"message": "not found"}`)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testInternalAPIKey, nil)
	_, err := client.Get(context.Background(), nil, "us_1")
	require.Error(t, err)
	require.Equal(t, "Unable to get user - not found", err.Error())
}

func TestUsersClientDelete(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/global/users/us_1", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintln(w, `{"message": "User deleted."}`)
			},
		),
	)
	defer server.Close()
	client := NewUsersClient(server.URL, testInternalAPIKey, nil)
	err := client.Delete(context.Background(), nil, "us_1")
	require.NoError(t, err)
}
