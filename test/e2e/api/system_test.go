package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/taskdesk/taskdesk/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	srv := setupServer(t, "")

	t.Run("livez", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/livez")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health tasksdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz reports dependency checks", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/readyz")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var health tasksdk.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
		require.Equal(t, "ok", health.Checks.Signer)
	})
}

func TestDirectoryEndpoint(t *testing.T) {
	ctx := context.Background()

	t.Run("lists and filters upstream users", func(t *testing.T) {
		upstream := fakeDirectoryServer(t)
		srv := setupServer(t, upstream.URL)
		client := tasksdk.NewClient(srv.URL)

		page, err := client.Directory(ctx, "", "", 1)
		require.NoError(t, err)
		require.Len(t, page.Data, 2)
		require.Equal(t, 10, page.PerPage)
		require.Equal(t, 100, page.Total)

		filtered, err := client.Directory(ctx, "female", "", 1)
		require.NoError(t, err)
		require.Len(t, filtered.Data, 1)
		require.Equal(t, "Ada", filtered.Data[0].Name.First)

		searched, err := client.Directory(ctx, "", "turing", 1)
		require.NoError(t, err)
		require.Len(t, searched.Data, 1)
	})

	t.Run("upstream failure maps to 502", func(t *testing.T) {
		srv := setupServer(t, "http://127.0.0.1:1")
		client := tasksdk.NewClient(srv.URL)

		_, err := client.Directory(ctx, "", "", 1)
		requireAPIError(t, err, http.StatusBadGateway)
	})
}
