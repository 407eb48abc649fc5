package cli_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwidstore/internal/api"
	"hwidstore/internal/cli"
	"hwidstore/internal/factory"
	"hwidstore/internal/testutil"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		AuthService:      app.AuthService,
		Registry:         app.Registry,
		AllowlistService: app.AllowlistService,
		StatsService:     app.StatsService,
		Clock:            app.MockClock,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSubmitAndCheck(t *testing.T) {
	srv := newAPIServer(t)
	client := cli.NewClient(srv.URL, "test-api-key")

	var submit cli.SubmitResult
	err := client.Post("/api/v1/hwid", map[string]any{
		"hwid":     "ABC123",
		"executor": "Synapse",
	}, &submit)
	require.NoError(t, err)
	assert.True(t, submit.Success)
	assert.Equal(t, 1, submit.TotalEntries)

	var check cli.CheckResult
	err = client.Get("/api/v1/hwid/check/ABC123", &check)
	require.NoError(t, err)
	assert.True(t, check.Exists)
	assert.False(t, check.Allowed)
}

func TestClientReportsAPIErrors(t *testing.T) {
	srv := newAPIServer(t)
	client := cli.NewClient(srv.URL, "test-api-key")

	var result cli.ActionResult
	err := client.Post("/api/v1/hwid/allow/NOPE", nil, &result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HWID not found")
	assert.Contains(t, err.Error(), "HWID_NOT_FOUND")
}

func TestClientRejectedWithoutToken(t *testing.T) {
	srv := newAPIServer(t)
	client := cli.NewClient(srv.URL, "")

	var check cli.CheckResult
	err := client.Get("/api/v1/hwid/check/ABC123", &check)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	srv := newAPIServer(t)
	client := cli.NewClient(srv.URL+"/", "")

	var health cli.HealthResult
	err := client.Get("/api/v1/health", &health)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}
