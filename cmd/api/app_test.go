package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pointboard/internal/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		Env:  "test",
		Port: "0",
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLiteName: "app-" + uuid.NewString(),
		},
	}
}

func newTestApp(t *testing.T, cfg *config.AppConfig) *application {
	t.Helper()
	a, err := buildApp(context.Background(), cfg, zap.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func get(t *testing.T, a *application, target string) (*http.Response, string) {
	t.Helper()
	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestBuildApp_Wiring(t *testing.T) {
	a := newTestApp(t, testConfig(t))

	resp, _ := get(t, a, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, a, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/points", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, body := get(t, a, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/points",status="404"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds")

	resp, body = get(t, a, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "PointBoard API")
}

func TestBuildApp_Seed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
points:
  - id: 3f1c2b4a-5d6e-4f70-8a9b-0c1d2e3f4a5b
    x: 1
    y: 2
    radius: 3
    color: "#123456"
    comments:
      - text: seeded
        backgroundColor: "#FFFFFF"
`), 0o600))

	cfg := testConfig(t)
	cfg.SeedFile = path
	a := newTestApp(t, cfg)

	resp, body := get(t, a, "/api/points/3f1c2b4a-5d6e-4f70-8a9b-0c1d2e3f4a5b/comments")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "seeded")
}

func TestBuildApp_BadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("points:\n  - radius: 0\n    color: \"#000000\"\n"), 0o600))

	cfg := testConfig(t)
	cfg.SeedFile = path
	_, err := buildApp(context.Background(), cfg, zap.NewNop(), prometheus.NewRegistry())
	assert.ErrorContains(t, err, "seed")
}

func TestBuildApp_StaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>board</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o600))

	cfg := testConfig(t)
	cfg.StaticDir = dir
	a := newTestApp(t, cfg)

	resp, body := get(t, a, "/app.js")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "console.log(1)", body)

	resp, body = get(t, a, "/some/client/route")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "board")

	resp, _ = get(t, a, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
