package server

import (
	"context"
	"io"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/formulary/internal/api/middleware"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/config"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/tests/helpers/testutil"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Logging.Development = true
	return cfg
}

func newServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	srv, err := New(cfg, WithLogger(logging.Nop()))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func serve(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Level = "loud"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newServer(t, testConfig())

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{nethttp.MethodGet, "/", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/health", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/services", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/services/math", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/tools", "", nethttp.StatusOK},
		{nethttp.MethodPost, "/services/discover", `{"query": "sphere volume"}`, nethttp.StatusOK},
		{nethttp.MethodPost, "/services/execute", `{"tool_id": "math.solid.sphereVolume", "params": {"r": 1}}`, nethttp.StatusOK},
		{nethttp.MethodPost, "/services/batch", `{"calls": [{"tool_id": "math.pi"}]}`, nethttp.StatusOK},
		{nethttp.MethodGet, "/metrics", "", nethttp.StatusOK},
		{nethttp.MethodGet, "/nope", "", nethttp.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := serve(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}

	w := serve(t, srv, nethttp.MethodGet, "/metrics", "")
	assert.Contains(t, w.Body.String(), "formulary_http_requests_total")
}

func TestExtraProviders(t *testing.T) {
	extra := testutil.NewMockServiceProvider(t, "units")
	msg := "no such tool"
	extra.On("Execute", mock.Anything, "units.x", mock.Anything, mock.Anything).
		Return(&types.Result{Success: false, Error: &msg}, nil)

	srv, err := New(testConfig(), WithLogger(logging.Nop()), WithProviders(extra))
	require.NoError(t, err)
	defer func() { _ = srv.Shutdown(context.Background()) }()

	_, ok := srv.Registry().Get("units")
	assert.True(t, ok)
	w := serve(t, srv, nethttp.MethodPost, "/services/execute", `{"tool_id": "units.x"}`)
	assert.Equal(t, nethttp.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no such tool")
	extra.AssertExpectations(t)

	_, err = New(testConfig(), WithLogger(logging.Nop()), WithProviders(testutil.NewMockServiceProvider(t, "math")))
	assert.Error(t, err)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	srv := newServer(t, cfg)

	assert.Equal(t, nethttp.StatusNotFound, serve(t, srv, nethttp.MethodGet, "/metrics", "").Code)
	assert.Equal(t, nethttp.StatusOK, serve(t, srv, nethttp.MethodGet, "/health", "").Code)
}

func TestRateLimitRejects(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RequestsPerSecond = 1
	cfg.RateLimit.Burst = 1
	srv := newServer(t, cfg)

	assert.Equal(t, nethttp.StatusOK, serve(t, srv, nethttp.MethodGet, "/", "").Code)
	assert.Equal(t, nethttp.StatusTooManyRequests, serve(t, srv, nethttp.MethodGet, "/", "").Code)

	w := serve(t, srv, nethttp.MethodGet, "/metrics", "")
	assert.Equal(t, nethttp.StatusTooManyRequests, w.Code)
	assert.Equal(t, 2.0, counterValue(t, srv))
}

func counterValue(t *testing.T, srv *Server) float64 {
	t.Helper()
	families, err := srv.metrics.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "formulary_http_rate_limited_total" {
			return f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestBodyLimit(t *testing.T) {
	srv := newServer(t, testConfig())

	body := `{"tool_id": "math.pi", "params": {"pad": "` + strings.Repeat("x", 2<<20) + `"}}`
	w := serve(t, srv, nethttp.MethodPost, "/services/execute", body)
	assert.Equal(t, nethttp.StatusRequestEntityTooLarge, w.Code)
}

func TestServeAndShutdown(t *testing.T) {
	srv, err := New(testConfig(), WithLogger(logging.Nop()))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	resp, err := nethttp.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-done)
}
