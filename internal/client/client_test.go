package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/formulary/internal/api/middleware"
	"github.com/GriffinCanCode/formulary/internal/batch"
	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/config"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/server"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.Timeout = 5 * time.Second
	return cfg
}

// remote starts a real formulary server behind httptest
func remote(t *testing.T) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Development = true
	srv, err := server.New(cfg, server.WithLogger(logging.Nop()))
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(func() {
		ts.Close()
		_ = srv.Shutdown(context.Background())
	})
	return New(ts.URL, fastConfig())
}

func TestCatalogue(t *testing.T) {
	c := remote(t)
	ctx := context.Background()

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])

	services, err := c.Services(ctx, "")
	require.NoError(t, err)
	require.Len(t, services.Services, 1)

	svc, err := c.Service(ctx, "math")
	require.NoError(t, err)
	assert.Equal(t, "math", svc.ID)

	tools, err := c.Tools(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tools)

	found, err := c.Discover(ctx, "sphere volume", 3)
	require.NoError(t, err)
	require.NotEmpty(t, found.Tools)
	assert.Equal(t, "math.solid.sphereVolume", found.Tools[0].ID)
}

func TestExecute(t *testing.T) {
	c := remote(t)
	ctx := context.Background()

	result, err := c.Execute(ctx, "math.solid.sphereVolume", map[string]interface{}{"r": 3}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.InDelta(t, 36*3.141592653589793, result.Data["result"], 1e-9)

	result, err = c.Execute(ctx, "math.space.normalize", map[string]interface{}{"v": []float64{0, 0, 0}}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "zero_vector", result.Data["error_kind"])
}

func TestExecuteErrorsMatchRegistry(t *testing.T) {
	c := remote(t)
	ctx := context.Background()

	_, err := c.Execute(ctx, "weather.today", nil, nil)
	assert.ErrorIs(t, err, service.ErrServiceNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "service not found")

	_, err = c.Execute(ctx, "math", nil, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)

	_, err = c.Service(ctx, "missing")
	assert.ErrorIs(t, err, service.ErrServiceNotFound)

	// rejections leave the breaker alone
	for i := 0; i < 10; i++ {
		_, _ = c.Execute(ctx, "weather.today", nil, nil)
	}
	assert.Equal(t, resilience.StateClosed, c.BreakerState())
}

func TestRunBatch(t *testing.T) {
	c := remote(t)
	file := &batch.File{
		Name: "remote",
		Calls: []batch.Call{
			{ToolID: "math.pi", Expect: &batch.Expectation{Values: map[string]float64{"result": 3.141592653589793}}},
			{ToolID: "math.space.normalize", Params: map[string]interface{}{"v": []interface{}{0.0, 0.0, 0.0}},
				Expect: &batch.Expectation{ErrorKind: "zero_vector"}},
		},
	}

	report, err := c.RunBatch(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Passed)
	assert.True(t, report.OK())

	// the same file through a local runner driving the client
	local, err := batch.NewRunner(c, batch.WithConcurrency(2)).Run(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 2, local.Passed)
}

func TestExecuteForwardsRequestID(t *testing.T) {
	var seen atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.Store(r.Header.Get(middleware.RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"result": 1}}`))
	}))
	defer ts.Close()

	reqID := "run-1"
	result, err := New(ts.URL, fastConfig()).Execute(context.Background(), "math.pi", nil, &types.Context{RequestID: &reqID})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "run-1", seen.Load())
}

func TestRetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "healthy"}`))
	}))
	defer ts.Close()

	health, err := New(ts.URL, fastConfig()).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
	assert.EqualValues(t, 3, hits.Load())
}

func TestBreakerOpensOnServerFailures(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "boom"}`))
	}))
	defer ts.Close()

	cfg := fastConfig()
	cfg.RetryMax = 0
	c := New(ts.URL, cfg)

	for i := 0; i < 5; i++ {
		_, err := c.Health(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "boom", apiErr.Message)
	}
	assert.Equal(t, resilience.StateOpen, c.BreakerState())

	_, err := c.Health(context.Background())
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.EqualValues(t, 5, hits.Load())
}

func TestRateLimitHonoursContext(t *testing.T) {
	cfg := fastConfig()
	cfg.RequestsPerSecond = 0.001
	c := New("http://127.0.0.1:1", cfg)
	// drain the single token
	require.True(t, c.Limiter.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Health(ctx)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, resilience.ErrCircuitOpen))
	assert.Equal(t, uint32(0), c.Breaker.Counts().Requests)
}

func TestAPIError(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).Rejected())
	assert.False(t, (&APIError{StatusCode: 429}).Rejected())
	assert.False(t, (&APIError{StatusCode: 502}).Rejected())
	assert.Equal(t, "server returned 502", (&APIError{StatusCode: 502}).Error())
	assert.True(t, healthy(nil))
	assert.False(t, healthy(errors.New("dial tcp: refused")))
}
