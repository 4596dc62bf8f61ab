package monitoring

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	m := NewMetrics()
	t.Cleanup(m.Close)
	return m
}

func TestNewMetrics_Independent(t *testing.T) {
	// Two collectors must not collide on registration
	a := newTestMetrics(t)
	b := newTestMetrics(t)

	a.RecordRateLimited()
	assert.Equal(t, 1.0, promtest.ToFloat64(a.RateLimited))
	assert.Equal(t, 0.0, promtest.ToFloat64(b.RateLimited))
}

func TestObserveExecution(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveExecution("math.space.cross", &types.Result{Success: true}, nil, time.Millisecond)
	m.ObserveExecution("math.space.normalize", &types.Result{
		Success: false,
		Data:    map[string]interface{}{"error_kind": "zero_vector"},
	}, nil, time.Millisecond)
	m.ObserveExecution("math.space.normalize", &types.Result{Success: false}, nil, time.Millisecond)
	m.ObserveExecution("nope.tool", nil, errors.New("service not found"), time.Millisecond)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.Evaluations.WithLabelValues("math.space.cross", StatusSuccess)))
	assert.Equal(t, 2.0, promtest.ToFloat64(m.Evaluations.WithLabelValues("math.space.normalize", StatusFailure)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.Evaluations.WithLabelValues("nope.tool", StatusError)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.DomainErrors.WithLabelValues("zero_vector")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.DomainErrors.WithLabelValues("unknown")))

	snap := m.Snapshot()
	assert.Equal(t, int64(4), snap.Evaluations)
	assert.Equal(t, int64(3), snap.FailedEvaluation)
}

func TestTimer(t *testing.T) {
	m := newTestMetrics(t)

	timer := NewTimer(m, "batch")
	d := timer.Stop(StatusSuccess)

	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.Operations.WithLabelValues("batch", StatusSuccess)))
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMetrics(t)

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/services/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for _, path := range []string{"/services/math", "/services/other", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	// Route templates, not raw paths, become labels
	assert.Equal(t, 2.0, promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/services/:id", "200")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", unmatchedPath, "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.GreaterOrEqual(t, snap.AvgLatencyMs, 0.0)
}

func TestHandler(t *testing.T) {
	m := newTestMetrics(t)
	m.ObserveExecution("math.pi", &types.Result{Success: true}, nil, time.Microsecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `formulary_evaluations_total{status="success",tool="math.pi"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestClose_Idempotent(t *testing.T) {
	m := NewMetrics()
	m.Close()
	assert.NotPanics(t, m.Close)
}
