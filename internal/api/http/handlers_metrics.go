package http

import (
	"github.com/GriffinCanCode/formulary/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps handlers with metrics tracking. A nil receiver or
// nil metrics turns every call into a no-op, so handlers work with metrics
// disabled.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// Track starts timing an operation; call the returned func with its status
func (hm *HandlerMetrics) Track(operation string) func(status string) {
	if hm == nil || hm.metrics == nil {
		return func(string) {}
	}
	timer := monitoring.NewTimer(hm.metrics, operation)
	return func(status string) {
		timer.Stop(status)
	}
}

// Snapshot returns current headline metrics, if enabled
func (hm *HandlerMetrics) Snapshot() (monitoring.Snapshot, bool) {
	if hm == nil || hm.metrics == nil {
		return monitoring.Snapshot{}, false
	}
	return hm.metrics.Snapshot(), true
}
