/*
Package monitoring provides Prometheus metrics for the formulary service.

# Overview

Each Metrics value owns a private prometheus.Registry. It tracks HTTP
traffic, formula evaluations by tool and outcome, failed evaluations by
error kind, timed batch operations and uptime.

# Usage

	metrics := monitoring.NewMetrics()
	defer metrics.Close()

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Feed evaluations from the service registry
	registry := service.NewRegistry(service.WithObserver(metrics))

	// Time operations
	timer := monitoring.NewTimer(metrics, "batch")
	// ... run the batch ...
	timer.Stop(monitoring.StatusSuccess)
*/
package monitoring
