// Package http provides the HTTP handlers of the formulary REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: GET /services, GET /services/:id, GET /tools
//   - Discovery: POST /services/discover
//   - Execution: POST /services/execute, POST /services/batch
//
// Formula failures are not HTTP errors: a tool that rejects its input
// answers 200 with success=false and an error_kind. Malformed requests get
// 400, unknown services 404.
//
// Batch bodies may be JSON, YAML or TOML, chosen by Content-Type; the
// report is JSON unless ?format=yaml or ?format=toml asks otherwise.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, log, http.Info{Name: "formulary", Version: "1.0.0"})
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
