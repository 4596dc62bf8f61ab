// Package config provides 12-factor configuration for the formulary service.
//
// Values come from three layers, later ones winning: built-in defaults, an
// optional YAML or TOML file, and environment variables. CLI flags in
// cmd/server override all three.
//
// Configuration Sections:
//   - Server: listen address and HTTP timeouts
//   - Logging: level, development mode, output format
//   - RateLimit: per-IP or global token buckets
//   - CORS: allowed origins
//   - Metrics: Prometheus endpoint
//
// Example Usage:
//
//	cfg, err := config.LoadFile("formulary.yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("listening on", cfg.Server.Addr())
//
// Environment Variables:
//   - PORT, HOST, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_SHUTDOWN_TIMEOUT
//   - LOG_LEVEL, LOG_DEV, LOG_FORMAT
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED, RATE_LIMIT_GLOBAL, RATE_LIMIT_CLIENT_TTL
//   - CORS_ORIGINS (comma separated)
//   - METRICS_ENABLED, METRICS_PATH
package config
