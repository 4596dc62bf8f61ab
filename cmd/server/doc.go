// Package main is the entry point for the formulary HTTP server.
//
// The server exposes the formula catalogue over REST: listing and
// discovering tools, executing a single tool, and running batch files
// with expected values.
//
// Configuration:
//   - Defaults suitable for development
//   - Optional YAML or TOML file (-config)
//   - Environment variables (12-factor)
//   - CLI flags (override everything else)
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -config /etc/formulary.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
