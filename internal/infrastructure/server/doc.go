// Package server assembles the formulary HTTP service.
//
// New wires the pieces in order:
//  1. Logger from the logging section (or WithLogger)
//  2. Prometheus metrics, when enabled
//  3. Service registry with the math provider
//  4. Middleware: recovery, request IDs, access log, metrics, CORS,
//     rate limiting and the body size cap
//  5. Routes for the catalogue, discovery, execution and batches
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	go srv.Run()
//	defer srv.Shutdown(ctx)
package server
