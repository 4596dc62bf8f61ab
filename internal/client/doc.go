// Package client is a typed HTTP client for a remote formulary server.
//
// Requests go through resty on top of a retryablehttp transport, so
// connection errors and 5xx responses are retried with backoff. A token
// bucket paces outgoing calls and a circuit breaker stops hammering a
// server that keeps failing. Rejections by a healthy server (4xx) do not
// trip the breaker.
//
// Client satisfies batch.Executor, so batch files run against a remote
// server exactly as they do against a local registry.
package client
