package server

import "context"

// Server defines the lifecycle of the query endpoint.
//
// Run blocks until ctx is cancelled, a stop signal arrives, or the listener
// fails. Shutdown may be called from another goroutine.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error

	// Addr returns the bound listener address.
	Addr() string
}
