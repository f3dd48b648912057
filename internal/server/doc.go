// Package server runs the loopback query endpoint: listen, serve until a
// stop signal or context cancellation, then shut down gracefully.
package server
