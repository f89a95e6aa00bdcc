package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a termination
	// signal arrives, then shuts down gracefully. It returns the listener
	// error if serving fails before that.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
