package server

import "context"

// Server is a runnable transport server.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done or the listener fails. It may be called
	// once.
	Run(ctx context.Context) error

	Shutdown()
}
