package server

// Server is the lifecycle contract for transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and releases its resources.
	Shutdown()
}
