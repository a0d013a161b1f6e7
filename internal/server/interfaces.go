package server

// Server is the lifecycle of the rental API process: [Run] serves until a
// stop signal arrives, [Shutdown] drains in-flight requests and returns.
type Server interface {
	// Run starts serving and blocks until the server is stopped.
	Run()

	// Shutdown stops the server gracefully.
	Shutdown()
}
