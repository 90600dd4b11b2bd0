package server

// Server owns the API listener and, when configured, the metrics listener.
type Server interface {
	// RunServer serves until a termination signal arrives or a listener
	// fails, then shuts both listeners down.
	RunServer()

	// Shutdown stops every listener, letting in-flight requests finish
	// within the shutdown timeout.
	Shutdown()
}
