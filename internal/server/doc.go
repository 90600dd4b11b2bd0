// Package server wires and runs the application's HTTP listeners.
//
// It owns the API server and the optional Prometheus metrics server,
// including startup, signal handling, and graceful shutdown of both.
package server
