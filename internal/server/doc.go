// Package server manages the lifecycle of the inbound HTTP transport:
// construction, startup, and signal-driven graceful shutdown.
package server
