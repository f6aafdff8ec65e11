// Package main is the entry point for the math service daemon.
//
// The server provides:
//   - REST API for mathematical tool execution
//   - Service provider registry with discovery
//   - Prometheus metrics
//   - Rate limiting and request identification
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./mathd -port 8000
//
//	# Development mode (colored logs, debug level)
//	./mathd -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
