// Package server provides HTTP server setup and initialization.
//
// This package orchestrates all components:
//   - HTTP routing with Gin framework
//   - Middleware stack (request ID, CORS, rate limiting, recovery, metrics)
//   - Service provider registration
//   - Prometheus metrics endpoint
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Register service providers
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.NewServer(cfg, logger)
//	if err := srv.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
//	    log.Fatal(err)
//	}
package server
