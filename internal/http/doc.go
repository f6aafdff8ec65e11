// Package http provides HTTP handlers and routing for the math service REST API.
//
// This package implements all HTTP endpoints using the Gin framework, including
// health checks, service discovery and tool execution.
//
// Endpoints:
//   - Health: / and /health
//   - Stats: /stats
//   - Services: /services, /services/discover, /services/execute
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes
//   - Error response formatting
//   - Request validation
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
