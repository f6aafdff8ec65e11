/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the math
service, tracking HTTP requests, tool executions and system metrics.

# Features

- HTTP request metrics (latency, throughput)
- Tool execution metrics (duration, errors)
- System metrics (uptime)
- JSON snapshot for the /stats endpoint

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time tool executions
	timer := monitoring.NewTimer(metrics, "math.hyp0f1")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
