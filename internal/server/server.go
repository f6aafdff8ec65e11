package server

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/numericore/mathsvc/internal/config"
	"github.com/numericore/mathsvc/internal/http"
	"github.com/numericore/mathsvc/internal/logging"
	"github.com/numericore/mathsvc/internal/middleware"
	"github.com/numericore/mathsvc/internal/monitoring"
	"github.com/numericore/mathsvc/internal/providers"
	"github.com/numericore/mathsvc/internal/service"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	httpSrv  *nethttp.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	registry := service.NewRegistry()

	logger.Info("registering service providers")
	if err := registry.Register(providers.NewMath()); err != nil {
		return nil, err
	}

	metrics := monitoring.NewMetrics()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.Use(monitoring.Middleware(metrics))

	handlers := http.NewHandlers(registry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/stats", handlers.Stats)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		router:   router,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Router exposes the gin engine, used by tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the server and blocks until it stops
func (s *Server) Run(addr string) error {
	s.logger.Info("starting math service", zap.String("addr", addr))

	s.httpSrv = &nethttp.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	s.logger.Info("shutting down")
	return s.httpSrv.Shutdown(ctx)
}
