package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/formulary/internal/api/http"
	"github.com/GriffinCanCode/formulary/internal/api/middleware"
	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/config"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/formulary/internal/providers/math"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// Name and Version identify the service in responses and logs
const (
	Name    = "formulary"
	Version = "1.0.0"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *nethttp.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// Option configures a Server
type Option func(*options)

type options struct {
	logger    *logging.Logger
	providers []service.Provider
}

// WithLogger replaces the logger built from the logging section
func WithLogger(log *logging.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithProviders registers extra providers next to the math provider
func WithProviders(providers ...service.Provider) Option {
	return func(o *options) { o.providers = append(o.providers, providers...) }
}

// New creates a new server instance
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(cfg.Logging.Logger())
		if err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}

	logger.Info("Initializing formulary server",
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	var metrics *monitoring.Metrics
	registryOpts := []service.Option{service.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
		registryOpts = append(registryOpts, service.WithObserver(metrics))
	}

	registry := service.NewRegistry(registryOpts...)
	providers := append([]service.Provider{mathProvider.NewProvider()}, o.providers...)
	for _, p := range providers {
		if err := registry.Register(p); err != nil {
			if metrics != nil {
				metrics.Close()
			}
			return nil, fmt.Errorf("failed to register provider: %w", err)
		}
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	if metrics != nil {
		router.Use(monitoring.Middleware(metrics))
	}

	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		cors.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	router.Use(middleware.CORS(cors))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("global", cfg.RateLimit.Global),
		)
		limit := middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			ClientTTL:         cfg.RateLimit.ClientTTL.Std(),
		}
		if metrics != nil {
			limit.OnReject = func(*gin.Context) { metrics.RecordRateLimited() }
		}
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(limit))
		} else {
			router.Use(middleware.RateLimit(limit))
		}
	}
	router.Use(middleware.BodyLimit(utils.MaxJSONSize))

	handlers := http.NewHandlers(registry, metrics, logger, http.Info{Name: Name, Version: Version})

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service catalogue
	router.GET("/services", handlers.ListServices)
	router.GET("/services/:id", handlers.GetService)
	router.GET("/tools", handlers.ListTools)

	// Evaluation
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.POST("/services/batch", handlers.ExecuteBatch)

	if metrics != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	logger.Info("Server initialized successfully", zap.Int("services", len(registry.List(nil))))

	return &Server{
		router: router,
		http: &nethttp.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout.Std(),
			WriteTimeout: cfg.Server.WriteTimeout.Std(),
		},
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Router exposes the HTTP handler, mostly for tests
func (s *Server) Router() nethttp.Handler {
	return s.router
}

// Registry returns the service registry the server executes against
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run listens on the configured address until Shutdown is called
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases resources
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to drain connections", zap.Error(err))
	}
	if s.metrics != nil {
		s.metrics.Close()
	}

	// Sync logger before exit
	_ = s.logger.Sync()

	return err
}
