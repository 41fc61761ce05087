// Package server exposes the calculator over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nactco/internal/breakeven"
	"github.com/rgehrsitz/nactco/internal/calculation"
	"github.com/rgehrsitz/nactco/internal/compare"
	"github.com/rgehrsitz/nactco/internal/config"
	"github.com/rgehrsitz/nactco/internal/reference"
)

// Server wires the calculation packages to echo routes
type Server struct {
	cfg     *config.ServerConfig
	echo    *echo.Echo
	logger  *zap.Logger
	catalog *reference.Catalog

	engine      *calculation.CalculationEngine
	compare     *compare.CompareEngine
	sensitivity *calculation.SensitivityAnalyzer
	solver      *breakeven.Solver
}

// New builds a server. A nil logger discards output.
func New(cfg *config.ServerConfig, cat *reference.Catalog, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config is required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger.Sugar())

	s := &Server{
		cfg:         cfg,
		echo:        echo.New(),
		logger:      logger,
		catalog:     cat,
		engine:      engine,
		compare:     compare.NewCompareEngine(engine, cat),
		sensitivity: calculation.NewSensitivityAnalyzer(engine),
		solver:      breakeven.NewDefaultSolver(engine),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.echo.Use(requestLogger(logger))
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.echo.GET("/health", s.health)

	api := s.echo.Group("/api/v1")
	api.GET("/vendors", s.listVendors)
	api.GET("/vendors/:id", s.getVendor)
	api.GET("/industries", s.listIndustries)
	api.GET("/industries/:id/defaults", s.industryDefaults)
	api.GET("/metrics", s.listMetrics)

	api.POST("/calculate", s.calculate)
	api.POST("/compare/vendors", s.compareVendors)
	api.POST("/sensitivity", s.analyzeSensitivity)
	api.POST("/breakeven", s.solveBreakEven)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.Address()
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// requestLogger writes one structured line per request
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := []zap.Field{
				zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}
			if req.URL.RawQuery != "" {
				fields = append(fields, zap.String("query", req.URL.RawQuery))
			}

			switch {
			case res.Status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case res.Status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
