// Package server собирает HTTP сервер tablestore: маршруты, middleware и
// корректную остановку.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/formsync/internal/server/handlers"
	"github.com/iudanet/formsync/internal/server/middleware"
	"github.com/iudanet/formsync/internal/server/storage"
	"github.com/iudanet/formsync/pkg/api"
)

// Пути служебных маршрутов
const (
	LegacyExecPath = "/exec"
	HealthPath     = "/health"
	MetricsPath    = "/metrics"
)

// Options параметры сборки маршрутов
type Options struct {
	Store       storage.StoreStorage
	DB          handlers.Pinger
	Tokens      middleware.TokenValidator
	Registry    *prometheus.Registry
	Limiter     *middleware.RateLimiter
	Logger      *slog.Logger
	Version     string
	DisabledOps []string
}

// NewRouter возвращает обработчик всех маршрутов tablestore.
// Registry и Limiter необязательны.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger

	rpc := handlers.NewRPCHandler(logger, opts.Store, opts.DisabledOps)
	health := handlers.NewHealthHandler(logger, opts.DB, opts.Version)

	mux := http.NewServeMux()
	mux.Handle(api.ExecPath, middleware.AuthMiddleware(logger, opts.Tokens)(rpc))
	mux.HandleFunc(HealthPath, health.Health)
	if opts.Registry != nil {
		mux.Handle(MetricsPath, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	var h http.Handler = middleware.CanonicalRedirect(LegacyExecPath, api.ExecPath)(mux)
	if opts.Limiter != nil {
		h = middleware.RateLimitMiddleware(opts.Limiter, logger)(h)
	}
	if opts.Registry != nil {
		h = middleware.MetricsMiddleware(opts.Registry)(h)
	}
	h = middleware.LoggingWithSkip(logger, []string{HealthPath, MetricsPath})(h)
	h = middleware.RecoveryMiddleware(logger)(h)

	return h
}

// Server HTTP сервер tablestore
type Server struct {
	logger          *slog.Logger
	srv             *http.Server
	shutdownTimeout time.Duration
}

// New создает сервер на addr
func New(addr string, handler http.Handler, shutdownTimeout time.Duration, logger *slog.Logger) *Server {
	return &Server{
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
		},
	}
}

// Run слушает addr до отмены ctx, затем останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает уже открытый listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", ln.Addr().String())
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
