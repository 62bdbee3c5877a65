// Package server serves rendered menu screens over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mspro-labs/menuboard/internal/board"
	"mspro-labs/menuboard/internal/menu"
	"mspro-labs/menuboard/internal/metrics"
)

// Server exposes screens, fragments, badge assets, health and metrics.
type Server struct {
	board   *board.Board
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// New builds a Server. m may be nil, in which case /metrics is not mounted.
func New(b *board.Board, m *metrics.Metrics, logger *zap.Logger) *Server {
	return &Server{board: b, metrics: m, logger: logger.Named("server")}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(noStore)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/screens/1", http.StatusFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	r.Get("/screens/{screen}", s.handleScreen)
	r.Get("/screens/{screen}/fragment", s.handleFragment)

	cfg := s.board.Config()
	if cfg.AssetsDir != "" && !strings.Contains(cfg.AssetPath, "://") {
		prefix := "/" + strings.Trim(cfg.AssetPath, "/") + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.AssetsDir))))
	}
	return r
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Menu board started", zap.String("addr", addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}

func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	screen, ok := screenParam(w, r)
	if !ok {
		return
	}

	doc, err := s.board.HostDocument(screen)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.board.RenderScreen(r.Context(), screen, doc); err != nil {
		s.fail(w, err)
		return
	}
	html, err := doc.HTML()
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, html)
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	screen, ok := screenParam(w, r)
	if !ok {
		return
	}

	fragment, err := s.board.Fragment(r.Context(), screen)
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, fragment)
}

func screenParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	screen, err := strconv.Atoi(chi.URLParam(r, "screen"))
	if err != nil || screen < 1 {
		http.Error(w, "screen must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return screen, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, menu.ErrInvalidScreen):
		http.Error(w, "screen must be a positive integer", http.StatusBadRequest)
	case board.IsFetchError(err):
		s.logger.Warn("Menu source unavailable", zap.Error(err))
		http.Error(w, "menu source unavailable", http.StatusBadGateway)
	default:
		s.logger.Error("Render failed", zap.Error(err))
		http.Error(w, "failed to render menu", http.StatusInternalServerError)
	}
}

func noStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
