package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inovelli-led-manager/internal/ports"
)

// Server exposes node input, node status and preset administration over HTTP.
type Server struct {
	manager  ports.ManagerPort
	entities ports.EntityLister
	logger   *slog.Logger
	srv      *http.Server
}

// NewServer builds a Server. entities may be nil when no Home Assistant
// instance is configured.
func NewServer(manager ports.ManagerPort, entities ports.EntityLister, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		manager:  manager,
		entities: entities,
		logger:   logger.With("component", "http"),
	}
}

// Handler returns the routed handler, middleware included.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api/nodes", func(r chi.Router) {
		r.Get("/", s.handleListNodes)
		r.Route("/{name}", func(r chi.Router) {
			r.Post("/input", s.handleInput)
			r.Get("/status", s.handleStatus)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", s.handleAdmin)
		r.Get("/presets", s.handleGetPresets)
		r.Put("/presets", s.handlePutPresets)
		r.Get("/ha-entities", s.handleHAEntities)
	})

	return r
}

// ListenAndServe blocks until the server stops. http.ErrServerClosed after
// Shutdown is not reported as an error.
func (s *Server) ListenAndServe(addr string, readTimeout, writeTimeout time.Duration) error {
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
	}
	s.logger.Info("HTTP server listening", "addr", addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
