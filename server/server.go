package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/brettbedarf/docfs"
	"github.com/brettbedarf/docfs/config"
	"github.com/brettbedarf/docfs/internal/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a docfs.DocumentService over HTTP
type Server struct {
	cfg     *config.Config
	svc     docfs.DocumentService
	metrics *metrics
	handler http.Handler
	srv     *http.Server
}

// New creates a Server for svc. Metrics are kept on a registry owned by the
// Server so several instances can coexist in one process.
func New(cfg *config.Config, svc docfs.DocumentService) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:     cfg,
		svc:     svc,
		metrics: newMetrics(reg),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /roots", s.handleRoots)
	mux.HandleFunc("GET /documents", s.handleDocument)
	mux.HandleFunc("POST /documents", s.handleCreate)
	mux.HandleFunc("DELETE /documents", s.handleDelete)
	mux.HandleFunc("GET /children", s.handleChildren)
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	s.handler = s.withRequestID(s.withObservability(mux))
	s.srv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          util.NewLogLogger("HTTPServer", util.ErrorLevel),
	}
	return s
}

// Handler returns the root handler with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	logger := util.GetLogger("Server")
	logger.Info().Str("addr", l.Addr().String()).Msg("Serving documents")

	err := s.srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe listens on the configured address and serves until Shutdown
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// ServeAsync serves on l in the background. The channel receives the result
// of Serve and is then closed.
func (s *Server) ServeAsync(l net.Listener) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- s.Serve(l)
		close(done)
	}()

	return done
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
