package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pageza/cookbook/backend/config"
)

// Server represents the HTTP server
type Server struct {
	http   *http.Server
	logger *log.Logger
}

// New creates a server for handler listening on the configured address
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: log.New(os.Stdout, "[server] ", log.LstdFlags),
	}
}

// Start listens on the configured address and blocks until Shutdown is called
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. A graceful shutdown is not reported as an error.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Printf("Listening on %s", ln.Addr())
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Printf("Shutting down")
	return s.http.Shutdown(ctx)
}
