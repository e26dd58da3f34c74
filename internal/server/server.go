// Package server owns the lifecycle of the webhook HTTP listener: startup,
// signal handling and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/logger"
)

// Server runs the webhook listener until a stop signal arrives.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer constructs a [Server] serving mux on the configured address.
func NewServer(mux http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: newHTTPServer(mux, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer blocks until the listener stops, either by signal or by a fatal
// listen error.
func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

// Shutdown stops the HTTP listener gracefully.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	return nil
}
