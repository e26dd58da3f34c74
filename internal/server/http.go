package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(mux http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: mux,

			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
