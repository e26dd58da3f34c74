// Package http receives OneBot v11 HTTP callback events and adapts them
// onto the transport-independent message router.
package http

import (
	"github.com/luoyiming/game-account-bot/internal/adapter"
	"github.com/luoyiming/game-account-bot/internal/handler"
	"github.com/luoyiming/game-account-bot/internal/logger"
)

// Handler owns the webhook endpoint: it verifies callback signatures,
// decodes events, dispatches them to the router and delivers replies through
// the bot API.
type Handler struct {
	router *handler.Router
	api    adapter.BotAPI

	// secret is the shared OneBot callback secret; empty disables signature
	// verification.
	secret string

	logger *logger.Logger
}

// NewHandler constructs the webhook handler.
func NewHandler(router *handler.Router, api adapter.BotAPI, secret string, logger *logger.Logger) *Handler {
	logger.Info().Msg("webhook handler created")
	return &Handler{
		router: router,
		api:    api,
		secret: secret,
		logger: logger,
	}
}
