package handler

import (
	"context"
	"errors"
	"strings"

	"github.com/luoyiming/game-account-bot/internal/adapter"
	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/service"
)

// Router maps inbound chat events to the registration and password-change
// services and renders the reply text. It is transport-independent and
// performs no I/O of its own except friend-request approval, which has no
// reply channel and goes straight to the [adapter.BotAPI].
type Router struct {
	services *service.Services
	api      adapter.BotAPI
	logger   *logger.Logger
}

// NewRouter constructs a [Router].
func NewRouter(services *service.Services, api adapter.BotAPI, logger *logger.Logger) *Router {
	logger.Info().Msg("message router created")
	return &Router{
		services: services,
		api:      api,
		logger:   logger,
	}
}

// HandleMessage routes one private message and returns the reply text to
// deliver to the sender. Every outcome, including store failures, produces
// a reply; errors never propagate to the transport layer.
func (rt *Router) HandleMessage(ctx context.Context, msg Message) string {
	if !msg.IsFriend {
		return notFriendReply
	}

	if strings.HasPrefix(msg.Content, passwordCommand) {
		return rt.changePassword(ctx, msg)
	}

	return rt.register(ctx, msg)
}

// HandleFriendRequest accepts every incoming friend request. Failures are
// logged only: there is no reply channel for this event type and the sender
// will simply retry.
func (rt *Router) HandleFriendRequest(ctx context.Context, req FriendRequest) {
	log := logger.FromContext(ctx)

	if err := rt.api.ApproveFriendRequest(ctx, req.Flag); err != nil {
		log.Err(err).Str("identity", req.Identity).Msg("failed to approve friend request")
		return
	}

	log.Info().Str("identity", req.Identity).Msg("friend request approved automatically")
}

func (rt *Router) register(ctx context.Context, msg Message) string {
	log := logger.FromContext(ctx)

	registration, err := rt.services.Registration.Register(ctx, msg.Identity)
	switch {
	case err == nil:
		return registrationReply(registration.Identity, registration.Password, registration.Cera, registration.CeraPoint)
	case errors.Is(err, service.ErrAlreadyRegistered):
		return alreadyRegisteredReply
	default:
		log.Err(err).Str("identity", msg.Identity).Msg("registration failed")
		return registrationFailedPrefix + err.Error()
	}
}

func (rt *Router) changePassword(ctx context.Context, msg Message) string {
	log := logger.FromContext(ctx)

	raw := strings.TrimPrefix(msg.Content, passwordCommand)
	password, err := rt.services.PasswordChange.ChangePassword(ctx, msg.Identity, raw)
	switch {
	case err == nil:
		return passwordChangedReply(msg.Identity, password)
	case errors.Is(err, service.ErrPasswordLength):
		return passwordLengthReply
	case errors.Is(err, service.ErrPasswordCharset):
		return passwordCharsetReply
	case errors.Is(err, service.ErrAccountNotFound):
		return accountNotFoundReply
	default:
		log.Err(err).Str("identity", msg.Identity).Msg("password change failed")
		return err.Error()
	}
}
