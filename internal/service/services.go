package service

import (
	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/credential"
	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/store"
)

// Services aggregates the bot's application services.
type Services struct {
	Registration   RegistrationService
	PasswordChange PasswordChangeService
}

// NewServices wires all services on top of the given storages with the
// default credential generator and hasher.
func NewServices(storages *store.Storages, cfg config.Grants, logger *logger.Logger) *Services {
	generator := credential.NewGenerator()
	hasher := credential.NewHasher()

	return &Services{
		Registration:   NewRegistrationService(storages.Accounts, generator, hasher, cfg, logger),
		PasswordChange: NewPasswordChangeService(storages.Accounts, hasher, logger),
	}
}
