package store

import (
	"github.com/luoyiming/game-account-bot/internal/logger"
)

// Storages aggregates every repository the bot uses. Today that is just the
// account repository; the aggregate keeps the wiring in main uniform.
type Storages struct {
	Accounts AccountRepository
}

// NewStorages constructs all repositories on top of the shared database
// handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Accounts: NewAccountRepository(db, logger),
	}
}
