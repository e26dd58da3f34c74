package store

import (
	"context"

	"github.com/luoyiming/game-account-bot/models"
)

// AccountRepository is the persistence boundary for game accounts. It is the
// only place that knows the table layout; services above it deal in
// [models.NewAccount] values and sentinel errors.
type AccountRepository interface {
	// Exists reports whether an account row with the given accountname is
	// already present. Safe to call concurrently with CreateAccount; a stale
	// false is harmless because the insert's unique constraint is the final
	// arbiter.
	Exists(ctx context.Context, identity string) (bool, error)

	// CreateAccount provisions a full account inside one transaction:
	// account row, member metadata, whitelist, login state and both initial
	// currency grants. On any failure nothing persists. A duplicate
	// accountname is reported as [ErrAccountAlreadyExists].
	CreateAccount(ctx context.Context, account models.NewAccount) (int64, error)

	// UpdatePassword sets a new password digest for the given accountname.
	// The returned bool reports whether any row was affected; false with a
	// nil error means the account is unknown, which is a negative result,
	// not a failure.
	UpdatePassword(ctx context.Context, identity string, digest string) (bool, error)
}
