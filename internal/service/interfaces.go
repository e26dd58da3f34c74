package service

import (
	"context"

	"github.com/luoyiming/game-account-bot/models"
)

// RegistrationService provisions a game account for a chat identity.
type RegistrationService interface {
	// Register runs the registration state machine: existence check,
	// credential generation, atomic multi-table create. Terminal outcomes:
	//   - (Registration, nil) — account created, plaintext password inside;
	//   - ErrAlreadyRegistered — the identity already owns an account,
	//     whether detected upfront or by losing the insert race;
	//   - any other error — store failure, nothing was created.
	Register(ctx context.Context, identity string) (models.Registration, error)
}

// PasswordChangeService validates and applies password updates.
type PasswordChangeService interface {
	// ChangePassword normalizes and validates raw, digests it and updates
	// the account. Returns the accepted plaintext for the one-time echo,
	// or ErrPasswordLength / ErrPasswordCharset / ErrAccountNotFound, or a
	// wrapped store error.
	ChangePassword(ctx context.Context, identity string, raw string) (string, error)
}

// CredentialGenerator yields the random credentials attached to a new
// account. Implemented by [credential.Generator].
type CredentialGenerator interface {
	GeneratePassword() string
	GenerateNumericID() string
}

// PasswordHasher digests plaintext passwords for storage. Implemented by
// [credential.Hasher].
type PasswordHasher interface {
	Digest(text string) string
}
