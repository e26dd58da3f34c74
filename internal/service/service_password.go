package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/store"
)

var passwordPattern = regexp.MustCompile(`^[A-Za-z0-9]{3,16}$`)

// passwordChangeService is the concrete implementation of
// [PasswordChangeService].
type passwordChangeService struct {
	accounts store.AccountRepository
	hasher   PasswordHasher
	logger   *logger.Logger
}

// NewPasswordChangeService constructs a [PasswordChangeService].
func NewPasswordChangeService(accounts store.AccountRepository, hasher PasswordHasher, logger *logger.Logger) PasswordChangeService {
	return &passwordChangeService{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger,
	}
}

// ChangePassword implements [PasswordChangeService].
func (s *passwordChangeService) ChangePassword(ctx context.Context, identity string, raw string) (string, error) {
	log := logger.FromContext(ctx)

	if identity == "" {
		return "", ErrInvalidIdentity
	}

	password := normalizePassword(raw)
	if err := validatePassword(password); err != nil {
		log.Debug().Str("identity", identity).Err(err).Msg("password rejected")
		return "", err
	}

	updated, err := s.accounts.UpdatePassword(ctx, identity, s.hasher.Digest(password))
	if err != nil {
		log.Err(err).Str("identity", identity).Msg("password update failed")
		return "", fmt.Errorf("password update failed: %w", err)
	}
	if !updated {
		// zero rows affected: the identity has no account
		return "", ErrAccountNotFound
	}

	log.Info().Str("identity", identity).Msg("password changed")
	return password, nil
}

// normalizePassword strips surrounding whitespace and embedded newline and
// carriage-return characters. Chat clients routinely append trailing
// newlines to 修改密码 commands.
func normalizePassword(raw string) string {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, "\n", "")
	return strings.ReplaceAll(normalized, "\r", "")
}

// validatePassword accepts iff password matches ^[A-Za-z0-9]{3,16}$,
// distinguishing length violations from character-set violations.
func validatePassword(password string) error {
	if passwordPattern.MatchString(password) {
		return nil
	}
	if n := utf8.RuneCountInString(password); n < 3 || n > 16 {
		return ErrPasswordLength
	}
	return ErrPasswordCharset
}
