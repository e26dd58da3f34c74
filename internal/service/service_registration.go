package service

import (
	"context"
	"errors"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/luoyiming/game-account-bot/internal/config"
	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/internal/store"
	"github.com/luoyiming/game-account-bot/models"
)

// registrationService is the concrete implementation of
// [RegistrationService]. It orchestrates existence check, credential
// generation and the atomic create, and carries the configured initial
// currency amounts.
//
// Known-registered identities are cached in-process: accounts are never
// deleted, so a positive existence result can never go stale. A cache hit
// saves one database round trip per repeated "register me" message; misses
// always consult the store.
type registrationService struct {
	accounts  store.AccountRepository
	generator CredentialGenerator
	hasher    PasswordHasher

	cera      int
	ceraPoint int

	registered *gocache.Cache
	logger     *logger.Logger
}

// NewRegistrationService constructs a [RegistrationService] wired to the
// given repository and credential providers, with initial currency amounts
// taken from cfg.
func NewRegistrationService(accounts store.AccountRepository, generator CredentialGenerator, hasher PasswordHasher, cfg config.Grants, logger *logger.Logger) RegistrationService {
	return &registrationService{
		accounts:   accounts,
		generator:  generator,
		hasher:     hasher,
		cera:       cfg.Cera,
		ceraPoint:  cfg.CeraPoint,
		registered: gocache.New(gocache.NoExpiration, 0),
		logger:     logger,
	}
}

// Register implements [RegistrationService].
//
// The upfront existence check is advisory: two concurrent attempts for the
// same identity can both observe "absent". The accounts table's unique
// constraint is the serialization point, and [store.ErrAccountAlreadyExists]
// from the insert is folded into the same ErrAlreadyRegistered outcome as
// the upfront check.
func (s *registrationService) Register(ctx context.Context, identity string) (models.Registration, error) {
	log := logger.FromContext(ctx)

	if identity == "" {
		return models.Registration{}, ErrInvalidIdentity
	}

	if _, hit := s.registered.Get(identity); hit {
		log.Debug().Str("identity", identity).Msg("registration cache hit")
		return models.Registration{}, ErrAlreadyRegistered
	}

	exists, err := s.accounts.Exists(ctx, identity)
	if err != nil {
		log.Err(err).Str("identity", identity).Msg("existence check failed")
		return models.Registration{}, fmt.Errorf("existence check failed: %w", err)
	}
	if exists {
		s.registered.SetDefault(identity, struct{}{})
		return models.Registration{}, ErrAlreadyRegistered
	}

	password := s.generator.GeneratePassword()
	account := models.NewAccount{
		Identity:  identity,
		Password:  s.hasher.Digest(password),
		NumericID: s.generator.GenerateNumericID(),
		Cera:      s.cera,
		CeraPoint: s.ceraPoint,
	}

	uid, err := s.accounts.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, store.ErrAccountAlreadyExists) {
			s.registered.SetDefault(identity, struct{}{})
			return models.Registration{}, ErrAlreadyRegistered
		}
		log.Err(err).Str("identity", identity).Msg("account creation failed")
		return models.Registration{}, fmt.Errorf("account creation failed: %w", err)
	}

	s.registered.SetDefault(identity, struct{}{})
	log.Info().Str("identity", identity).Int64("uid", uid).Msg("identity registered")

	return models.Registration{
		Identity:  identity,
		Password:  password,
		Cera:      s.cera,
		CeraPoint: s.ceraPoint,
	}, nil
}
