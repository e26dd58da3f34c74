package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It owns the multi-schema provisioning transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, per-event tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// satelliteInserts are the per-UID default rows created alongside every
// account, in insertion order. Amount-carrying statements receive the
// configured grant as a second argument; the rest take the UID only.
type satelliteInsert struct {
	name  string
	query string
}

var satelliteInserts = []satelliteInsert{
	{name: "member_info", query: insertMemberInfo},
	{name: "member_join_info", query: insertMemberJoinInfo},
	{name: "member_white_account", query: insertWhitelistEntry},
	{name: "member_login", query: insertMemberLogin},
}

// Exists implements [AccountRepository]. It runs a single EXISTS query
// against the accounts table.
func (r *accountRepository) Exists(ctx context.Context, identity string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, accountExists, identity)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "accountRepository.Exists").
			Str("accountname", identity).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to query account existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// CreateAccount implements [AccountRepository]. All inserts run inside one
// transaction; the deferred rollback undoes every step unless the final
// commit succeeds.
//
// Error handling:
//   - unique_violation (23505) on the account insert → [ErrAccountAlreadyExists];
//     a concurrent registration for the same identity won the race.
//   - missing UID on read-back → [ErrUIDReadBack].
//   - any other failure → wrapped low-level sentinel; nothing persists.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.NewAccount) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// account row first: its unique constraint on accountname is the
	// serialization point for concurrent attempts.
	if _, err = tx.ExecContext(ctx, insertAccount, account.Identity, account.Password, account.NumericID); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Info().
				Str("func", "accountRepository.CreateAccount").
				Str("accountname", account.Identity).
				Msg("account insert lost the race: accountname already taken")
			return 0, ErrAccountAlreadyExists
		}

		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to insert account row")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	// read back the server-assigned UID
	var uid int64
	if err = tx.QueryRowContext(ctx, selectUIDByAccountName, account.Identity).Scan(&uid); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Msg("failed to read back uid")
		return 0, fmt.Errorf("%w: %w", ErrUIDReadBack, err)
	}

	// default member rows, one per satellite table
	for _, ins := range satelliteInserts {
		if _, err = tx.ExecContext(ctx, ins.query, uid); err != nil {
			log.Err(err).
				Str("func", "accountRepository.CreateAccount").
				Str("accountname", account.Identity).
				Int64("uid", uid).
				Str("table", ins.name).
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("failed to insert member row")
			return 0, fmt.Errorf("%w: insert %s: %w", ErrExecutingStatement, ins.name, err)
		}
	}

	// initial currency grants
	if _, err = tx.ExecContext(ctx, insertCashCera, uid, account.Cera); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Int64("uid", uid).
			Int("cera", account.Cera).
			Msg("failed to insert cash_cera row")
		return 0, fmt.Errorf("%w: insert cash_cera: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, insertCashCeraPoint, uid, account.CeraPoint); err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Int64("uid", uid).
			Int("cera_point", account.CeraPoint).
			Msg("failed to insert cash_cera_point row")
		return 0, fmt.Errorf("%w: insert cash_cera_point: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "accountRepository.CreateAccount").
			Str("accountname", account.Identity).
			Int64("uid", uid).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "accountRepository.CreateAccount").
		Str("accountname", account.Identity).
		Int64("uid", uid).
		Msg("account provisioned")

	return uid, nil
}

// UpdatePassword implements [AccountRepository].
func (r *accountRepository) UpdatePassword(ctx context.Context, identity string, digest string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateAccountPassword, digest, identity)
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.UpdatePassword").
			Str("accountname", identity).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to update account password")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.UpdatePassword").
			Str("accountname", identity).
			Msg("failed to read affected row count")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
