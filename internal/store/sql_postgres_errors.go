package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed database
// operation was transient (a later chat message may succeed) or permanent.
type ErrorClassification int

const (
	// NonRetryable indicates that repeating the operation will fail again:
	// constraint violations, syntax errors, data exceptions, and any
	// unrecognised error.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure such as a dropped connection,
	// a serialization failure or a deadlock rollback.
	Retryable
)

// ErrorClassificator classifies driver errors for failure logging. The bot
// never retries inside a request (each chat message is a single attempt),
// but operators need to tell transient outages apart from schema bugs.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or not a
// PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based
// on the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08 — connection exceptions
//   - Class 40 — transaction rollback, serialization failure, deadlock
//   - Class 57 — cannot connect now
//
// Everything else, including Class 23 integrity constraint violations (the
// duplicate-account signal), is non-retryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
