package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when the account insert hits the
	// unique constraint on accountname. This is the authoritative "already
	// registered" signal: the upfront existence check is advisory, the
	// constraint is not.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrUIDReadBack is returned when the account row was inserted but the
	// follow-up lookup of its server-assigned UID produced no row. The
	// surrounding transaction is rolled back.
	ErrUIDReadBack = errors.New("failed to read back uid of created account")
)

// Low-level database operation errors, returned (or wrapped) when a SQL-level
// operation fails before any domain logic can be applied.
var (
	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
