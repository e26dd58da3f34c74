package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/luoyiming/game-account-bot/internal/logger"
	"github.com/luoyiming/game-account-bot/models"
)

func newTestAccountRepo(t *testing.T) (*accountRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &accountRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newAccount() models.NewAccount {
	return models.NewAccount{
		Identity:  "10001",
		Password:  "1e55dbf412cb74d5e2c21fb6452408c7",
		NumericID: "12345678901",
		Cera:      1000,
		CeraPoint: 500,
	}
}

// expectProvisioningThrough registers ordered expectations for the create
// transaction up to (not including) the named step. Used to fail the
// transaction at a chosen point.
func expectProvisioningThrough(mock sqlmock.Sqlmock, account models.NewAccount, uid int64, upTo string) {
	mock.ExpectBegin()

	steps := []struct {
		name   string
		expect func()
	}{
		{"accounts", func() {
			mock.ExpectExec("INSERT INTO d_taiwan.accounts").
				WithArgs(account.Identity, account.Password, account.NumericID).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"uid", func() {
			mock.ExpectQuery("SELECT uid FROM d_taiwan.accounts").
				WithArgs(account.Identity).
				WillReturnRows(sqlmock.NewRows([]string{"uid"}).AddRow(uid))
		}},
		{"member_info", func() {
			mock.ExpectExec("INSERT INTO d_taiwan.member_info").
				WithArgs(uid).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"member_join_info", func() {
			mock.ExpectExec("INSERT INTO d_taiwan.member_join_info").
				WithArgs(uid).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"member_white_account", func() {
			mock.ExpectExec("INSERT INTO d_taiwan.member_white_account").
				WithArgs(uid).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"member_login", func() {
			mock.ExpectExec("INSERT INTO taiwan_login.member_login").
				WithArgs(uid).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"cash_cera", func() {
			mock.ExpectExec("INSERT INTO taiwan_billing.cash_cera").
				WithArgs(uid, account.Cera).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
		{"cash_cera_point", func() {
			mock.ExpectExec("INSERT INTO taiwan_billing.cash_cera_point").
				WithArgs(uid, account.CeraPoint).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}},
	}

	for _, step := range steps {
		if step.name == upTo {
			return
		}
		step.expect()
	}
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := newAccount()
	expectProvisioningThrough(mock, account, 42, "")
	mock.ExpectCommit()

	uid, err := repo.CreateAccount(context.Background(), account)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != 42 {
		t.Errorf("expected uid=42, got %d", uid)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateAccount_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := newAccount()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO d_taiwan.accounts").
		WithArgs(account.Identity, account.Password, account.NumericID).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), account)
	if !errors.Is(err, ErrAccountAlreadyExists) {
		t.Fatalf("expected ErrAccountAlreadyExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// TestCreateAccount_CurrencyFailureRollsBack forces the premium-currency
// insert to fail after the account row has been inserted, and verifies the
// whole transaction is rolled back instead of committed.
func TestCreateAccount_CurrencyFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := newAccount()
	expectProvisioningThrough(mock, account, 42, "cash_cera")
	mock.ExpectExec("INSERT INTO taiwan_billing.cash_cera").
		WithArgs(42, account.Cera).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), account)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction was not rolled back: %v", err)
	}
}

func TestCreateAccount_SatelliteFailureRollsBack(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := newAccount()
	expectProvisioningThrough(mock, account, 42, "member_join_info")
	mock.ExpectExec("INSERT INTO d_taiwan.member_join_info").
		WithArgs(42).
		WillReturnError(errors.New("column mismatch"))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), account)
	if err == nil || !strings.Contains(err.Error(), "member_join_info") {
		t.Fatalf("expected error naming the failed table, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transaction was not rolled back: %v", err)
	}
}

func TestCreateAccount_UIDReadBackFailure(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	account := newAccount()
	expectProvisioningThrough(mock, account, 42, "uid")
	mock.ExpectQuery("SELECT uid FROM d_taiwan.accounts").
		WithArgs(account.Identity).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CreateAccount(context.Background(), account)
	if !errors.Is(err, ErrUIDReadBack) {
		t.Fatalf("expected ErrUIDReadBack, got %v", err)
	}
}

func TestCreateAccount_BeginFailure(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateAccount(context.Background(), newAccount())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestExists_True(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("10001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(context.Background(), "10001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected exists=true")
	}
}

func TestExists_False(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("99999").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), "99999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected exists=false")
	}
}

func TestExists_QueryError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("10001").
		WillReturnError(errors.New("db is down"))

	_, err := repo.Exists(context.Background(), "10001")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdatePassword_RowUpdated(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE d_taiwan.accounts").
		WithArgs("digest", "10001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdatePassword(context.Background(), "10001", "digest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Error("expected updated=true")
	}
}

// TestUpdatePassword_UnknownAccount verifies that zero affected rows is a
// negative result, not an error.
func TestUpdatePassword_UnknownAccount(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE d_taiwan.accounts").
		WithArgs("digest", "99999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdatePassword(context.Background(), "99999", "digest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated {
		t.Error("expected updated=false for unknown account")
	}
}

func TestUpdatePassword_ExecError(t *testing.T) {
	repo, mock, db := newTestAccountRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE d_taiwan.accounts").
		WithArgs("digest", "10001").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.UpdatePassword(context.Background(), "10001", "digest")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
