package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify_RetryableCodes(t *testing.T) {
	c := NewPostgresErrorClassifier()

	for _, code := range []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionFailure,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	} {
		assert.Equalf(t, Retryable, c.Classify(&pgconn.PgError{Code: code}),
			"code %s should be retryable", code)
	}
}

func TestClassify_ConstraintViolationIsNotRetryable(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}

func TestClassify_NonDriverError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain error")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
