package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation})
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: CodeForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "referrals_job_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, ""))
	assert.True(t, IsForeignKeyViolation(err, "referrals_job_id_fkey"))
	assert.False(t, IsForeignKeyViolation(err, "referrals_seeker_id_fkey"))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: CodeUniqueViolation}, ""))
	assert.False(t, IsForeignKeyViolation(nil, ""))
}

func TestIsInvalidTextValue(t *testing.T) {
	assert.True(t, IsInvalidTextValue(fmt.Errorf("error creating job: %w", &pgconn.PgError{Code: CodeStringTooLong})))
	assert.True(t, IsInvalidTextValue(&pgconn.PgError{Code: CodeInvalidEncoding}))
	assert.False(t, IsInvalidTextValue(&pgconn.PgError{Code: CodeUniqueViolation}))
	assert.False(t, IsInvalidTextValue(errors.New("boom")))
}
