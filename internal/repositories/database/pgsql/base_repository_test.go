package pgsql

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/workshop_billing_app/internal/apperrors"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "noop"))

	err := mapError(pgx.ErrNoRows, "job j1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = mapError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_jobs_invoice_number"}, "save")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "idx_jobs_invoice_number")

	err = mapError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Message: "violates foreign key"}, "save payment")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	boom := errors.New("connection reset")
	err = mapError(boom, "save")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "KA01", escapeLike("KA01"))
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\d`, escapeLike(`c:\d`))
}
