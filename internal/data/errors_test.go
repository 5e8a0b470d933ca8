package data

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := notFound("article")

	assert.EqualError(t, err, "article does not exist")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrRecordNotFound)

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "article", nf.Resource)
}

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	testCases := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "No rows",
			err:     pgx.ErrNoRows,
			wantIs:  ErrRecordNotFound,
			wantMsg: "comment does not exist",
		},
		{
			name:   "Foreign key violation",
			err:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "comments_author_fkey"},
			wantIs: ErrReferencedEntityNotFound,
		},
		{
			name:   "Invalid text representation",
			err:    &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation},
			wantIs: ErrInvalidInput,
		},
		{
			name:   "Not null violation",
			err:    &pgconn.PgError{Code: pgerrcode.NotNullViolation},
			wantIs: ErrInvalidInput,
		},
		{
			name:   "Numeric value out of range",
			err:    &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange},
			wantIs: ErrInvalidInput,
		},
		{
			name:   "Unclassified store error passes through",
			err:    other,
			wantIs: other,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError(tc.err, "comment")
			assert.ErrorIs(t, got, tc.wantIs)
			if tc.wantMsg != "" {
				assert.EqualError(t, got, tc.wantMsg)
			}
		})
	}

	assert.NoError(t, translateError(nil, "comment"))
}
