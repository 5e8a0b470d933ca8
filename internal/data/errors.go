package data

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrInvalidInput covers malformed ids, unknown sort columns or orders and
	// missing or malformed request fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRecordNotFound is matched by every NotFoundError.
	ErrRecordNotFound = errors.New("record not found")
	// ErrReferencedEntityNotFound is returned when a write names a value that
	// must exist in another table, such as a comment author that is not a user.
	ErrReferencedEntityNotFound = errors.New("referenced entity not found")
)

// NotFoundError reports that the named resource has no matching row.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " does not exist"
}

// Is lets errors.Is(err, ErrRecordNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// translateError maps driver errors onto the package's failure kinds. No rows
// becomes a NotFoundError for resource; constraint and conversion failures
// reported by PostgreSQL become ErrReferencedEntityNotFound or ErrInvalidInput.
// Anything else is returned unchanged.
func translateError(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return notFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrReferencedEntityNotFound, pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation,
			pgerrcode.NotNullViolation,
			pgerrcode.CheckViolation,
			pgerrcode.NumericValueOutOfRange:
			return fmt.Errorf("%w: %s", ErrInvalidInput, pgErr.Message)
		}
	}

	return err
}
