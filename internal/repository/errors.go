package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicate = errors.New("duplicate key")
	ErrTimeout   = errors.New("persistence timeout")
)

// ValidationError reports which document paths the store rejected, so the
// caller can run a targeted repair instead of failing the whole write.
type ValidationError struct {
	Paths []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("document validation rejected: %s", strings.Join(e.Paths, ", "))
}

// IsUniqueViolation matches both the postgres driver error and the sqlite
// message shape, since local development runs on sqlite.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// mapStoreError translates driver-level failures into the repository
// taxonomy. Context expiry surfaces as ErrTimeout so callers can tell a slow
// store from a rejecting one.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}
