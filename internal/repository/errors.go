package repository

import (
	"context"
	"errors"
	"fmt"
	"net"

	"imuhira/internal/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// classify приводит ошибки pgx к видам из apperr, сохраняя исходную ошибку в цепочке.
func classify(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, what)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s: referenced record does not exist", apperr.ErrNotFound, what)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s: %s", apperr.ErrConflict, what, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s: %s", apperr.ErrValidation, what, pgErr.ConstraintName)
		}
		return fmt.Errorf("%s: %w", what, err)
	}

	var netErr net.Error
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || errors.As(err, &netErr) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("%w: %s: %v", apperr.ErrStoreUnavailable, what, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}
