package postgres

import (
	"context"
	"errors"
	"fmt"
	"innkeep/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// WithTransaction runs fn inside a transaction on the write connection. The
// transaction is committed when fn returns nil and rolled back otherwise, so
// multi-statement writes are observed atomically or not at all.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back transaction after panic")
			}

			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to roll back transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err (possibly wrapped) is a Postgres
// unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// IsForeignKeyViolation reports whether err (possibly wrapped) is a Postgres
// foreign key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeFkViolation
	}

	return false
}
