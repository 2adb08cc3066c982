package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// withTx runs fn inside a transaction.
//
// The transaction commits when fn returns nil and rolls back when fn returns
// an error or panics. A panic keeps propagating after the rollback.
func withTx(ctx context.Context, db DBTX, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	finished := false
	defer func() {
		if !finished {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(tx); err != nil {
		finished = true
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zerolog.Ctx(ctx).Warn().Err(rbErr).Msg("failed to roll back transaction")
		}
		return err
	}

	finished = true
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}
