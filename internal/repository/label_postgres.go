package repository

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// LabelPostgresRepository stores labels in PostgreSQL.
type LabelPostgresRepository struct {
	db DBTX
}

func NewLabelPostgresRepository(db DBTX) *LabelPostgresRepository {
	return &LabelPostgresRepository{db: db}
}

func (r *LabelPostgresRepository) Create(ctx context.Context, name string) (model.Label, error) {
	var label model.Label
	err := r.db.QueryRow(ctx,
		`insert into labels (name) values ($1) returning id, name`,
		name,
	).Scan(&label.ID, &label.Name)
	if err != nil {
		return model.Label{}, errors.Wrap(err, "insert label")
	}

	return label, nil
}

func (r *LabelPostgresRepository) All(ctx context.Context) ([]model.Label, error) {
	rows, err := r.db.Query(ctx, `select id, name from labels order by id`)
	if err != nil {
		return nil, errors.Wrap(err, "list labels")
	}

	labels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Label, error) {
		var l model.Label
		err := row.Scan(&l.ID, &l.Name)
		return l, err
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan labels")
	}

	return labels, nil
}

func (r *LabelPostgresRepository) Delete(ctx context.Context, id int32) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `delete from todo_labels where label_id = $1`, id); err != nil {
			return errors.Wrapf(err, "detach label %d", id)
		}

		tag, err := tx.Exec(ctx, `delete from labels where id = $1`, id)
		if err != nil {
			return errors.Wrapf(err, "delete label %d", id)
		}
		if tag.RowsAffected() == 0 {
			return &NotFoundError{Entity: "label", ID: id}
		}

		return nil
	})
}
