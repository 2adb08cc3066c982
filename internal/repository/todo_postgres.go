package repository

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const selectTodosWithLabels = `
select todos.id, todos.text, todos.completed, labels.id as label_id, labels.name as label_name
from todos
left outer join todo_labels tl on todos.id = tl.todo_id
left outer join labels on labels.id = tl.label_id`

// TodoPostgresRepository stores todos in PostgreSQL.
//
// Tables: todos(id, text, completed), labels(id, name) and the join table
// todo_labels(todo_id, label_id). Multi-statement writes run in one
// transaction each.
type TodoPostgresRepository struct {
	db DBTX
}

func NewTodoPostgresRepository(db DBTX) *TodoPostgresRepository {
	return &TodoPostgresRepository{db: db}
}

func (r *TodoPostgresRepository) Create(ctx context.Context, payload model.CreateTodo) (model.Todo, error) {
	var id int32

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`insert into todos (text, completed) values ($1, false) returning id`,
			payload.Text,
		).Scan(&id)
		if err != nil {
			return errors.Wrap(err, "insert todo")
		}

		return insertTodoLabels(ctx, tx, id, model.DistinctIDs(payload.Labels))
	})
	if err != nil {
		return model.Todo{}, err
	}

	return r.Find(ctx, id)
}

func (r *TodoPostgresRepository) Find(ctx context.Context, id int32) (model.Todo, error) {
	todos, err := r.query(ctx, selectTodosWithLabels+` where todos.id = $1 order by labels.id`, id)
	if err != nil {
		return model.Todo{}, errors.Wrapf(err, "find todo %d", id)
	}
	if len(todos) == 0 {
		return model.Todo{}, &NotFoundError{Entity: "todo", ID: id}
	}

	return todos[0], nil
}

func (r *TodoPostgresRepository) All(ctx context.Context) ([]model.Todo, error) {
	todos, err := r.query(ctx, selectTodosWithLabels+` order by todos.id desc, labels.id`)
	if err != nil {
		return nil, errors.Wrap(err, "list todos")
	}

	return todos, nil
}

func (r *TodoPostgresRepository) Update(ctx context.Context, id int32, payload model.UpdateTodo) (model.Todo, error) {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var current todoRow
		err := tx.QueryRow(ctx,
			`select id, text, completed from todos where id = $1 for update`,
			id,
		).Scan(&current.ID, &current.Text, &current.Completed)
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Entity: "todo", ID: id}
		}
		if err != nil {
			return errors.Wrapf(err, "lock todo %d", id)
		}

		next := payload.Apply(model.Todo{ID: current.ID, Text: current.Text, Completed: current.Completed})
		_, err = tx.Exec(ctx,
			`update todos set text = $1, completed = $2 where id = $3`,
			next.Text, next.Completed, id,
		)
		if err != nil {
			return errors.Wrapf(err, "update todo %d", id)
		}

		if payload.Labels == nil {
			return nil
		}

		if _, err := tx.Exec(ctx, `delete from todo_labels where todo_id = $1`, id); err != nil {
			return errors.Wrapf(err, "clear labels of todo %d", id)
		}

		return insertTodoLabels(ctx, tx, id, model.DistinctIDs(*payload.Labels))
	})
	if err != nil {
		return model.Todo{}, err
	}

	return r.Find(ctx, id)
}

func (r *TodoPostgresRepository) Delete(ctx context.Context, id int32) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `delete from todo_labels where todo_id = $1`, id); err != nil {
			return errors.Wrapf(err, "delete labels of todo %d", id)
		}

		tag, err := tx.Exec(ctx, `delete from todos where id = $1`, id)
		if err != nil {
			return errors.Wrapf(err, "delete todo %d", id)
		}
		if tag.RowsAffected() == 0 {
			return &NotFoundError{Entity: "todo", ID: id}
		}

		return nil
	})
}

func (r *TodoPostgresRepository) query(ctx context.Context, sql string, args ...any) ([]model.Todo, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	joined, err := pgx.CollectRows(rows, scanTodoLabelRow)
	if err != nil {
		return nil, err
	}

	return foldTodos(joined), nil
}

func scanTodoLabelRow(row pgx.CollectableRow) (todoLabelRow, error) {
	var r todoLabelRow
	err := row.Scan(&r.ID, &r.Text, &r.Completed, &r.LabelID, &r.LabelName)
	return r, err
}

// insertTodoLabels attaches labelIDs to the todo with one statement.
// A label id without a matching label fails with a foreign key violation.
func insertTodoLabels(ctx context.Context, tx pgx.Tx, todoID int32, labelIDs []int32) error {
	if len(labelIDs) == 0 {
		return nil
	}

	_, err := tx.Exec(ctx,
		`insert into todo_labels (todo_id, label_id) select $1, id from unnest($2::int4[]) as t(id)`,
		todoID, labelIDs,
	)
	if err != nil {
		return errors.Wrapf(err, "attach labels to todo %d", todoID)
	}

	return nil
}
