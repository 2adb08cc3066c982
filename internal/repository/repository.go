// Package repository owns persistence for todos and labels.
//
// Every store is reached through the TodoRepository and LabelRepository
// contracts. Two backends satisfy them: a PostgreSQL one built on pgx, and an
// in-memory one that needs nothing but the process heap. Callers cannot tell
// them apart beyond latency.
package repository

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TodoRepository is the capability contract for todo storage.
//
// Find, Update and Delete return a *NotFoundError (matching ErrNotFound) when
// the id does not exist. Create and Update fail when a label id does not
// reference an existing label.
type TodoRepository interface {
	Create(ctx context.Context, payload model.CreateTodo) (model.Todo, error)
	Find(ctx context.Context, id int32) (model.Todo, error)
	// All returns every todo ordered by id, newest first.
	All(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, id int32, payload model.UpdateTodo) (model.Todo, error)
	Delete(ctx context.Context, id int32) error
}

// LabelRepository is the capability contract for label storage.
type LabelRepository interface {
	Create(ctx context.Context, name string) (model.Label, error)
	// All returns every label ordered by id ascending.
	All(ctx context.Context) ([]model.Label, error)
	// Delete removes the label and detaches it from every todo.
	Delete(ctx context.Context, id int32) error
}

// DBTX is the subset of *pgxpool.Pool the PostgreSQL repositories use.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
