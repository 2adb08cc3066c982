package repository

import (
	"context"
	"os"
	"testing"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const integrationSchema = `
create table if not exists todos (
	id serial primary key,
	text text not null,
	completed boolean not null default false
);
create table if not exists labels (
	id serial primary key,
	name text not null
);
create table if not exists todo_labels (
	id serial primary key,
	todo_id integer not null references todos (id),
	label_id integer not null references labels (id)
);
truncate todo_labels, todos, labels restart identity;
`

// newIntegrationPool connects to TODO_TEST_DATABASE_URL and resets the
// schema. The test is skipped when the variable is unset.
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TODO_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TODO_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, integrationSchema)
	require.NoError(t, err)

	return pool
}

func TestPostgresIntegrationScenario(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()

	labels := NewLabelPostgresRepository(pool)
	todos := NewTodoPostgresRepository(pool)

	home, err := labels.Create(ctx, "home")
	require.NoError(t, err)

	created, err := todos.Create(ctx, model.CreateTodo{Text: "buy milk", Labels: []int32{home.ID}})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Text)
	assert.Equal(t, []model.Label{home}, created.Labels)

	updated, err := todos.Update(ctx, created.ID, model.UpdateTodo{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, []model.Label{home}, updated.Labels)

	cleared, err := todos.Update(ctx, created.ID, model.UpdateTodo{Labels: ptr([]int32{})})
	require.NoError(t, err)
	assert.Equal(t, []model.Label{}, cleared.Labels)

	all, err := todos.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, todos.Delete(ctx, created.ID))
	_, err = todos.Find(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var joinRows int
	require.NoError(t, pool.QueryRow(ctx, `select count(*) from todo_labels`).Scan(&joinRows))
	assert.Zero(t, joinRows)
}

func TestPostgresIntegrationUnknownLabelLeavesNothing(t *testing.T) {
	pool := newIntegrationPool(t)
	ctx := context.Background()
	todos := NewTodoPostgresRepository(pool)

	_, err := todos.Create(ctx, model.CreateTodo{Text: "x", Labels: []int32{12345}})
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)

	all, err := todos.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
