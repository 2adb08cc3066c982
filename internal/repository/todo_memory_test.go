package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepos(t *testing.T, labelNames ...string) (*TodoMemoryRepository, *LabelMemoryRepository) {
	t.Helper()

	labels := NewLabelMemoryRepository()
	for _, name := range labelNames {
		_, err := labels.Create(context.Background(), name)
		require.NoError(t, err)
	}

	return NewTodoMemoryRepository(labels), labels
}

func TestTodoMemoryRepositoryScenario(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t, "home")

	created, err := todos.Create(ctx, model.CreateTodo{Text: "buy milk", Labels: []int32{1}})
	require.NoError(t, err)
	assert.Equal(t, model.Todo{
		ID:     1,
		Text:   "buy milk",
		Labels: []model.Label{{ID: 1, Name: "home"}},
	}, created)

	found, err := todos.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	updated, err := todos.Update(ctx, created.ID, model.UpdateTodo{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Text)
	assert.Equal(t, []model.Label{{ID: 1, Name: "home"}}, updated.Labels)

	cleared, err := todos.Update(ctx, created.ID, model.UpdateTodo{Labels: ptr([]int32{})})
	require.NoError(t, err)
	assert.Equal(t, []model.Label{}, cleared.Labels)
	assert.True(t, cleared.Completed)

	require.NoError(t, todos.Delete(ctx, created.ID))

	_, err = todos.Find(ctx, created.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "todo", nf.Entity)
	assert.Equal(t, created.ID, nf.ID)
}

func TestTodoMemoryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t)

	_, err := todos.Find(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = todos.Update(ctx, 42, model.UpdateTodo{Text: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	err = todos.Delete(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTodoMemoryRepositoryAll(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t, "a", "b")

	all, err := todos.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for i := range 3 {
		_, err := todos.Create(ctx, model.CreateTodo{Text: fmt.Sprintf("todo %d", i), Labels: []int32{2, 1}})
		require.NoError(t, err)
	}

	all, err = todos.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int32{3, 2, 1}, []int32{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, []model.Label{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, all[0].Labels)
}

func TestTodoMemoryRepositoryDeduplicatesLabels(t *testing.T) {
	todos, _ := newMemoryRepos(t, "a")

	created, err := todos.Create(context.Background(), model.CreateTodo{Text: "x", Labels: []int32{1, 1, 1}})
	require.NoError(t, err)
	assert.Len(t, created.Labels, 1)
}

func TestTodoMemoryRepositoryUnknownLabel(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t, "a")

	_, err := todos.Create(ctx, model.CreateTodo{Text: "x", Labels: []int32{1, 5}})
	var ref *ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, int32(5), ref.ID)

	all, err := todos.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed create must not leave a todo behind")

	created, err := todos.Create(ctx, model.CreateTodo{Text: "x"})
	require.NoError(t, err)

	_, err = todos.Update(ctx, created.ID, model.UpdateTodo{Text: ptr("y"), Labels: ptr([]int32{7})})
	require.ErrorAs(t, err, &ref)

	found, err := todos.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", found.Text, "failed update must not apply partially")
}

func TestTodoMemoryRepositoryDeletedLabelDisappears(t *testing.T) {
	ctx := context.Background()
	todos, labels := newMemoryRepos(t, "a", "b")

	created, err := todos.Create(ctx, model.CreateTodo{Text: "x", Labels: []int32{1, 2}})
	require.NoError(t, err)
	require.Len(t, created.Labels, 2)

	require.NoError(t, labels.Delete(ctx, 1))

	found, err := todos.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Label{{ID: 2, Name: "b"}}, found.Labels)
}

func TestTodoMemoryRepositoryIDsNotReused(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t)

	first, err := todos.Create(ctx, model.CreateTodo{Text: "a"})
	require.NoError(t, err)
	second, err := todos.Create(ctx, model.CreateTodo{Text: "b"})
	require.NoError(t, err)

	require.NoError(t, todos.Delete(ctx, first.ID))

	third, err := todos.Create(ctx, model.CreateTodo{Text: "c"})
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)

	found, err := todos.Find(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", found.Text)
}

func TestTodoMemoryRepositoryConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	todos, _ := newMemoryRepos(t, "a")

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			_, err := todos.Create(ctx, model.CreateTodo{Text: fmt.Sprintf("t%d", i), Labels: []int32{1}})
			assert.NoError(t, err)
			_, err = todos.All(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := todos.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)

	seen := make(map[int32]bool, workers)
	for _, todo := range all {
		assert.False(t, seen[todo.ID], "duplicate id %d", todo.ID)
		seen[todo.ID] = true
	}
}
