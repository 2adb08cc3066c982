package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) *Services {
	t.Helper()

	log := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{Repository: config.RepositoryConfig{Backend: config.BackendMemory}},
		Logger: &log,
	}

	repos, err := repository.NewRepositories(s)
	require.NoError(t, err)

	services, err := NewServices(s, repos)
	require.NoError(t, err)
	return services
}

func loggingContext(buf *bytes.Buffer) context.Context {
	log := zerolog.New(buf)
	return log.WithContext(context.Background())
}

func TestTodoServiceLogsMutations(t *testing.T) {
	services := newServices(t)

	var buf bytes.Buffer
	ctx := loggingContext(&buf)

	label, err := services.Label.Create(ctx, model.CreateLabel{Name: "Groceries"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"label created"`)

	todo, err := services.Todo.Create(ctx, model.CreateTodo{Text: "buy milk", Labels: []int32{label.ID}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"message":"todo created"`)

	done := true
	updated, err := services.Todo.Update(ctx, todo.ID, model.UpdateTodo{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, []model.Label{label}, updated.Labels)
	assert.Contains(t, buf.String(), `"labels_replaced":false`)

	require.NoError(t, services.Todo.Delete(ctx, todo.ID))
	assert.Contains(t, buf.String(), `"message":"todo deleted"`)
}

func TestServicesPassRepositoryErrorsThrough(t *testing.T) {
	services := newServices(t)
	ctx := context.Background()

	_, err := services.Todo.Get(ctx, 42)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	var notFound *repository.NotFoundError
	require.ErrorAs(t, services.Label.Delete(ctx, 7), &notFound)
	assert.Equal(t, "label", notFound.Entity)

	_, err = services.Todo.Create(ctx, model.CreateTodo{Text: "x", Labels: []int32{9}})
	var refErr *repository.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, int32(9), refErr.ID)
}

func TestLabelServiceList(t *testing.T) {
	services := newServices(t)
	ctx := context.Background()

	labels, err := services.Label.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, labels)

	_, err = services.Label.Create(ctx, model.CreateLabel{Name: "a"})
	require.NoError(t, err)
	_, err = services.Label.Create(ctx, model.CreateLabel{Name: "b"})
	require.NoError(t, err)

	labels, err = services.Label.List(ctx)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, "a", labels[0].Name)
}
