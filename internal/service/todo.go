package service

import (
	"context"

	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/rs/zerolog"
)

// TodoService exposes the todo operations to the handlers. Repository errors
// are returned as they are; the global error handler maps them.
type TodoService struct {
	server *server.Server
	repo   repository.TodoRepository
}

func NewTodoService(s *server.Server, repo repository.TodoRepository) *TodoService {
	return &TodoService{
		server: s,
		repo:   repo,
	}
}

func (s *TodoService) Create(ctx context.Context, payload model.CreateTodo) (model.Todo, error) {
	todo, err := s.repo.Create(ctx, payload)
	if err != nil {
		return model.Todo{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int32("todo_id", todo.ID).
		Int("label_count", len(todo.Labels)).
		Msg("todo created")

	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, id int32) (model.Todo, error) {
	return s.repo.Find(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.repo.All(ctx)
}

func (s *TodoService) Update(ctx context.Context, id int32, payload model.UpdateTodo) (model.Todo, error) {
	todo, err := s.repo.Update(ctx, id, payload)
	if err != nil {
		return model.Todo{}, err
	}

	zerolog.Ctx(ctx).Info().
		Int32("todo_id", todo.ID).
		Bool("text_changed", payload.Text != nil).
		Bool("completed_changed", payload.Completed != nil).
		Bool("labels_replaced", payload.Labels != nil).
		Msg("todo updated")

	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int32("todo_id", id).Msg("todo deleted")
	return nil
}
