package service

import (
	"github.com/deppfellow/go-todo/internal/repository"
	"github.com/deppfellow/go-todo/internal/server"
)

type Services struct {
	Todo  *TodoService
	Label *LabelService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Todo:  NewTodoService(s, repos.Todo),
		Label: NewLabelService(s, repos.Label),
	}, nil
}
