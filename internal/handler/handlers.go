package handler

import (
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
)

// Handlers groups every HTTP handler so the router is wired from one value.
type Handlers struct {
	Health *HealthHandler
	Todo   *TodoHandler
	Label  *LabelHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Todo:   NewTodoHandler(s, services.Todo),
		Label:  NewLabelHandler(s, services.Label),
	}
}
