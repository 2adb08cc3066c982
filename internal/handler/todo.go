package handler

import (
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
	"github.com/labstack/echo/v4"
)

type CreateTodoRequest struct {
	model.CreateTodo
}

func (r *CreateTodoRequest) Validate() error {
	return r.CreateTodo.Validate()
}

// TodoIDRequest carries the :id path parameter of the single-todo routes.
type TodoIDRequest struct {
	ID int32 `param:"id"`
}

func (r *TodoIDRequest) Validate() error {
	return nil
}

type UpdateTodoRequest struct {
	ID int32 `param:"id" json:"-"`
	model.UpdateTodo
}

func (r *UpdateTodoRequest) Validate() error {
	return r.UpdateTodo.Validate()
}

type ListTodosRequest struct{}

func (r *ListTodosRequest) Validate() error {
	return nil
}

type TodoHandler struct {
	Handler
	todoService *service.TodoService
}

func NewTodoHandler(s *server.Server, todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		Handler:     NewHandler(s),
		todoService: todoService,
	}
}

func (h *TodoHandler) CreateTodo(c echo.Context, req *CreateTodoRequest) (model.Todo, error) {
	return h.todoService.Create(c.Request().Context(), req.CreateTodo)
}

func (h *TodoHandler) ListTodos(c echo.Context, req *ListTodosRequest) ([]model.Todo, error) {
	return h.todoService.List(c.Request().Context())
}

func (h *TodoHandler) GetTodo(c echo.Context, req *TodoIDRequest) (model.Todo, error) {
	return h.todoService.Get(c.Request().Context(), req.ID)
}

// UpdateTodo applies a partial update. Fields missing from the body keep
// their stored values.
func (h *TodoHandler) UpdateTodo(c echo.Context, req *UpdateTodoRequest) (model.Todo, error) {
	return h.todoService.Update(c.Request().Context(), req.ID, req.UpdateTodo)
}

func (h *TodoHandler) DeleteTodo(c echo.Context, req *TodoIDRequest) error {
	return h.todoService.Delete(c.Request().Context(), req.ID)
}
