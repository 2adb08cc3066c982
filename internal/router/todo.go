package router

import (
	"net/http"

	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerTodoRoutes(r *echo.Echo, h *handler.Handlers) {
	todos := r.Group("/todos")

	todos.POST("", handler.Handle(h.Todo.Handler, h.Todo.CreateTodo, http.StatusCreated, &handler.CreateTodoRequest{}))
	todos.GET("", handler.Handle(h.Todo.Handler, h.Todo.ListTodos, http.StatusOK, &handler.ListTodosRequest{}))
	todos.GET("/:id", handler.Handle(h.Todo.Handler, h.Todo.GetTodo, http.StatusOK, &handler.TodoIDRequest{}))
	todos.PATCH("/:id", handler.Handle(h.Todo.Handler, h.Todo.UpdateTodo, http.StatusOK, &handler.UpdateTodoRequest{}))
	todos.DELETE("/:id", handler.HandleNoContent(h.Todo.Handler, h.Todo.DeleteTodo, http.StatusNoContent, &handler.TodoIDRequest{}))
}
