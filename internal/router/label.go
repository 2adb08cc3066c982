package router

import (
	"net/http"

	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerLabelRoutes(r *echo.Echo, h *handler.Handlers) {
	labels := r.Group("/labels")

	labels.POST("", handler.Handle(h.Label.Handler, h.Label.CreateLabel, http.StatusCreated, &handler.CreateLabelRequest{}))
	labels.GET("", handler.Handle(h.Label.Handler, h.Label.ListLabels, http.StatusOK, &handler.ListLabelsRequest{}))
	labels.DELETE("/:id", handler.HandleNoContent(h.Label.Handler, h.Label.DeleteLabel, http.StatusNoContent, &handler.LabelIDRequest{}))
}
