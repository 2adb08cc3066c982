package handler

import (
	"github.com/deppfellow/go-todo/internal/model"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/deppfellow/go-todo/internal/service"
	"github.com/labstack/echo/v4"
)

type CreateLabelRequest struct {
	model.CreateLabel
}

func (r *CreateLabelRequest) Validate() error {
	return r.CreateLabel.Validate()
}

type LabelIDRequest struct {
	ID int32 `param:"id"`
}

func (r *LabelIDRequest) Validate() error {
	return nil
}

type ListLabelsRequest struct{}

func (r *ListLabelsRequest) Validate() error {
	return nil
}

type LabelHandler struct {
	Handler
	labelService *service.LabelService
}

func NewLabelHandler(s *server.Server, labelService *service.LabelService) *LabelHandler {
	return &LabelHandler{
		Handler:      NewHandler(s),
		labelService: labelService,
	}
}

func (h *LabelHandler) CreateLabel(c echo.Context, req *CreateLabelRequest) (model.Label, error) {
	return h.labelService.Create(c.Request().Context(), req.CreateLabel)
}

func (h *LabelHandler) ListLabels(c echo.Context, req *ListLabelsRequest) ([]model.Label, error) {
	return h.labelService.List(c.Request().Context())
}

func (h *LabelHandler) DeleteLabel(c echo.Context, req *LabelIDRequest) error {
	return h.labelService.Delete(c.Request().Context(), req.ID)
}
