package router

import (
	"net/http"

	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, world!")
	})

	r.GET("/status", h.Health.CheckHealth)
}
