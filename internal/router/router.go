// Package router builds the echo instance: it installs the middleware stack
// and registers the system, todo and label routes.
package router

import (
	"github.com/deppfellow/go-todo/internal/handler"
	"github.com/deppfellow/go-todo/internal/middleware"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns an echo instance ready to be passed to
// server.SetupHTTPServer.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id and the New Relic transaction must exist
	// before the context logger is built, and the request logger must see
	// everything below it.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerTodoRoutes(router, h)
	registerLabelRoutes(router, h)

	return router
}
