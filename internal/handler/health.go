package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/go-todo/internal/config"
	"github.com/deppfellow/go-todo/internal/middleware"
	"github.com/deppfellow/go-todo/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

func (h *HealthHandler) observability() *config.ObservabilityConfig {
	if h.server.Config.Observability != nil {
		return h.server.Config.Observability
	}
	return config.DefaultObservabilityConfig()
}

// CheckHealth reports the service status and, when enabled and a pool
// exists, the database check. It answers 200 when every check passes and
// 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.observability()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"backend":     h.server.Config.Repository.Backend,
		"checks":      checks,
	}
	isHealthy := true

	if h.server.DB != nil && obs.HealthCheckEnabled("database") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), obs.HealthChecks.Timeout)
		defer cancel()

		dbStart := time.Now()
		if err := h.server.DB.Pool.Ping(ctx); err != nil {
			isHealthy = false
			checks["database"] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(dbStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			h.recordHealthCheckError(map[string]any{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": time.Since(dbStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			checks["database"] = map[string]any{
				"status":        "healthy",
				"response_time": time.Since(dbStart).String(),
			}

			logger.Debug().
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	if err := c.JSON(http.StatusOK, response); err != nil {
		return errors.Wrap(err, "failed to write health response")
	}
	return nil
}

func (h *HealthHandler) recordHealthCheckError(attributes map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attributes)
	}
}
