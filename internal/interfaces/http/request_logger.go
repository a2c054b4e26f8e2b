package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/auth-service/pkg/logger"
)

// RequestLogger emite un evento zerolog por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		rid, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Str("user_id", GetUserID(c)).
			Msg("http request")
		return err
	}
}
