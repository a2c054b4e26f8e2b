package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/auth-service/internal/infrastructure/metrics"
	"github.com/jhoicas/auth-service/pkg/logger"
)

// NewApp crea la app Fiber con el manejo de errores y los middlewares comunes.
// prom puede ser nil (sin métricas).
func NewApp(appName string, log *logger.Logger, prom *metrics.Prom) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	if prom != nil {
		app.Use(prom.Middleware())
	}
	app.Use(RequestLogger(log))
	return app
}
