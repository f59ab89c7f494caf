package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares registers the global middleware stack.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
