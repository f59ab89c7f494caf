package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "quizku_backend/internals/features/quiz_results/controller"
	authMw "quizku_backend/internals/middlewares/auth"
)

func QuizResultRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewQuizResultController(db)

	// 🔐 self-scoped, bearer token required
	app.Post("/quiz-results", authMw.AuthMiddleware(), ctl.Save)
	app.Get("/quiz-results", authMw.AuthMiddleware(), ctl.Mine)
}
