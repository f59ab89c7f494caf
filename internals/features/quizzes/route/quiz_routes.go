package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "quizku_backend/internals/features/quizzes/controller"
	authMw "quizku_backend/internals/middlewares/auth"
)

func QuizRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewQuizController(db)

	// 🔓 public reads; static paths before the :id wildcard
	app.Get("/quizzes", ctl.GetAll)
	app.Get("/quizzes/random-by-category", ctl.RandomByCategory)
	app.Get("/quiz-categories", ctl.Categories)
	app.Get("/quizzes/:id", ctl.GetByID)

	// 🔐 any authenticated user may create or delete any quiz
	app.Post("/quizzes", authMw.AuthMiddleware(), ctl.Create)
	app.Delete("/quizzes/:id", authMw.AuthMiddleware(), ctl.Delete)
}
