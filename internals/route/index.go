// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizResultRoute "quizku_backend/internals/features/quiz_results/route"
	quizRoute "quizku_backend/internals/features/quizzes/route"
	userRoute "quizku_backend/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(app, db)

	log.Println("[INFO] Setting up QuizResultRoutes...")
	quizResultRoute.QuizResultRoutes(app, db)
}
