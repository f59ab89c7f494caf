package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "quizku_backend/internals/features/users/controller"
	authMw "quizku_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	authCtl := controller.NewAuthController(db)
	userCtl := controller.NewUserController(db)

	// 🔓 public
	app.Post("/users", authCtl.Register)
	app.Post("/token", authCtl.Login)

	// 🔐 self-scoped, bearer token required
	app.Get("/users/me", authMw.AuthMiddleware(), userCtl.Me)
	app.Delete("/users/me", authMw.AuthMiddleware(), userCtl.DeleteMe)
}
