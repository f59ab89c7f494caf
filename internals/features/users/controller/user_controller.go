// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultModel "quizku_backend/internals/features/quiz_results/model"
	dto "quizku_backend/internals/features/users/dto"
	model "quizku_backend/internals/features/users/model"
	helper "quizku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =======================
   GET /users/me
======================= */

// Me resolves the current user from the verified token. A token can outlive
// its user (deletion after issuance); that case is a 404.
func (ctl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] get current user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "Current user", dto.NewUserResponse(&user))
}

/* =======================
   DELETE /users/me
======================= */

// DeleteMe removes the account and all of the user's quiz results in a
// single transaction; no other user's rows are touched.
func (ctl *UserController) DeleteMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).
			Delete(&resultModel.QuizResultModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.UserModel{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] delete current user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": userID})
}
