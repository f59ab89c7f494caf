// file: internals/features/quiz_results/controller/quiz_result_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "quizku_backend/internals/features/quiz_results/dto"
	model "quizku_backend/internals/features/quiz_results/model"
	quizModel "quizku_backend/internals/features/quizzes/model"
	helper "quizku_backend/internals/helpers"
)

type QuizResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizResultController(db *gorm.DB) *QuizResultController {
	return &QuizResultController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   POST /quiz-results
======================= */

// Save records one attempt per (user, quiz). The quiz must exist; a second
// attempt is rejected by the composite unique index, not overwritten.
func (ctl *QuizResultController) Save(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SaveQuizResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var quiz quizModel.QuizModel
	if err := ctl.DB.Select("id").First(&quiz, req.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		log.Println("[ERROR] quiz lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up quiz")
	}

	result := model.QuizResultModel{
		UserID:         userID,
		QuizID:         req.QuizID,
		Score:          req.Score,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
	}
	if err := ctl.DB.Create(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Result already recorded for this quiz")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		log.Println("[ERROR] save result:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save result")
	}

	return helper.JsonCreated(c, "Result saved", result)
}

/* =======================
   GET /quiz-results
======================= */

// Mine lists the current user's results, reverse-chronological.
func (ctl *QuizResultController) Mine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var results []model.QuizResultModel
	if err := ctl.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&results).Error; err != nil {
		log.Println("[ERROR] list results:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return helper.JsonOK(c, "My results", results)
}
