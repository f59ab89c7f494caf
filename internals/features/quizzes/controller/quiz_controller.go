// file: internals/features/quizzes/controller/quiz_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "quizku_backend/internals/features/quizzes/dto"
	model "quizku_backend/internals/features/quizzes/model"
	helper "quizku_backend/internals/helpers"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   POST /quizzes
======================= */

// Create inserts the quiz and all of its questions as one atomic unit;
// partial insertion is never observable to other readers.
func (ctl *QuizController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	quiz, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	}); err != nil {
		log.Println("[ERROR] create quiz:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created", quiz)
}

/* =======================
   GET /quizzes
======================= */

func (ctl *QuizController) GetAll(c *fiber.Ctx) error {
	var quizzes []model.QuizModel
	if err := ctl.DB.Preload("Questions").Order("id ASC").Find(&quizzes).Error; err != nil {
		log.Println("[ERROR] list quizzes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
	}
	return helper.JsonOK(c, "Quizzes", quizzes)
}

/* =======================
   GET /quizzes/:id
======================= */

func (ctl *QuizController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var quiz model.QuizModel
	if err := ctl.DB.Preload("Questions").First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		log.Println("[ERROR] get quiz:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	return helper.JsonOK(c, "Quiz", quiz)
}

/* =======================
   GET /quizzes/random-by-category
======================= */

// RandomByCategory returns, per distinct category, up to 3 quizzes sampled
// uniformly without replacement, each with its full question list.
// Categories come back alphabetically; empty categories are omitted by
// construction.
func (ctl *QuizController) RandomByCategory(c *fiber.Ctx) error {
	categories, err := ctl.distinctCategories()
	if err != nil {
		log.Println("[ERROR] distinct categories:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	out := make([]dto.CategoryQuizzes, 0, len(categories))
	for _, cat := range categories {
		var quizzes []model.QuizModel
		if err := ctl.DB.Preload("Questions").
			Where("category = ?", cat).
			Order("RANDOM()").
			Limit(3).
			Find(&quizzes).Error; err != nil {
			log.Println("[ERROR] random quizzes:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quizzes")
		}
		out = append(out, dto.CategoryQuizzes{Category: cat, Quizzes: quizzes})
	}

	return helper.JsonOK(c, "Random quizzes by category", out)
}

/* =======================
   GET /quiz-categories
======================= */

// Categories returns the distinct category values, alphabetically.
func (ctl *QuizController) Categories(c *fiber.Ctx) error {
	categories, err := ctl.distinctCategories()
	if err != nil {
		log.Println("[ERROR] distinct categories:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.JsonOK(c, "Categories", categories)
}

func (ctl *QuizController) distinctCategories() ([]string, error) {
	categories := make([]string, 0)
	err := ctl.DB.Model(&model.QuizModel{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

/* =======================
   DELETE /quizzes/:id
======================= */

// Delete removes the quiz and its questions in one transaction.
func (ctl *QuizController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var quiz model.QuizModel
	if err := ctl.DB.First(&quiz, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		log.Println("[ERROR] get quiz:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch quiz")
	}

	if err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizModel{}, quiz.ID).Error
	}); err != nil {
		log.Println("[ERROR] delete quiz:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}

	return helper.JsonDeleted(c, "Quiz deleted", fiber.Map{"id": quiz.ID})
}
