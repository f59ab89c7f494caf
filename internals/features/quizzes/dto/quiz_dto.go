// file: internals/features/quizzes/dto/quiz_dto.go
package dto

import (
	"fmt"
	"strings"

	model "quizku_backend/internals/features/quizzes/model"
)

/* ==============================
   CREATE (POST /quizzes)
============================== */

type CreateQuestionRequest struct {
	Question           string   `json:"question" validate:"required"`
	Choices            []string `json:"choices" validate:"required,min=2,dive,required"`
	CorrectAnswerIndex int      `json:"correct_answer_index" validate:"gte=0"`
	Explanation        string   `json:"explanation"`
	Category           string   `json:"category" validate:"omitempty,max=100"`
	Difficulty         string   `json:"difficulty" validate:"omitempty,max=50"`
	ImageURL           string   `json:"image_url" validate:"omitempty,max=512"`
}

type CreateQuizRequest struct {
	Name        string                  `json:"name" validate:"required,max=180"`
	Description string                  `json:"description"`
	ImageURL    string                  `json:"image_url" validate:"omitempty,max=512"`
	Category    string                  `json:"category" validate:"required,max=100"`
	Difficulty  string                  `json:"difficulty" validate:"omitempty,max=50"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

// ToModel builds the quiz with its embedded questions, checking that every
// correct_answer_index is a valid index into that question's own choices.
func (r *CreateQuizRequest) ToModel() (*model.QuizModel, error) {
	quiz := model.QuizModel{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    strings.TrimSpace(r.Category),
		Difficulty:  r.Difficulty,
	}

	for i, q := range r.Questions {
		if q.CorrectAnswerIndex >= len(q.Choices) {
			return nil, fmt.Errorf("question %d: correct_answer_index %d out of range for %d choices",
				i, q.CorrectAnswerIndex, len(q.Choices))
		}
		question := model.QuestionModel{
			Question:           q.Question,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
			Category:           q.Category,
			Difficulty:         q.Difficulty,
			ImageURL:           q.ImageURL,
		}
		question.SetChoices(q.Choices)
		quiz.Questions = append(quiz.Questions, question)
	}

	return &quiz, nil
}

/* ==============================
   READ (GET /quizzes/random-by-category)
============================== */

type CategoryQuizzes struct {
	Category string            `json:"category"`
	Quizzes  []model.QuizModel `json:"quizzes"`
}
