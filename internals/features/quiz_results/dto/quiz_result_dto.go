// file: internals/features/quiz_results/dto/quiz_result_dto.go
package dto

/* ==============================
   CREATE (POST /quiz-results)
============================== */

// The user id is never part of the body; it comes from the verified token.
type SaveQuizResultRequest struct {
	QuizID         uint    `json:"quiz_id" validate:"required,gte=1"`
	Score          float64 `json:"score" validate:"gte=0,lte=100"`
	CorrectAnswers int     `json:"correct_answers" validate:"gte=0,ltefield=TotalQuestions"`
	TotalQuestions int     `json:"total_questions" validate:"gte=1"`
}
