package model

import (
	"time"

	quizModel "quizku_backend/internals/features/quizzes/model"
	userModel "quizku_backend/internals/features/users/model"
)

// QuizResultModel represents the quiz_results table: one user's attempt at
// one quiz. The composite unique index on (user_id, quiz_id) makes a second
// attempt a storage-level conflict — no check-then-insert race.
type QuizResultModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"column:user_id;not null;uniqueIndex:uq_quiz_results_user_quiz" json:"user_id"`
	QuizID         uint      `gorm:"column:quiz_id;not null;uniqueIndex:uq_quiz_results_user_quiz" json:"quiz_id"`
	Score          float64   `gorm:"type:numeric(5,2);not null" json:"score"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	User userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quiz quizModel.QuizModel `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizResultModel) TableName() string {
	return "quiz_results"
}
