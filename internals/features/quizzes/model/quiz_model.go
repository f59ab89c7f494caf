package model

import (
	"time"
)

// QuizModel represents the quiz table (singular, historical name). Questions
// hang off it with ON DELETE CASCADE: a question cannot outlive its quiz.
type QuizModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:180;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	Category    string    `gorm:"size:100;index;not null" json:"category"`
	Difficulty  string    `gorm:"size:50" json:"difficulty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []QuestionModel `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (QuizModel) TableName() string {
	return "quiz"
}
