// file: internals/features/quizzes/model/question_model.go
package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// QuestionModel represents the questions table. Choices is a jsonb array of
// strings; correct_answer_index >= 0 is a storage CHECK, while "index within
// len(choices)" is validated at the application layer on create.
type QuestionModel struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	QuizID             uint           `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Question           string         `gorm:"type:text;not null" json:"question"`
	Choices            datatypes.JSON `gorm:"not null" json:"choices"`
	CorrectAnswerIndex int            `gorm:"not null;check:correct_answer_index >= 0" json:"correct_answer_index"`
	Explanation        string         `gorm:"type:text" json:"explanation"`
	Category           string         `gorm:"size:100" json:"category"`
	Difficulty         string         `gorm:"size:50" json:"difficulty"`
	ImageURL           string         `gorm:"size:512" json:"image_url"`
}

func (QuestionModel) TableName() string { return "questions" }

// SetChoices stores the ordered choice list as a jsonb array.
func (m *QuestionModel) SetChoices(choices []string) {
	b, _ := json.Marshal(choices)
	m.Choices = datatypes.JSON(b)
}

// ChoiceList decodes the stored choices back into a string slice.
func (m *QuestionModel) ChoiceList() []string {
	var out []string
	_ = json.Unmarshal(m.Choices, &out)
	return out
}
