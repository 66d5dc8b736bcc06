package model

import "time"

// McqQuestion is a four-option question. CorrectAnswer holds the letter of
// the right option, "A" through "D".
type McqQuestion struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TestID        uint      `gorm:"not null;index" json:"test_id"`
	TrainingID    uint      `gorm:"not null;index" json:"training_id"`
	QuestionText  string    `gorm:"type:text;not null" json:"question_text"`
	Option1       string    `gorm:"column:option_1" json:"option_1"`
	Option2       string    `gorm:"column:option_2" json:"option_2"`
	Option3       string    `gorm:"column:option_3" json:"option_3"`
	Option4       string    `gorm:"column:option_4" json:"option_4"`
	CorrectAnswer string    `gorm:"not null;size:1" json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (McqQuestion) TableName() string { return "mcq_test_questions" }

func (q McqQuestion) Options() [4]string {
	return [4]string{q.Option1, q.Option2, q.Option3, q.Option4}
}
