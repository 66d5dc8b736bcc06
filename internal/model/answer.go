package model

import "time"

// TestAnswer is one submitted answer. Every submission appends new rows.
type TestAnswer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	StudentID      uint      `gorm:"not null;index:idx_answer_student_test" json:"student_id"`
	TestID         uint      `gorm:"not null;index:idx_answer_student_test" json:"test_id"`
	QuestionID     uint      `gorm:"not null" json:"question_id"`
	SelectedOption string    `json:"selected_option"`
	CreatedAt      time.Time `json:"created_at"`
}

func (TestAnswer) TableName() string { return "test_answers" }
