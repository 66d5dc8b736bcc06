package model

import "time"

// TestScore is the tally of one accepted submission. Resubmissions add rows;
// none are ever overwritten.
type TestScore struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TestID    uint      `gorm:"not null;index:idx_score_test_student" json:"test_id"`
	StudentID uint      `gorm:"not null;index:idx_score_test_student" json:"student_id"`
	Score     int       `gorm:"not null" json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TestScore) TableName() string { return "test_scores" }

type TestScoreRow struct {
	TestScore
	StudentName string `json:"student_name"`
}
