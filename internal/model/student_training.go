package model

import "time"

// StudentTraining maps a student onto a training. A row existing means "mapped".
type StudentTraining struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_student_training" json:"student_id"`
	TrainingID uint      `gorm:"not null;uniqueIndex:idx_student_training;index" json:"training_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (StudentTraining) TableName() string { return "student_trainings" }
