package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TrainingOnline  = "Online"
	TrainingOffline = "Offline"
)

type TrainingDetail struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	TrainingName string         `gorm:"not null" json:"training_name"`
	CourseID     uint           `gorm:"not null;index" json:"course_id"`
	FromDate     datatypes.Date `json:"from_date"`
	ToDate       datatypes.Date `json:"to_date"`
	TrainingType string         `gorm:"size:16" json:"training_type"` // Online, Offline
	FacultyID    uint           `gorm:"not null;index" json:"faculty_id"`
	CompanyID    uint           `gorm:"not null;index" json:"company_id"`
	Status       string         `gorm:"not null;default:Active;size:16" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (TrainingDetail) TableName() string { return "training_details" }

// TrainingDetailRow is a training joined with the names the listing screens show.
type TrainingDetailRow struct {
	TrainingDetail
	CourseName      string `json:"course_name"`
	FacultyUsername string `json:"faculty_username"`
	CompanyName     string `json:"company_name"`
}
