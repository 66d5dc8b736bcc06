package model

import "time"

type StudentDocument struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	StudentID    uint      `gorm:"not null;index" json:"student_id"`
	CourseID     uint      `gorm:"not null;index" json:"course_id"`
	DocumentName string    `gorm:"not null" json:"document_name"`
	FilePath     string    `gorm:"not null" json:"file_path"`
	ProjectType  string    `json:"project_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (StudentDocument) TableName() string { return "student_documents" }
