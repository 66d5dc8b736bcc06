package model

import (
	"time"

	"gorm.io/datatypes"
)

type Material struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	TrainingID   uint           `gorm:"not null;index" json:"training_id"`
	FacultyID    uint           `gorm:"not null;index" json:"faculty_id"`
	MaterialName string         `gorm:"not null" json:"material_name"`
	FilePath     string         `gorm:"not null" json:"file_path"`
	TrainingDate datatypes.Date `json:"training_date"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Material) TableName() string { return "material" }

type MaterialRow struct {
	Material
	FacultyName string `json:"faculty_name"`
	CourseName  string `json:"course_name"`
}

// StudentMaterialRow is a material reachable by a student through a mapped training.
type StudentMaterialRow struct {
	MaterialID   uint           `json:"material_id"`
	StudentID    uint           `json:"student_id"`
	TrainingID   uint           `json:"training_id"`
	CourseName   string         `json:"course_name"`
	FacultyName  string         `json:"faculty_name"`
	MaterialName string         `json:"material_name"`
	TrainingDate datatypes.Date `json:"training_date"`
}
