package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

type Attendance struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	StudentID      uint           `gorm:"not null;uniqueIndex:idx_attendance_key" json:"student_id"`
	CourseID       uint           `gorm:"not null;uniqueIndex:idx_attendance_key" json:"course_id"`
	TrainingID     uint           `gorm:"not null;uniqueIndex:idx_attendance_key;index" json:"training_id"`
	AttendanceDate datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_key" json:"attendance_date"`
	Status         string         `gorm:"not null;size:16" json:"status"` // present, absent
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Attendance) TableName() string { return "attendance" }

// AttendanceRow is an attendance record with the student's display name.
type AttendanceRow struct {
	Attendance
	StudentName string `json:"student_name"`
}
