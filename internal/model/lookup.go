package model

import (
	"time"

	"gorm.io/datatypes"
)

type StudentBrief struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// StudentAttendanceRow is a student of a training next to their attendance
// on one day; the attendance fields are nil when nothing was recorded.
type StudentAttendanceRow struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	AttendanceID   *uint           `json:"attendance_id"`
	AttendanceDate *datatypes.Date `json:"attendance_date"`
	Status         *string         `json:"status"`
}

const (
	MappingChecked   = "Check"
	MappingUnchecked = "Uncheck"
)

// MappingStatusRow drives the checkbox list used to (re)assign students.
type MappingStatusRow struct {
	UserID            uint   `json:"user_id"`
	Username          string `json:"username"`
	CompanyID         uint   `json:"company_id"`
	TrainingID        *uint  `json:"training_id"`
	HasTrainingRecord string `json:"has_training_record"`
}

type TestSummaryRow struct {
	TestMaster
	QuestionCount int `json:"question_count"`
}

const (
	ReportStudent  = "student"
	ReportTraining = "training"
	ReportCourse   = "course"
	ReportCompany  = "company"
)

// ReportRow is one score seen from the entity the report is about.
type ReportRow struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name"`
	TestID      uint      `json:"test_id"`
	TestName    string    `json:"test_name"`
	TestScore   int       `json:"test_score"`
	SubmittedAt time.Time `json:"submitted_at"`
}
