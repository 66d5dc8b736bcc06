package model

import (
	"time"

	"gorm.io/datatypes"
)

// TestMaster is a test scheduled for a training. FromDate/ToDate form the
// window in which students may take it; both are optional.
type TestMaster struct {
	TestID     uint            `gorm:"primaryKey;column:test_id" json:"test_id"`
	TrainingID uint            `gorm:"not null;index" json:"training_id"`
	TestName   string          `gorm:"not null" json:"test_name"`
	Duration   int             `gorm:"not null" json:"duration"` // minutes
	FromDate   *datatypes.Date `json:"from_date"`
	ToDate     *datatypes.Date `json:"to_date"`
	Questions  []McqQuestion   `gorm:"foreignKey:TestID;references:TestID" json:"questions,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (TestMaster) TableName() string { return "test_master" }
