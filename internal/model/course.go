package model

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "InActive"
)

type Course struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null;uniqueIndex;size:191" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Duration    string    `json:"duration"`
	Status      string    `gorm:"not null;default:Active;size:16" json:"status"` // Active, InActive
	CompanyID   uint      `gorm:"not null;index" json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string { return "courses" }
