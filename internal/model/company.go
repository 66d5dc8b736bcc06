package model

import "time"

type Company struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
