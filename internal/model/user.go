package model

import "time"

const (
	RoleAdmin   uint = 1
	RoleFaculty uint = 2
	RoleStudent uint = 3
)

type Role struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Role) TableName() string { return "roles" }

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"not null;uniqueIndex;size:191" json:"email"`
	Username  string    `gorm:"not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	RoleID    uint      `gorm:"not null;index" json:"role_id"`
	CompanyID uint      `gorm:"index" json:"company_id"`
	IsActive  bool      `gorm:"column:isactive;not null;default:true" json:"isactive"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserRow is a user joined with its role and company names.
type UserRow struct {
	User
	RoleName    string `json:"role_name"`
	CompanyName string `json:"company_name"`
}
