package models

import (
	"time"
)

// User represents the users table (agency staff)
type User struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	AgencyID     *uint      `json:"agency_id" gorm:"column:agency_id;index"`
	BranchID     *uint      `json:"branch_id" gorm:"column:branch_id"`
	Name         string     `json:"name" gorm:"column:name"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Role         string     `json:"role" gorm:"column:role"`
	Active       *bool      `json:"active" gorm:"column:active;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at" gorm:"column:last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
