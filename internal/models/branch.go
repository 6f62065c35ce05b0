package models

import (
	"time"
)

// Branch represents the branches table
type Branch struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AgencyID      uint      `json:"agency_id" gorm:"column:agency_id;index"`
	BranchName    string    `json:"branch_name" gorm:"column:branch_name"`
	Address       *string   `json:"address" gorm:"column:address"`
	StateID       *uint     `json:"state_id" gorm:"column:state_id"`
	CityID        *uint     `json:"city_id" gorm:"column:city_id"`
	Pincode       *string   `json:"pincode" gorm:"column:pincode"`
	ContactName   *string   `json:"contact_name" gorm:"column:contact_name"`
	ContactEmail  *string   `json:"contact_email" gorm:"column:contact_email"`
	ContactMobile *string   `json:"contact_mobile" gorm:"column:contact_mobile"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Branch
func (Branch) TableName() string {
	return "branches"
}
