package models

import (
	"time"
)

// Client represents the clients table
type Client struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	AgencyID       uint       `json:"agency_id" gorm:"column:agency_id;index"`
	Name           string     `json:"name" gorm:"column:name"`
	Gender         *string    `json:"gender" gorm:"column:gender"`
	Email          *string    `json:"email" gorm:"column:email"`
	Mobile         *string    `json:"mobile" gorm:"column:mobile"`
	DateOfBirth    *time.Time `json:"date_of_birth" gorm:"column:date_of_birth"`
	MaritalStatus  *string    `json:"marital_status" gorm:"column:marital_status"`
	AddressLine1   *string    `json:"address_line_1" gorm:"column:address_line_1"`
	StateID        *uint      `json:"state_id" gorm:"column:state_id"`
	CityID         *uint      `json:"city_id" gorm:"column:city_id"`
	Pincode        *string    `json:"pincode" gorm:"column:pincode"`
	PassportNumber *string    `json:"passport_number" gorm:"column:passport_number"`
	PanNumber      *string    `json:"pan_number" gorm:"column:pan_number"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	TravelDocuments []TravelDocument `json:"travel_documents,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName sets the insert table name for Client
func (Client) TableName() string {
	return "clients"
}
