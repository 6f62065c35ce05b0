package models

import (
	"time"
)

// Agency represents the agencies table. An agency is the tenant root:
// branches, staff, clients and bookings all hang off an agency.
type Agency struct {
	ID                uint       `json:"id" gorm:"primarykey"`
	BusinessName      string     `json:"business_name" gorm:"column:business_name"`
	AddressLine1      *string    `json:"address_line_1" gorm:"column:address_line_1"`
	AddressLine2      *string    `json:"address_line_2" gorm:"column:address_line_2"`
	StateID           *uint      `json:"state_id" gorm:"column:state_id"`
	CityID            *uint      `json:"city_id" gorm:"column:city_id"`
	Pincode           *string    `json:"pincode" gorm:"column:pincode"`
	ContactPersonName string     `json:"contact_person_name" gorm:"column:contact_person_name"`
	ContactPersonEmail string    `json:"contact_person_email" gorm:"column:contact_person_email;uniqueIndex"`
	ContactPersonPhone *string   `json:"contact_person_phone" gorm:"column:contact_person_phone"`
	GSTIN             *string    `json:"gstin" gorm:"column:gstin"`
	// StorageID names the permanent upload directory shared by this
	// agency's attachment fields; nil iff both filenames are nil.
	StorageID          *string   `json:"storage_id" gorm:"column:storage_id"`
	LogoFilename       *string   `json:"logo_filename" gorm:"column:logo_filename"`
	LetterheadFilename *string   `json:"letterhead_filename" gorm:"column:letterhead_filename"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Agency
func (Agency) TableName() string {
	return "agencies"
}
