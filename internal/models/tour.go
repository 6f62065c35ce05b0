package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tour represents the tours table
type Tour struct {
	ID                 uint            `json:"id" gorm:"primarykey"`
	AgencyID           uint            `json:"agency_id" gorm:"column:agency_id;index"`
	TourTitle          string          `json:"tour_title" gorm:"column:tour_title"`
	Destination        *string         `json:"destination" gorm:"column:destination"`
	NumberOfDays       *int            `json:"number_of_days" gorm:"column:number_of_days"`
	NumberOfTravelers  *int            `json:"number_of_travelers" gorm:"column:number_of_travelers"`
	PricePerPerson     decimal.Decimal `json:"price_per_person" gorm:"column:price_per_person;type:numeric(12,2)"`
	Status             string          `json:"status" gorm:"column:status;default:Open"`
	Notes              *string         `json:"notes" gorm:"column:notes"`
	StorageID          *string         `json:"storage_id" gorm:"column:storage_id"`
	AttachmentFilename *string         `json:"attachment_filename" gorm:"column:attachment_filename"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for Tour
func (Tour) TableName() string {
	return "tours"
}
