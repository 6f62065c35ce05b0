package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GroupBooking represents the group_bookings table
type GroupBooking struct {
	ID                     uint            `json:"id" gorm:"primarykey"`
	AgencyID               uint            `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_group_bookings_agency_number"`
	BranchID               *uint           `json:"branch_id" gorm:"column:branch_id"`
	GroupBookingNumber     string          `json:"group_booking_number" gorm:"column:group_booking_number;uniqueIndex:idx_group_bookings_agency_number"`
	GroupName              string          `json:"group_name" gorm:"column:group_name"`
	BookingDate            time.Time       `json:"booking_date" gorm:"column:booking_date"`
	TourID                 *uint           `json:"tour_id" gorm:"column:tour_id;index"`
	NumberOfAdults         *int            `json:"number_of_adults" gorm:"column:number_of_adults"`
	NumberOfChildren5To11  *int            `json:"number_of_children_5_to_11" gorm:"column:number_of_children_5_to_11"`
	NumberOfChildrenBelow5 *int            `json:"number_of_children_below_5" gorm:"column:number_of_children_below_5"`
	TotalCost              decimal.Decimal `json:"total_cost" gorm:"column:total_cost;type:numeric(12,2)"`
	Status                 string          `json:"status" gorm:"column:status;default:Open"`
	Remarks                *string         `json:"remarks" gorm:"column:remarks"`
	CreatedByID            *uint           `json:"created_by_id" gorm:"column:created_by_id"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for GroupBooking
func (GroupBooking) TableName() string {
	return "group_bookings"
}
