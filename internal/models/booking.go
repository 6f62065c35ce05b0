package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking represents the bookings table. BookingNumber is issued by the
// document sequence generator inside the same transaction as the insert.
type Booking struct {
	ID                     uint            `json:"id" gorm:"primarykey"`
	AgencyID               uint            `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_bookings_agency_number"`
	BranchID               *uint           `json:"branch_id" gorm:"column:branch_id"`
	BookingNumber          string          `json:"booking_number" gorm:"column:booking_number;uniqueIndex:idx_bookings_agency_number"`
	BookingDate            time.Time       `json:"booking_date" gorm:"column:booking_date"`
	DepartureDate          *time.Time      `json:"departure_date" gorm:"column:departure_date"`
	ClientID               uint            `json:"client_id" gorm:"column:client_id;index"`
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

	VehicleBookings []VehicleBooking `json:"vehicle_bookings,omitempty" gorm:"foreignKey:BookingID"`
	HotelBookings   []HotelBooking   `json:"hotel_bookings,omitempty" gorm:"foreignKey:BookingID"`
}

// TableName sets the insert table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
