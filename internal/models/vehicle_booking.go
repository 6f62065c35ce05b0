package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VehicleBooking represents the vehicle_bookings table. Each row carries a
// sequence-issued hire voucher number scoped to the agency.
type VehicleBooking struct {
	ID                 uint            `json:"id" gorm:"primarykey"`
	AgencyID           uint            `json:"agency_id" gorm:"column:agency_id;uniqueIndex:idx_vehicle_bookings_agency_voucher"`
	BookingID          uint            `json:"booking_id" gorm:"column:booking_id;index"`
	HireVoucherNumber  string          `json:"hire_voucher_number" gorm:"column:hire_voucher_number;uniqueIndex:idx_vehicle_bookings_agency_voucher"`
	VehicleType        *string         `json:"vehicle_type" gorm:"column:vehicle_type"`
	VendorName         *string         `json:"vendor_name" gorm:"column:vendor_name"`
	PickupDate         *time.Time      `json:"pickup_date" gorm:"column:pickup_date"`
	ReturnDate         *time.Time      `json:"return_date" gorm:"column:return_date"`
	NumberOfVehicles   *int            `json:"number_of_vehicles" gorm:"column:number_of_vehicles"`
	Cost               decimal.Decimal `json:"cost" gorm:"column:cost;type:numeric(12,2)"`
	Status             string          `json:"status" gorm:"column:status;default:Booked"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for VehicleBooking
func (VehicleBooking) TableName() string {
	return "vehicle_bookings"
}
