package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HotelBooking represents the hotel_bookings table
type HotelBooking struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	BookingID     uint            `json:"booking_id" gorm:"column:booking_id;index"`
	HotelName     string          `json:"hotel_name" gorm:"column:hotel_name"`
	CityID        *uint           `json:"city_id" gorm:"column:city_id"`
	CheckInDate   *time.Time      `json:"check_in_date" gorm:"column:check_in_date"`
	CheckOutDate  *time.Time      `json:"check_out_date" gorm:"column:check_out_date"`
	NumberOfRooms *int            `json:"number_of_rooms" gorm:"column:number_of_rooms"`
	Plan          *string         `json:"plan" gorm:"column:plan"`
	Cost          decimal.Decimal `json:"cost" gorm:"column:cost;type:numeric(12,2)"`
	Status        string          `json:"status" gorm:"column:status;default:Booked"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName sets the insert table name for HotelBooking
func (HotelBooking) TableName() string {
	return "hotel_bookings"
}
