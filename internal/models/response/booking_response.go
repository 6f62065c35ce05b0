package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatusCount is one status bucket of the booking statistics
type BookingStatusCount struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// BookingExportRow is one flattened booking line for the Excel export
type BookingExportRow struct {
	BookingNumber string          `json:"booking_number"`
	BookingDate   time.Time       `json:"booking_date"`
	ClientName    string          `json:"client_name"`
	TourName      *string         `json:"tour_name"`
	Adults        *int            `json:"adults"`
	Children      *int            `json:"children"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Status        string          `json:"status"`
}

// BookingStatisticsResponse aggregates an agency's bookings by status
type BookingStatisticsResponse struct {
	TotalBookings int64                `json:"total_bookings"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	ByStatus      []BookingStatusCount `json:"by_status"`
}
