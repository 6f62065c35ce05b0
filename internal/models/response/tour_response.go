package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourResponse is the API shape of a tour
type TourResponse struct {
	ID                uint            `json:"id"`
	TourTitle         string          `json:"tour_title"`
	Destination       *string         `json:"destination"`
	NumberOfDays      *int            `json:"number_of_days"`
	NumberOfTravelers *int            `json:"number_of_travelers"`
	PricePerPerson    decimal.Decimal `json:"price_per_person"`
	Status            string          `json:"status"`
	Notes             *string         `json:"notes"`
	AttachmentURL     *string         `json:"attachment_url"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
