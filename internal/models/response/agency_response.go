package response

import (
	"time"
)

// AgencyResponse is the API shape of an agency, with public attachment URLs
// derived from the stored storage id and filenames
type AgencyResponse struct {
	ID                 uint      `json:"id"`
	BusinessName       string    `json:"business_name"`
	AddressLine1       *string   `json:"address_line_1"`
	AddressLine2       *string   `json:"address_line_2"`
	StateID            *uint     `json:"state_id"`
	CityID             *uint     `json:"city_id"`
	Pincode            *string   `json:"pincode"`
	ContactPersonName  string    `json:"contact_person_name"`
	ContactPersonEmail string    `json:"contact_person_email"`
	ContactPersonPhone *string   `json:"contact_person_phone"`
	GSTIN              *string   `json:"gstin"`
	LogoURL            *string   `json:"logo_url"`
	LetterheadURL      *string   `json:"letterhead_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
