package request

import "venue-boxoffice/internal/usecase/queries"

type QuoteRequest struct {
	Venue       string  `json:"venue" binding:"required" example:"Main Hall"`
	BookingType string  `json:"booking_type" binding:"required" example:"HOURLY"`
	DayType     string  `json:"day_type,omitempty" example:"MONDAY_TO_THURSDAY"`
	Date        string  `json:"date,omitempty" example:"2025-05-01"`
	Hours       float64 `json:"hours" example:"4"`
	IncludeVAT  bool    `json:"include_vat"`
}

func (r *QuoteRequest) ToQuery() queries.QuoteRequest {
	return queries.QuoteRequest{
		Venue:       r.Venue,
		BookingType: r.BookingType,
		DayType:     r.DayType,
		Date:        r.Date,
		Hours:       r.Hours,
		IncludeVAT:  r.IncludeVAT,
	}
}
