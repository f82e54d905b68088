package request

import (
	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/usecase/commands"
)

// AddBookingRequest leaves required-field checks to the domain so that
// failures come back as field-level validation errors.
type AddBookingRequest struct {
	Date          string `json:"date" example:"2025-05-01"`
	Venue         string `json:"venue" example:"Main Hall"`
	StartTime     string `json:"start_time" example:"18:00"`
	EndTime       string `json:"end_time" example:"23:00"`
	EventName     string `json:"event_name" example:"Spring Recital"`
	ClientName    string `json:"client_name" example:"Northern Chamber Choir"`
	Configuration string `json:"configuration,omitempty" example:"theatre"`
	BookingType   string `json:"booking_type,omitempty" example:"EVENING"`
}

func (r *AddBookingRequest) ToParams() booking.RequestParams {
	return booking.RequestParams{
		Date:          r.Date,
		Venue:         r.Venue,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		EventName:     r.EventName,
		ClientName:    r.ClientName,
		Configuration: r.Configuration,
		BookingType:   r.BookingType,
	}
}

type SlotRequest struct {
	Venue       string `json:"venue"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	BookingType string `json:"booking_type,omitempty"`
}

// MultiDayRequest maps YYYY-MM-DD dates to the slots picked on each.
type MultiDayRequest struct {
	Selections    map[string][]SlotRequest `json:"selections"`
	ClientName    string                   `json:"client_name"`
	EventName     string                   `json:"event_name"`
	Configuration string                   `json:"configuration,omitempty"`
}

func (r *MultiDayRequest) ToInput() commands.MultiDayInput {
	sel := make(booking.Selections, len(r.Selections))
	for date, slots := range r.Selections {
		out := make([]booking.Slot, len(slots))
		for i, s := range slots {
			out[i] = booking.Slot{
				Venue:       s.Venue,
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
				BookingType: s.BookingType,
			}
		}
		sel[date] = out
	}
	return commands.MultiDayInput{
		Selections:    sel,
		ClientName:    r.ClientName,
		EventName:     r.EventName,
		Configuration: r.Configuration,
	}
}
