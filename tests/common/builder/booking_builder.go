//go:build unit || e2e

package builder

import (
	"venue-boxoffice/internal/domain/booking"
	reqdto "venue-boxoffice/internal/handler/dto/request"
)

type BookingBuilder struct {
	Date          string
	Venue         string
	StartTime     string
	EndTime       string
	EventName     string
	ClientName    string
	Configuration string
	BookingType   string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:          "2025-05-01",
		Venue:         "Main Hall",
		StartTime:     "18:00",
		EndTime:       "20:00",
		EventName:     "Spring Recital",
		ClientName:    "Northern Chamber Choir",
		Configuration: "",
		BookingType:   "",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Params() booking.RequestParams {
	return booking.RequestParams{
		Date:          b.Date,
		Venue:         b.Venue,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		EventName:     b.EventName,
		ClientName:    b.ClientName,
		Configuration: b.Configuration,
		BookingType:   b.BookingType,
	}
}

// Build methods
func (b *BookingBuilder) BuildDomain() (booking.Request, error) {
	return booking.NewRequest(b.Params())
}

// MustBuildDomain panics on invalid input; only for fixtures known to be valid.
func (b *BookingBuilder) MustBuildDomain() booking.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.AddBookingRequest {
	return reqdto.AddBookingRequest{
		Date:          b.Date,
		Venue:         b.Venue,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		EventName:     b.EventName,
		ClientName:    b.ClientName,
		Configuration: b.Configuration,
		BookingType:   b.BookingType,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithVenue(name string) *BookingBuilder {
	b.Venue = name
	return b
}

func (b *BookingBuilder) WithWindow(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithEventName(name string) *BookingBuilder {
	b.EventName = name
	return b
}

func (b *BookingBuilder) WithClientName(name string) *BookingBuilder {
	b.ClientName = name
	return b
}

func (b *BookingBuilder) WithConfiguration(c string) *BookingBuilder {
	b.Configuration = c
	return b
}

func (b *BookingBuilder) WithBookingType(label string) *BookingBuilder {
	b.BookingType = label
	return b
}

func (b *BookingBuilder) AsMainHallEvening() *BookingBuilder {
	b.Venue = "Main Hall"
	b.StartTime = "18:00"
	b.EndTime = "23:00"
	b.BookingType = "EVENING"
	return b
}
