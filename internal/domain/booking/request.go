package booking

import (
	"fmt"
	"strings"
	"time"

	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/domain/venue"
)

const DateLayout = "2006-01-02"

// RequestParams carries raw form input for one room/time reservation.
type RequestParams struct {
	Date          string
	Venue         string
	StartTime     string
	EndTime       string
	EventName     string
	ClientName    string
	Configuration string
	BookingType   string
}

// Request is immutable once built.
type Request struct {
	date          time.Time
	venue         string
	start         ClockTime
	end           ClockTime
	eventName     string
	clientName    string
	configuration string
	bookingType   pricing.BookingType
}

func NewRequest(p RequestParams) (Request, error) {
	required := []struct {
		field string
		value string
	}{
		{"date", p.Date},
		{"venue", p.Venue},
		{"start_time", p.StartTime},
		{"end_time", p.EndTime},
		{"event_name", p.EventName},
		{"client_name", p.ClientName},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Request{}, newValidationError(r.field, "required")
		}
	}

	date, err := ParseDate(p.Date)
	if err != nil {
		return Request{}, err
	}

	start, err := ParseClockTime(p.StartTime)
	if err != nil {
		return Request{}, newValidationError("start_time", err.Error())
	}
	if start.IsMidnightBoundary() {
		return Request{}, newValidationError("start_time", "cannot start at the closing boundary")
	}

	end, err := ParseEndTime(p.EndTime)
	if err != nil {
		return Request{}, newValidationError("end_time", err.Error())
	}

	var bt pricing.BookingType
	if strings.TrimSpace(p.BookingType) != "" {
		bt, err = pricing.ParseBookingType(p.BookingType)
		if err != nil {
			return Request{}, newValidationError("booking_type", "unknown booking type")
		}
	}

	r := Request{
		date:          date,
		venue:         canonicalVenue(p.Venue),
		start:         start,
		end:           end,
		eventName:     strings.TrimSpace(p.EventName),
		clientName:    strings.TrimSpace(p.ClientName),
		configuration: strings.ToLower(strings.TrimSpace(p.Configuration)),
		bookingType:   bt,
	}
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Validate checks required fields and the time window.
// A zero Request fails here, which keeps Group.Add safe for values not built by NewRequest.
func (r Request) Validate() error {
	switch {
	case r.date.IsZero():
		return newValidationError("date", "required")
	case r.venue == "":
		return newValidationError("venue", "required")
	case !r.start.Valid():
		return newValidationError("start_time", "required")
	case !r.end.Valid():
		return newValidationError("end_time", "required")
	case r.eventName == "":
		return newValidationError("event_name", "required")
	case r.clientName == "":
		return newValidationError("client_name", "required")
	}
	if !r.end.After(r.start) {
		return newValidationError("end_time", "must be after start time")
	}
	return nil
}

func (r Request) Date() time.Time                  { return r.date }
func (r Request) Venue() string                    { return r.venue }
func (r Request) StartTime() ClockTime             { return r.start }
func (r Request) EndTime() ClockTime               { return r.end }
func (r Request) EventName() string                { return r.eventName }
func (r Request) ClientName() string               { return r.clientName }
func (r Request) Configuration() string            { return r.configuration }
func (r Request) BookingType() pricing.BookingType { return r.bookingType }

func (r Request) HasBookingType() bool {
	return r.bookingType != ""
}

func (r Request) Duration() time.Duration {
	return time.Duration(r.end.Minutes()-r.start.Minutes()) * time.Minute
}

// Hours is the booked duration in hours, as used by hourly pricing.
func (r Request) Hours() float64 {
	return r.Duration().Hours()
}

func (r Request) DayType() pricing.DayType {
	return pricing.DayTypeOf(r.date)
}

// Overlaps is true for the same date and venue with intersecting half-open windows.
func (r Request) Overlaps(other Request) bool {
	if !r.date.Equal(other.date) || !venue.SameVenue(r.venue, other.venue) {
		return false
	}
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s %s-%s", r.venue, r.date.Format(DateLayout), r.start, r.end)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, newValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}

func canonicalVenue(name string) string {
	if v, err := venue.Lookup(name); err == nil {
		return v.Name
	}
	return strings.TrimSpace(name)
}
