package pricing

import (
	"strings"
	"time"

	"venue-boxoffice/internal/pkg/errs"
)

var (
	ErrRuleNotFound       = errs.New("no pricing rule for venue and booking type")
	ErrInvalidHours       = errs.New("hours cannot be negative")
	ErrInvalidDayType     = errs.New("invalid day type")
	ErrInvalidBookingType = errs.New("invalid booking type")
)

type DayType string

const (
	MondayToThursday DayType = "MONDAY_TO_THURSDAY"
	FridayToSaturday DayType = "FRIDAY_TO_SATURDAY"
	Sunday           DayType = "SUNDAY"
)

var dayTypes = []DayType{MondayToThursday, FridayToSaturday, Sunday}

func DayTypes() []DayType {
	return append([]DayType(nil), dayTypes...)
}

func (d DayType) String() string {
	return string(d)
}

func (d DayType) IsValid() bool {
	switch d {
	case MondayToThursday, FridayToSaturday, Sunday:
		return true
	default:
		return false
	}
}

func ParseDayType(s string) (DayType, error) {
	d := DayType(normalizeLabel(s))
	if !d.IsValid() {
		return "", errs.Wrap(ErrInvalidDayType, s)
	}
	return d, nil
}

// DayTypeOf classifies a calendar date into its pricing tier.
func DayTypeOf(date time.Time) DayType {
	switch date.Weekday() {
	case time.Friday, time.Saturday:
		return FridayToSaturday
	case time.Sunday:
		return Sunday
	default:
		return MondayToThursday
	}
}

type BookingType string

const (
	Hourly    BookingType = "HOURLY"
	Morning   BookingType = "MORNING"
	Afternoon BookingType = "AFTERNOON"
	Evening   BookingType = "EVENING"
	FullDay   BookingType = "FULL_DAY"
	Weekly    BookingType = "WEEKLY"
)

var bookingTypes = []BookingType{Hourly, Morning, Afternoon, Evening, FullDay, Weekly}

func BookingTypes() []BookingType {
	return append([]BookingType(nil), bookingTypes...)
}

func (b BookingType) String() string {
	return string(b)
}

func (b BookingType) IsValid() bool {
	switch b {
	case Hourly, Morning, Afternoon, Evening, FullDay, Weekly:
		return true
	default:
		return false
	}
}

func ParseBookingType(s string) (BookingType, error) {
	b := BookingType(normalizeLabel(s))
	if !b.IsValid() {
		return "", errs.Wrap(ErrInvalidBookingType, s)
	}
	return b, nil
}

// "full day", "Full-Day" and "FULL_DAY" all parse the same.
func normalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
