package booking

import (
	"fmt"
	"strconv"
	"strings"

	"venue-boxoffice/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

var errInvalidClockTime = errs.New("must be HH:MM")

// ClockTime is a wall-clock time of day in minutes since midnight.
// Minute 1440 is the venue's nominal midnight boundary and is only valid as an end time.
type ClockTime struct {
	minutes int
	set     bool
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return ClockTime{}, errInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute, set: true}, nil
}

func ParseClockTime(s string) (ClockTime, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 || !allDigits(h) || !allDigits(m) {
		return ClockTime{}, errInvalidClockTime
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return ClockTime{}, errInvalidClockTime
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return ClockTime{}, errInvalidClockTime
	}
	return NewClockTime(hour, minute)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseEndTime maps both "00:00" and "24:00" onto the midnight boundary.
func ParseEndTime(s string) (ClockTime, error) {
	t, err := ParseClockTime(s)
	if err != nil {
		return ClockTime{}, err
	}
	if t.minutes == 0 {
		t.minutes = minutesPerDay
	}
	return t, nil
}

func (t ClockTime) Valid() bool {
	return t.set
}

func (t ClockTime) Minutes() int {
	return t.minutes
}

func (t ClockTime) IsMidnightBoundary() bool {
	return t.set && t.minutes == minutesPerDay
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.minutes < other.minutes
}

func (t ClockTime) After(other ClockTime) bool {
	return t.minutes > other.minutes
}

func (t ClockTime) String() string {
	if !t.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
