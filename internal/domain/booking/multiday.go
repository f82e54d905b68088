package booking

import (
	"slices"
	"time"
)

// Slot is one venue/time tuple picked on a calendar day.
type Slot struct {
	Venue       string
	StartTime   string
	EndTime     string
	BookingType string
}

// Selections maps a YYYY-MM-DD date to the slots chosen on it.
type Selections map[string][]Slot

// ExpandSelections builds one request per (date, slot), dates ascending and
// slots in the order they were picked. Any invalid tuple fails the whole expansion.
func ExpandSelections(sel Selections, clientName, eventName, configuration string) ([]Request, error) {
	type day struct {
		date  time.Time
		raw   string
		slots []Slot
	}

	days := make([]day, 0, len(sel))
	seen := make(map[time.Time]struct{}, len(sel))
	for raw, slots := range sel {
		d, err := ParseDate(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			return nil, newValidationError("selections", "duplicate date "+d.Format(time.DateOnly))
		}
		seen[d] = struct{}{}
		days = append(days, day{date: d, raw: raw, slots: slots})
	}
	// Dates are unique here, so the order is total.
	slices.SortFunc(days, func(a, b day) int { return a.date.Compare(b.date) })

	var out []Request
	for _, d := range days {
		for _, s := range d.slots {
			req, err := NewRequest(RequestParams{
				Date:          d.raw,
				Venue:         s.Venue,
				StartTime:     s.StartTime,
				EndTime:       s.EndTime,
				EventName:     eventName,
				ClientName:    clientName,
				Configuration: configuration,
				BookingType:   s.BookingType,
			})
			if err != nil {
				return nil, err
			}
			out = append(out, req)
		}
	}
	if len(out) == 0 {
		return nil, newValidationError("selections", "required")
	}
	return out, nil
}
