package revenue

import (
	"context"
	"time"

	"venue-boxoffice/internal/domain/venue"
	"venue-boxoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvalidRange = errs.New("from date is after to date")

// DisplayPriority lists the keys shown first in reports.
var DisplayPriority = []string{venue.MainHall, venue.SmallHall, venue.RehearsalSpace}

// TicketSalesSource supplies box-office takings to merge into entries.
type TicketSalesSource interface {
	TicketSales(ctx context.Context, venueName string, date time.Time) (decimal.Decimal, error)
}

// NoTicketSales contributes nothing until a live box-office feed is connected.
type NoTicketSales struct{}

func (NoTicketSales) TicketSales(context.Context, string, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type Summary struct {
	Count       int
	RoomRate    decimal.Decimal
	TicketSales decimal.Decimal
	Total       decimal.Decimal
}

type Manager struct {
	priority []string
}

func NewManager() *Manager {
	return &Manager{priority: DisplayPriority}
}

// Filter keeps entries dated within [from, to] whose venue matches selector:
// an exact venue name, "All Venues", or "Rooms".
func (m *Manager) Filter(entries []*Entry, from, to time.Time, selector string) ([]*Entry, error) {
	from, to = truncateToDate(from), truncateToDate(to)
	if from.After(to) {
		return nil, ErrInvalidRange
	}

	match := selectorFunc(selector)
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if e.date.Before(from) || e.date.After(to) {
			continue
		}
		if match(e.venue) {
			out = append(out, e)
		}
	}
	return out, nil
}

func selectorFunc(selector string) func(string) bool {
	switch {
	case venue.Key(selector) == venue.Key(venue.SelectorAllVenues):
		return func(string) bool { return true }
	case venue.Key(selector) == venue.Key(venue.SelectorRooms):
		return venue.IsRoom
	default:
		return func(name string) bool { return venue.SameVenue(name, selector) }
	}
}

func (m *Manager) AggregateByVenue(entries []*Entry) *Totals {
	return fold(entries, (*Entry).Venue, (*Entry).TotalRevenue)
}

func (m *Manager) AggregateByMonth(entries []*Entry) *Totals {
	return fold(entries, (*Entry).Month, (*Entry).TotalRevenue)
}

func (m *Manager) AggregateRoomRate(entries []*Entry) *Totals {
	return fold(entries, (*Entry).Venue, (*Entry).RoomRate)
}

func (m *Manager) AggregateTicketSales(entries []*Entry) *Totals {
	return fold(entries, (*Entry).Venue, (*Entry).TicketSales)
}

func fold(entries []*Entry, key func(*Entry) string, metric func(*Entry) decimal.Decimal) *Totals {
	t := NewTotals()
	for _, e := range entries {
		t.Add(key(e), metric(e))
	}
	return t
}

// SortForDisplay puts the priority keys first, then the rest in encounter order.
func (m *Manager) SortForDisplay(t *Totals) []Line {
	lines := make([]Line, 0, t.Len())
	placed := make(map[string]bool, len(m.priority))
	for _, k := range m.priority {
		if v, ok := t.Get(k); ok {
			lines = append(lines, Line{Key: k, Amount: v})
			placed[k] = true
		}
	}
	for _, k := range t.Keys() {
		if placed[k] {
			continue
		}
		v, _ := t.Get(k)
		lines = append(lines, Line{Key: k, Amount: v})
	}
	return lines
}

func (m *Manager) Summarize(entries []*Entry) Summary {
	s := Summary{RoomRate: decimal.Zero, TicketSales: decimal.Zero, Total: decimal.Zero}
	for _, e := range entries {
		s.Count++
		s.RoomRate = s.RoomRate.Add(e.roomRate)
		s.TicketSales = s.TicketSales.Add(e.ticketSales)
	}
	s.Total = s.RoomRate.Add(s.TicketSales)
	return s
}

// MergeTicketSales adds the source's figure to each entry. Entries already
// updated keep their new values when a later lookup fails.
func (m *Manager) MergeTicketSales(ctx context.Context, entries []*Entry, source TicketSalesSource) error {
	for _, e := range entries {
		sales, err := source.TicketSales(ctx, e.venue, e.date)
		if err != nil {
			return errs.Wrap(err, "failed to fetch ticket sales for "+e.venue)
		}
		e.AddTicketSales(sales)
	}
	return nil
}
