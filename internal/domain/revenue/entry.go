package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one priced booking line in a revenue report.
// The total is derived from its two components on every read.
type Entry struct {
	venue       string
	date        time.Time
	bookingType string
	roomRate    decimal.Decimal
	ticketSales decimal.Decimal
}

func NewEntry(venueName string, date time.Time, bookingType string, roomRate, ticketSales decimal.Decimal) *Entry {
	return &Entry{
		venue:       venueName,
		date:        truncateToDate(date),
		bookingType: bookingType,
		roomRate:    roomRate,
		ticketSales: ticketSales,
	}
}

func (e *Entry) Venue() string                { return e.venue }
func (e *Entry) Date() time.Time              { return e.date }
func (e *Entry) BookingType() string          { return e.bookingType }
func (e *Entry) RoomRate() decimal.Decimal    { return e.roomRate }
func (e *Entry) TicketSales() decimal.Decimal { return e.ticketSales }

func (e *Entry) TotalRevenue() decimal.Decimal {
	return e.roomRate.Add(e.ticketSales)
}

func (e *Entry) SetRoomRate(v decimal.Decimal) {
	e.roomRate = v
}

func (e *Entry) SetTicketSales(v decimal.Decimal) {
	e.ticketSales = v
}

func (e *Entry) AddTicketSales(v decimal.Decimal) {
	e.ticketSales = e.ticketSales.Add(v)
}

func (e *Entry) Month() string {
	return e.date.Format("2006-01")
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
