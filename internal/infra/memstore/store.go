package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra"
	"venue-boxoffice/internal/pkg/clock"
	"venue-boxoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// BookingRecord mirrors a bookings row. Fields are filled from the domain getters.
type BookingRecord struct {
	ID            uuid.UUID
	Date          time.Time
	Venue         string
	StartTime     booking.ClockTime
	EndTime       booking.ClockTime
	EventName     string
	ClientName    string
	Configuration string
	BookingType   pricing.BookingType
	CreatedAt     time.Time
}

type RevenueRecord struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Venue       string
	Date        time.Time
	BookingType string
	RoomRate    decimal.Decimal
	TicketSales decimal.Decimal
	CreatedAt   time.Time
}

// Store is a process-local replacement for the bookings and revenue_entries tables.
// Writes inside Within are staged and only applied when fn succeeds.
type Store struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]BookingRecord
	revenue  []RevenueRecord
	clock    clock.Clock
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		bookings: make(map[uuid.UUID]BookingRecord),
		clock:    clk,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, bookings: make(map[uuid.UUID]BookingRecord)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for id, rec := range tx.bookings {
		s.bookings[id] = rec
	}
	s.revenue = append(s.revenue, tx.revenue...)
	return nil
}

func (s *Store) ListBetween(ctx context.Context, from, to time.Time) ([]*revenue.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	from, to = dateOf(from), dateOf(to)
	matched := make([]RevenueRecord, 0, len(s.revenue))
	for _, rec := range s.revenue {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		matched = append(matched, rec)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	entries := make([]*revenue.Entry, 0, len(matched))
	for _, rec := range matched {
		entries = append(entries, revenue.NewEntry(rec.Venue, rec.Date, rec.BookingType, rec.RoomRate, rec.TicketSales))
	}
	return entries, nil
}

func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func (s *Store) Booking(id uuid.UUID) (BookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.bookings[id]
	return rec, ok
}

type memTx struct {
	store    *Store
	bookings map[uuid.UUID]BookingRecord
	revenue  []RevenueRecord
}

func (t *memTx) Bookings() shared.BookingRepository           { return (*memBookings)(t) }
func (t *memTx) RevenueEntries() shared.RevenueEntryRepository { return (*memRevenue)(t) }

func (t *memTx) hasBooking(id uuid.UUID) bool {
	if _, ok := t.bookings[id]; ok {
		return true
	}
	_, ok := t.store.bookings[id]
	return ok
}

func (t *memTx) hasRevenueFor(bookingID uuid.UUID) bool {
	for _, recs := range [][]RevenueRecord{t.store.revenue, t.revenue} {
		for _, rec := range recs {
			if rec.BookingID == bookingID {
				return true
			}
		}
	}
	return false
}

type memBookings memTx

func (b *memBookings) Save(ctx context.Context, req booking.Request) (uuid.UUID, error) {
	var rec BookingRecord
	if err := copier.Copy(&rec, &req); err != nil {
		return uuid.Nil, infra.NewRepoErr(infra.KindDBFailure, "failed to snapshot booking", err)
	}
	rec.ID = uuid.New()
	rec.CreatedAt = b.store.clock.Now()
	b.bookings[rec.ID] = rec
	return rec.ID, nil
}

type memRevenue memTx

func (r *memRevenue) Record(ctx context.Context, bookingID uuid.UUID, entry *revenue.Entry) error {
	tx := (*memTx)(r)
	if !tx.hasBooking(bookingID) {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "revenue entry references unknown booking "+bookingID.String(), nil)
	}
	if tx.hasRevenueFor(bookingID) {
		return infra.NewRepoErr(infra.KindDuplicateKey, "revenue entry already recorded for booking "+bookingID.String(), nil)
	}

	var rec RevenueRecord
	if err := copier.Copy(&rec, entry); err != nil {
		return infra.NewRepoErr(infra.KindDBFailure, "failed to snapshot revenue entry", err)
	}
	rec.ID = uuid.New()
	rec.BookingID = bookingID
	rec.CreatedAt = r.store.clock.Now()
	r.revenue = append(r.revenue, rec)
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	_ shared.UnitOfWork         = (*Store)(nil)
	_ shared.RevenueEntryReader = (*Store)(nil)
)
