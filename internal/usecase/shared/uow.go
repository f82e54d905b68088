package shared

import (
	"context"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/revenue"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	RevenueEntries() RevenueEntryRepository
}

// BookingRepository satisfies booking.Saver.
type BookingRepository interface {
	Save(ctx context.Context, req booking.Request) (uuid.UUID, error)
}

type RevenueEntryRepository interface {
	Record(ctx context.Context, bookingID uuid.UUID, entry *revenue.Entry) error
}

// RevenueEntryReader reads outside a unit of work. Both bounds are inclusive dates.
type RevenueEntryReader interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*revenue.Entry, error)
}

var _ booking.Saver = BookingRepository(nil)
