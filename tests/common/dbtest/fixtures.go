//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertRevenueFixture stores a committed booking with its revenue row and returns the booking id.
func InsertRevenueFixture(t *testing.T, db DBLike, venue, date, bookingType, roomRate, ticketSales string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var bookingID uuid.UUID
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (event_date, venue, start_minute, end_minute, event_name, client_name, booking_type)
		VALUES ($1::date, $2, 1080, 1380, 'Fixture', 'Fixture Client', $3)
		RETURNING id`, date, venue, bookingType).Scan(&bookingID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `
		INSERT INTO revenue_entries (booking_id, venue, event_date, booking_type, room_rate, ticket_sales)
		VALUES ($1, $2, $3::date, $4, $5::numeric, $6::numeric)`,
		bookingID, venue, date, bookingType, roomRate, ticketSales)
	require.NoError(t, err)

	return bookingID
}

func CountBookings(t *testing.T, db DBLike) int {
	t.Helper()
	return count(t, db, "SELECT count(*) FROM bookings")
}

func CountRevenueEntries(t *testing.T, db DBLike) int {
	t.Helper()
	return count(t, db, "SELECT count(*) FROM revenue_entries")
}

func count(t *testing.T, db DBLike, sql string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql).Scan(&n))
	return n
}

// ResetDB empties the booking tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE revenue_entries, bookings CASCADE"); err != nil {
		return fmt.Errorf("reset db: %w", err)
	}
	return nil
}
