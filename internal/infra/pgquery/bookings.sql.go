package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `
INSERT INTO bookings (
    event_date, venue, start_minute, end_minute,
    event_name, client_name, configuration, booking_type
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`

type CreateBookingParams struct {
	EventDate     pgtype.Date
	Venue         string
	StartMinute   int32
	EndMinute     int32
	EventName     string
	ClientName    string
	Configuration pgtype.Text
	BookingType   pgtype.Text
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.EventDate,
		arg.Venue,
		arg.StartMinute,
		arg.EndMinute,
		arg.EventName,
		arg.ClientName,
		arg.Configuration,
		arg.BookingType,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
