package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createRevenueEntry = `
INSERT INTO revenue_entries (
    booking_id, venue, event_date, booking_type, room_rate, ticket_sales
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

type CreateRevenueEntryParams struct {
	BookingID   uuid.UUID
	Venue       string
	EventDate   pgtype.Date
	BookingType string
	RoomRate    pgtype.Numeric
	TicketSales pgtype.Numeric
}

func (q *Queries) CreateRevenueEntry(ctx context.Context, db DBTX, arg CreateRevenueEntryParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createRevenueEntry,
		arg.BookingID,
		arg.Venue,
		arg.EventDate,
		arg.BookingType,
		arg.RoomRate,
		arg.TicketSales,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const listRevenueEntriesBetween = `
SELECT id, booking_id, venue, event_date, booking_type, room_rate, ticket_sales, created_at
FROM revenue_entries
WHERE event_date BETWEEN $1 AND $2
ORDER BY event_date, created_at, id
`

func (q *Queries) ListRevenueEntriesBetween(ctx context.Context, db DBTX, from, to pgtype.Date) ([]RevenueEntry, error) {
	rows, err := db.Query(ctx, listRevenueEntriesBetween, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []RevenueEntry
	for rows.Next() {
		var i RevenueEntry
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.Venue,
			&i.EventDate,
			&i.BookingType,
			&i.RoomRate,
			&i.TicketSales,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
