package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RevenueEntry struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Venue       string
	EventDate   pgtype.Date
	BookingType string
	RoomRate    pgtype.Numeric
	TicketSales pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
}
