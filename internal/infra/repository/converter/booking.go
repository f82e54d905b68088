package converter

import (
	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingToCreateParams(req booking.Request) pgquery.CreateBookingParams {
	var bookingType string
	if req.HasBookingType() {
		bookingType = req.BookingType().String()
	}
	return pgquery.CreateBookingParams{
		EventDate:     pgconv.DateToPgtype(req.Date()),
		Venue:         req.Venue(),
		StartMinute:   int32(req.StartTime().Minutes()),
		EndMinute:     int32(req.EndTime().Minutes()),
		EventName:     req.EventName(),
		ClientName:    req.ClientName(),
		Configuration: pgconv.OptionalText(req.Configuration()),
		BookingType:   pgconv.OptionalText(bookingType),
	}
}

func RevenueEntryToCreateParams(bookingID uuid.UUID, e *revenue.Entry) pgquery.CreateRevenueEntryParams {
	return pgquery.CreateRevenueEntryParams{
		BookingID:   bookingID,
		Venue:       e.Venue(),
		EventDate:   pgconv.DateToPgtype(e.Date()),
		BookingType: e.BookingType(),
		RoomRate:    pgconv.DecimalToNumeric(e.RoomRate()),
		TicketSales: pgconv.DecimalToNumeric(e.TicketSales()),
	}
}

func RevenueEntryFromRow(row pgquery.RevenueEntry) (*revenue.Entry, error) {
	roomRate, err := pgconv.DecimalFromNumeric(row.RoomRate)
	if err != nil {
		return nil, err
	}
	ticketSales, err := pgconv.DecimalFromNumeric(row.TicketSales)
	if err != nil {
		return nil, err
	}
	return revenue.NewEntry(row.Venue, pgconv.DateFromPgtype(row.EventDate), row.BookingType, roomRate, ticketSales), nil
}
