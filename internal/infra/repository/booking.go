package repository

import (
	"context"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/infra"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateBookingParams) (uuid.UUID, error)
}

// BookingRepository is bound to a single transaction.
type BookingRepository struct {
	queries BookingWriteQueries
	db      pgquery.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgquery.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Save(ctx context.Context, req booking.Request) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(req))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}
