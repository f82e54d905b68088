package repository

import (
	"context"

	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type RevenueWriteQueries interface {
	CreateRevenueEntry(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateRevenueEntryParams) (uuid.UUID, error)
}

type RevenueEntryRepository struct {
	queries RevenueWriteQueries
	db      pgquery.DBTX
}

func NewRevenueEntryRepository(queries RevenueWriteQueries, db pgquery.DBTX) *RevenueEntryRepository {
	return &RevenueEntryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RevenueEntryRepository) Record(ctx context.Context, bookingID uuid.UUID, entry *revenue.Entry) error {
	if _, err := r.queries.CreateRevenueEntry(ctx, r.db, converter.RevenueEntryToCreateParams(bookingID, entry)); err != nil {
		return infra.WrapRepoErr("failed to record revenue entry", err)
	}
	return nil
}
