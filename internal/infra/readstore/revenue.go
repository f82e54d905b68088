package readstore

import (
	"context"
	"time"

	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/repository/converter"
	"venue-boxoffice/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type RevenueReadQueries interface {
	ListRevenueEntriesBetween(ctx context.Context, db pgquery.DBTX, from, to pgtype.Date) ([]pgquery.RevenueEntry, error)
}

type RevenueEntryReadStore struct {
	queries RevenueReadQueries
	db      pgquery.DBTX
}

func NewRevenueEntryReadStore(queries RevenueReadQueries, db pgquery.DBTX) *RevenueEntryReadStore {
	return &RevenueEntryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RevenueEntryReadStore) ListBetween(ctx context.Context, from, to time.Time) ([]*revenue.Entry, error) {
	rows, err := r.queries.ListRevenueEntriesBetween(ctx, r.db, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list revenue entries", err)
	}

	entries := make([]*revenue.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := converter.RevenueEntryFromRow(row)
		if err != nil {
			return nil, infra.NewRepoErr(infra.KindDBFailure, "corrupt revenue entry "+row.ID.String(), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
