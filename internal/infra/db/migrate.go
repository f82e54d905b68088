package db

import (
	"context"
	_ "embed"
	"log/slog"

	"venue-boxoffice/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

func Schema() string {
	return schema
}

// Migrate applies the idempotent schema. Every statement uses IF NOT EXISTS.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	slog.Info("Database schema applied")
	return nil
}
