package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/repository"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds how often a transaction is replayed after a serialization failure or deadlock.
type RetryPolicy struct {
	MaxRetries int
	Base       time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Base: 100 * time.Millisecond}

// backoff doubles per attempt and adds up to 20% jitter.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * p.Base
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j + 1))
	}
	return wait
}

func (p RetryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.MaxRetries && isRetryableError(err)
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *pgquery.Queries
	policy RetryPolicy
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		policy: DefaultRetryPolicy,
		logger: logger,
	}
}

// Within runs fn at READ COMMITTED. A booking group commits all of its rows or none.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.policy.shouldRetry(err, attempt) {
			if isRetryableError(err) {
				u.logger.ErrorContext(ctx, "transaction failed after max retries",
					slog.Int("attempts", attempt+1), slog.String("error", err.Error()))
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		u.logger.WarnContext(ctx, "retrying booking transaction",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", wait.Milliseconds()),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// attempt owns exactly one pgx transaction so nothing is deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, newPgTx(u.q, pgxTx)); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.WarnContext(ctx, "rollback failed", slog.String("error", rbErr.Error()))
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

// pgTx hands out repositories bound to one transaction.
type pgTx struct {
	q    *pgquery.Queries
	dbtx pgquery.DBTX

	bookingRepo shared.BookingRepository
	revenueRepo shared.RevenueEntryRepository
}

func newPgTx(q *pgquery.Queries, dbtx pgquery.DBTX) *pgTx {
	return &pgTx{q: q, dbtx: dbtx}
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) RevenueEntries() shared.RevenueEntryRepository {
	if t.revenueRepo == nil {
		t.revenueRepo = repository.NewRevenueEntryRepository(t.q, t.dbtx)
	}
	return t.revenueRepo
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)
