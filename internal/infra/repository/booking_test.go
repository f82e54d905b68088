//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/infra"
	"venue-boxoffice/internal/infra/pgquery"
	"venue-boxoffice/internal/infra/repository"
	"venue-boxoffice/tests/common/builder"
	repomock "venue-boxoffice/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func TestBookingRepository_Save(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	testCases := []struct {
		name          string
		mutate        func(*builder.BookingBuilder)
		setupMock     func(*repomock.MockBookingWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking without type stores NULL columns",
			setupMock: func(m *repomock.MockBookingWriteQueries) {
				want := pgquery.CreateBookingParams{
					EventDate:   pgtype.Date{Time: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Valid: true},
					Venue:       "Main Hall",
					StartMinute: 18 * 60,
					EndMinute:   20 * 60,
					EventName:   "Spring Recital",
					ClientName:  "Northern Chamber Choir",
				}
				m.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgquery.DBTX, got pgquery.CreateBookingParams) (uuid.UUID, error) {
						if diff := cmp.Diff(want, got); diff != "" {
							t.Errorf("params mismatch (-want +got):\n%s", diff)
						}
						return bookingID, nil
					})
			},
		},
		{
			name: "success: midnight end and booking type",
			mutate: func(b *builder.BookingBuilder) {
				b.EndTime = "00:00"
				b.BookingType = "evening"
				b.Configuration = "Cabaret"
			},
			setupMock: func(m *repomock.MockBookingWriteQueries) {
				m.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgquery.DBTX, got pgquery.CreateBookingParams) (uuid.UUID, error) {
						assert.Equal(t, int32(1440), got.EndMinute)
						assert.Equal(t, pgtype.Text{String: "cabaret", Valid: true}, got.Configuration)
						assert.True(t, got.BookingType.Valid)
						return bookingID, nil
					})
			},
		},
		{
			name: "error: check constraint",
			setupMock: func(m *repomock.MockBookingWriteQueries) {
				m.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
					Return(uuid.Nil, &pgconn.PgError{Code: "23514"})
			},
			expectedError: true,
			expectKind:    infra.KindConstraintViolated,
		},
		{
			name: "error: database error",
			setupMock: func(m *repomock.MockBookingWriteQueries) {
				m.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
					Return(uuid.Nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repomock.NewMockBookingWriteQueries(ctrl)
			repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			req, err := b.BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries)

			id, actualError := repo.Save(ctx, req)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, bookingID, id)
			}
		})
	}
}

func TestRevenueEntryRepository_Record(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	entry := revenue.NewEntry("Small Hall", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), "EVENING", decimal.RequireFromString("950.00"), decimal.Zero)

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "error: booking missing", returnErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
		{name: "error: duplicate entry", returnErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "error: no rows", returnErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repomock.NewMockRevenueWriteQueries(ctrl)
			repo := repository.NewRevenueEntryRepository(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().CreateRevenueEntry(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ pgquery.DBTX, got pgquery.CreateRevenueEntryParams) (uuid.UUID, error) {
					assert.Equal(t, bookingID, got.BookingID)
					assert.Equal(t, "Small Hall", got.Venue)
					assert.Equal(t, "EVENING", got.BookingType)
					return uuid.New(), tc.returnErr
				})

			err := repo.Record(ctx, bookingID, entry)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
