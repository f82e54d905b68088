//go:build unit

package queries_test

import (
	"context"
	"testing"

	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingQueries_Quote(t *testing.T) {
	sut := queries.NewPricingQueries(pricing.NewDefaultCalculator())

	testCases := []struct {
		name       string
		req        queries.QuoteRequest
		wantTotal  string
		wantDay    pricing.DayType
		wantMarker error
		wantErrIs  error
	}{
		{
			name:      "hourly minimum applies",
			req:       queries.QuoteRequest{Venue: "main hall", BookingType: "hourly", DayType: "monday to thursday", Hours: 2},
			wantTotal: "975.00",
			wantDay:   pricing.MondayToThursday,
		},
		{
			name:      "vat added",
			req:       queries.QuoteRequest{Venue: "Main Hall", BookingType: "HOURLY", DayType: "MONDAY_TO_THURSDAY", Hours: 2, IncludeVAT: true},
			wantTotal: "1170.00",
			wantDay:   pricing.MondayToThursday,
		},
		{
			name:      "day type derived from a friday date",
			req:       queries.QuoteRequest{Venue: "Small Hall", BookingType: "evening", Date: "2025-05-02"},
			wantTotal: "1300.00",
			wantDay:   pricing.FridayToSaturday,
		},
		{
			name:       "unknown venue",
			req:        queries.QuoteRequest{Venue: "Ballroom", BookingType: "evening", DayType: "sunday"},
			wantMarker: errs.ErrDomainValidation,
		},
		{
			name:       "missing day type and date",
			req:        queries.QuoteRequest{Venue: "Main Hall", BookingType: "evening"},
			wantMarker: errs.ErrDomainValidation,
		},
		{
			name:       "negative hours",
			req:        queries.QuoteRequest{Venue: "Main Hall", BookingType: "hourly", DayType: "sunday", Hours: -1},
			wantMarker: errs.ErrDomainValidation,
		},
		{
			name:      "no rule for combination",
			req:       queries.QuoteRequest{Venue: "the green room", BookingType: "evening", DayType: "sunday"},
			wantErrIs: pricing.ErrRuleNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := sut.Quote(context.Background(), tc.req)

			switch {
			case tc.wantMarker != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantMarker), "expected marker %v, got %v", tc.wantMarker, err)
				assert.Nil(t, quote)
			case tc.wantErrIs != nil:
				assert.ErrorIs(t, err, tc.wantErrIs)
				assert.False(t, errs.Is(err, errs.ErrDomainValidation))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantTotal, quote.Total.StringFixed(2))
				assert.Equal(t, tc.wantDay, quote.DayType)
			}
		})
	}
}
