package queries

import (
	"context"
	"strings"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/domain/venue"
	"venue-boxoffice/internal/pkg/errs"
)

type QuoteRequest struct {
	Venue       string
	BookingType string
	// DayType wins over Date when both are set.
	DayType    string
	Date       string
	Hours      float64
	IncludeVAT bool
}

type PricingQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	calc pricing.PriceCalculator
}

func NewPricingQueries(calc pricing.PriceCalculator) PricingQueries {
	return &pricingQueriesImpl{calc: calc}
}

func (q *pricingQueriesImpl) Quote(_ context.Context, req QuoteRequest) (*pricing.Quote, error) {
	v, err := venue.Lookup(req.Venue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	bt, err := pricing.ParseBookingType(req.BookingType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	day, err := resolveDayType(req.DayType, req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	quote, err := q.calc.Quote(pricing.QuoteInput{
		Venue:       v.Name,
		DayType:     day,
		BookingType: bt,
		Hours:       req.Hours,
		IncludeVAT:  req.IncludeVAT,
	})
	if err != nil {
		if errs.Is(err, pricing.ErrInvalidHours) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, err
	}
	return &quote, nil
}

func resolveDayType(dayType, date string) (pricing.DayType, error) {
	if strings.TrimSpace(dayType) != "" {
		return pricing.ParseDayType(dayType)
	}
	if strings.TrimSpace(date) == "" {
		return "", errs.Wrap(pricing.ErrInvalidDayType, "day_type or date is required")
	}
	d, err := booking.ParseDate(date)
	if err != nil {
		return "", err
	}
	return pricing.DayTypeOf(d), nil
}
