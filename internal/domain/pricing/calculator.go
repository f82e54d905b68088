package pricing

import (
	"fmt"
	"math"

	"venue-boxoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var vatRate = decimal.RequireFromString("0.20")

// VATRate is the fixed VAT fraction applied by ApplyVAT.
func VATRate() decimal.Decimal {
	return vatRate
}

const moneyPlaces = 2

type QuoteInput struct {
	Venue       string
	DayType     DayType
	BookingType BookingType
	Hours       float64
	IncludeVAT  bool
}

type Quote struct {
	Venue          string
	DayType        DayType
	BookingType    BookingType
	RuleKind       RuleKind
	Hours          decimal.Decimal
	EffectiveHours decimal.Decimal
	Base           decimal.Decimal
	VAT            decimal.Decimal
	Total          decimal.Decimal
}

type PriceCalculator interface {
	Calculate(venueName string, day DayType, bt BookingType, hours float64, includeVAT bool) (decimal.Decimal, error)
	Quote(in QuoteInput) (Quote, error)
}

var _ PriceCalculator = (*Calculator)(nil)

type Calculator struct {
	table *Table
}

func NewCalculator(table *Table) *Calculator {
	return &Calculator{table: table}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultTable())
}

func (c *Calculator) Table() *Table {
	return c.table
}

// Calculate prices a booking. Hours only matter to hourly and tiered rules.
func (c *Calculator) Calculate(venueName string, day DayType, bt BookingType, hours float64, includeVAT bool) (decimal.Decimal, error) {
	q, err := c.Quote(QuoteInput{
		Venue:       venueName,
		DayType:     day,
		BookingType: bt,
		Hours:       hours,
		IncludeVAT:  includeVAT,
	})
	if err != nil {
		return decimal.Zero, err
	}
	return q.Total, nil
}

func (c *Calculator) Quote(in QuoteInput) (Quote, error) {
	if in.Hours < 0 || math.IsNaN(in.Hours) || math.IsInf(in.Hours, 0) {
		return Quote{}, ErrInvalidHours
	}

	rule, ok := c.table.Lookup(in.Venue, in.DayType, in.BookingType)
	if !ok {
		return Quote{}, errs.Wrap(ErrRuleNotFound, fmt.Sprintf("%s/%s/%s", in.Venue, in.DayType, in.BookingType))
	}

	hours := decimal.NewFromFloat(in.Hours)
	base, effective := rule.apply(hours)

	q := Quote{
		Venue:          in.Venue,
		DayType:        in.DayType,
		BookingType:    in.BookingType,
		RuleKind:       rule.Kind,
		Hours:          hours,
		EffectiveHours: effective,
		Base:           base.Round(moneyPlaces),
		VAT:            decimal.Zero,
	}
	if in.IncludeVAT {
		q.Total = ApplyVAT(base)
		q.VAT = q.Total.Sub(q.Base)
	} else {
		q.Total = q.Base
	}
	return q, nil
}

func ApplyVAT(base decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(vatRate)).Round(moneyPlaces)
}

func (r Rule) apply(hours decimal.Decimal) (price, effectiveHours decimal.Decimal) {
	switch r.Kind {
	case RuleHourly:
		effective := decimal.Max(r.MinHours, hours)
		return r.Rate.Mul(effective), effective
	case RuleTiered:
		for _, t := range r.Tiers {
			if hours.LessThanOrEqual(t.MaxHours) {
				return t.Price, hours
			}
		}
		return r.Price, hours
	default:
		return r.Price, hours
	}
}
