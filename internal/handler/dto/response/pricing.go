package response

import "venue-boxoffice/internal/domain/pricing"

// Money fields are decimal strings with two places.
type QuoteResponse struct {
	Venue          string `json:"venue"`
	DayType        string `json:"day_type"`
	BookingType    string `json:"booking_type"`
	RuleKind       string `json:"rule_kind"`
	Hours          string `json:"hours"`
	EffectiveHours string `json:"effective_hours"`
	Base           string `json:"base"`
	VAT            string `json:"vat"`
	Total          string `json:"total"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		Venue:          q.Venue,
		DayType:        q.DayType.String(),
		BookingType:    q.BookingType.String(),
		RuleKind:       string(q.RuleKind),
		Hours:          q.Hours.String(),
		EffectiveHours: q.EffectiveHours.String(),
		Base:           q.Base.StringFixed(2),
		VAT:            q.VAT.StringFixed(2),
		Total:          q.Total.StringFixed(2),
	}
}
