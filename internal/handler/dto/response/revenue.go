package response

import (
	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/usecase/queries"
)

type ReportLineResponse struct {
	Key    string `json:"key"`
	Amount string `json:"amount"`
}

type ReportSummaryResponse struct {
	Count       int    `json:"count"`
	RoomRate    string `json:"room_rate"`
	TicketSales string `json:"ticket_sales"`
	Total       string `json:"total"`
}

type ReportResponse struct {
	From    string                `json:"from"`
	To      string                `json:"to"`
	Venue   string                `json:"venue"`
	GroupBy string                `json:"group_by"`
	Lines   []ReportLineResponse  `json:"lines"`
	Summary ReportSummaryResponse `json:"summary"`
}

func FromReportView(v *queries.ReportView) *ReportResponse {
	lines := make([]ReportLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = ReportLineResponse{Key: l.Key, Amount: l.Amount.StringFixed(2)}
	}
	return &ReportResponse{
		From:    v.From.Format(booking.DateLayout),
		To:      v.To.Format(booking.DateLayout),
		Venue:   v.Selector,
		GroupBy: string(v.GroupBy),
		Lines:   lines,
		Summary: ReportSummaryResponse{
			Count:       v.Summary.Count,
			RoomRate:    v.Summary.RoomRate.StringFixed(2),
			TicketSales: v.Summary.TicketSales.StringFixed(2),
			Total:       v.Summary.Total.StringFixed(2),
		},
	}
}
