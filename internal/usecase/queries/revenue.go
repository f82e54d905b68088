package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"venue-boxoffice/internal/domain/revenue"
	"venue-boxoffice/internal/domain/venue"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/shared"
)

type ReportGrouping string

const (
	GroupByVenue       ReportGrouping = "venue"
	GroupByMonth       ReportGrouping = "month"
	GroupByRoomRate    ReportGrouping = "room_rate"
	GroupByTicketSales ReportGrouping = "ticket_sales"
)

func ParseReportGrouping(s string) (ReportGrouping, error) {
	switch g := ReportGrouping(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GroupByVenue, nil
	case GroupByVenue, GroupByMonth, GroupByRoomRate, GroupByTicketSales:
		return g, nil
	default:
		return "", errs.Mark(errs.New("unknown group_by "+s), errs.ErrInvalidReportQuery)
	}
}

type ReportQuery struct {
	From     time.Time
	To       time.Time
	Selector string
	GroupBy  ReportGrouping
}

type ReportView struct {
	From     time.Time
	To       time.Time
	Selector string
	GroupBy  ReportGrouping
	Lines    []revenue.Line
	Summary  revenue.Summary
}

type RevenueQueries interface {
	Report(ctx context.Context, q ReportQuery) (*ReportView, error)
}

type revenueQueriesImpl struct {
	reader  shared.RevenueEntryReader
	manager *revenue.Manager
	sales   revenue.TicketSalesSource
	logger  *slog.Logger
}

func NewRevenueQueries(
	reader shared.RevenueEntryReader,
	manager *revenue.Manager,
	sales revenue.TicketSalesSource,
	logger *slog.Logger,
) RevenueQueries {
	return &revenueQueriesImpl{
		reader:  reader,
		manager: manager,
		sales:   sales,
		logger:  logger,
	}
}

func (q *revenueQueriesImpl) Report(ctx context.Context, rq ReportQuery) (*ReportView, error) {
	if rq.GroupBy == "" {
		rq.GroupBy = GroupByVenue
	}
	if strings.TrimSpace(rq.Selector) == "" {
		rq.Selector = venue.SelectorAllVenues
	}
	if rq.From.After(rq.To) {
		return nil, errs.Mark(revenue.ErrInvalidRange, errs.ErrInvalidReportQuery)
	}

	entries, err := q.reader.ListBetween(ctx, rq.From, rq.To)
	if err != nil {
		q.logger.Error("failed to load revenue entries", slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := q.manager.MergeTicketSales(ctx, entries, q.sales); err != nil {
		q.logger.Warn("ticket sales unavailable", slog.String("error", err.Error()))
		return nil, err
	}

	filtered, err := q.manager.Filter(entries, rq.From, rq.To, rq.Selector)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidReportQuery)
	}

	var totals *revenue.Totals
	switch rq.GroupBy {
	case GroupByMonth:
		totals = q.manager.AggregateByMonth(filtered)
	case GroupByRoomRate:
		totals = q.manager.AggregateRoomRate(filtered)
	case GroupByTicketSales:
		totals = q.manager.AggregateTicketSales(filtered)
	default:
		totals = q.manager.AggregateByVenue(filtered)
	}

	return &ReportView{
		From:     rq.From,
		To:       rq.To,
		Selector: rq.Selector,
		GroupBy:  rq.GroupBy,
		Lines:    q.manager.SortForDisplay(totals),
		Summary:  q.manager.Summarize(filtered),
	}, nil
}
