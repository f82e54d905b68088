package request

import (
	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/queries"
)

type ReportQuery struct {
	From    string `form:"from" binding:"required"`
	To      string `form:"to" binding:"required"`
	Venue   string `form:"venue"`
	GroupBy string `form:"group_by"`
}

func (r *ReportQuery) ToQuery() (queries.ReportQuery, error) {
	from, err := booking.ParseDate(r.From)
	if err != nil {
		return queries.ReportQuery{}, errs.Mark(errs.Wrap(err, "from"), errs.ErrInvalidReportQuery)
	}
	to, err := booking.ParseDate(r.To)
	if err != nil {
		return queries.ReportQuery{}, errs.Mark(errs.Wrap(err, "to"), errs.ErrInvalidReportQuery)
	}
	groupBy, err := queries.ParseReportGrouping(r.GroupBy)
	if err != nil {
		return queries.ReportQuery{}, err
	}
	return queries.ReportQuery{
		From:     from,
		To:       to,
		Selector: r.Venue,
		GroupBy:  groupBy,
	}, nil
}
