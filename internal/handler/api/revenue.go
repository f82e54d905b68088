package api

import (
	"net/http"

	reqdto "venue-boxoffice/internal/handler/dto/request"
	resdto "venue-boxoffice/internal/handler/dto/response"
	"venue-boxoffice/internal/handler/httperr"
	"venue-boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RevenueHandler struct {
	q queries.RevenueQueries
}

func NewRevenueHandler(q queries.RevenueQueries) *RevenueHandler {
	return &RevenueHandler{q: q}
}

// @Summary Revenue report
// @Description Totals for a date range, filtered by venue, "Rooms" or "All Venues"
// @Tags revenue
// @Produce json
// @Param from query string true "First date, YYYY-MM-DD"
// @Param to query string true "Last date, YYYY-MM-DD"
// @Param venue query string false "Venue name, Rooms or All Venues"
// @Param group_by query string false "venue, month, room_rate or ticket_sales"
// @Success 200 {object} resdto.ReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/revenue/report [get]
func (h *RevenueHandler) Report(c *gin.Context) {
	var req reqdto.ReportQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	rq, err := req.ToQuery()
	if err != nil {
		abortWithDomainError(c, err, "Invalid report query")
		return
	}
	view, err := h.q.Report(c.Request.Context(), rq)
	if err != nil {
		abortWithDomainError(c, err, "Failed to build revenue report")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReportView(view))
}
