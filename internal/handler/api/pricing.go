package api

import (
	"net/http"

	reqdto "venue-boxoffice/internal/handler/dto/request"
	resdto "venue-boxoffice/internal/handler/dto/response"
	"venue-boxoffice/internal/handler/httperr"
	"venue-boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Price quote
// @Description Price one venue booking. day_type wins over date when both are given.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithDomainError(c, err, "Failed to price booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
