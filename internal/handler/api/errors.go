package api

import (
	"errors"
	"net/http"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/domain/pricing"
	"venue-boxoffice/internal/handler/dto/response"
	"venue-boxoffice/internal/handler/httperr"
	"venue-boxoffice/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type fieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// abortWithDomainError maps usecase and domain errors onto HTTP statuses.
// Markers are checked before the wrapped domain errors they may carry.
func abortWithDomainError(c *gin.Context, err error, fallback string) {
	var (
		ve *booking.ValidationError
		ce *booking.ConflictError
	)

	var resp httperr.Response
	switch {
	case errs.Is(err, errs.ErrGroupNotFound):
		resp = httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "Booking group not found", nil)
	case errs.Is(err, errs.ErrUnpricedBooking), errors.Is(err, pricing.ErrRuleNotFound):
		resp = httperr.NewResponse(http.StatusUnprocessableEntity, httperr.CodeUnpriced, "No price for this venue and booking type", nil)
	case errs.Is(err, errs.ErrInvalidReportQuery):
		resp = httperr.NewResponse(http.StatusBadRequest, httperr.CodeInvalidRequest, "Invalid report query", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		resp = httperr.NewResponse(http.StatusBadRequest, httperr.CodeInvalidRequest, "Invalid request", nil)
	case errs.Is(err, errs.ErrDatabaseOperationFailed), errors.Is(err, booking.ErrPersistence):
		resp = httperr.NewResponse(http.StatusInternalServerError, httperr.CodeStorage, "Booking storage unavailable", nil)
	case errors.As(err, &ce):
		resp = httperr.NewResponse(http.StatusConflict, httperr.CodeConflict, "Booking requests overlap", response.FromConflicts(ce.Pairs))
	case errors.Is(err, booking.ErrGroupClosed):
		resp = httperr.NewResponse(http.StatusConflict, httperr.CodeGroupClosed, "Booking group is closed", nil)
	case errors.Is(err, booking.ErrEmptyGroup):
		resp = httperr.NewResponse(http.StatusUnprocessableEntity, httperr.CodeEmptyGroup, "Booking group has no requests", nil)
	case errors.Is(err, booking.ErrNoSuchIndex):
		resp = httperr.NewResponse(http.StatusNotFound, httperr.CodeNotFound, "No request at that index", nil)
	case errors.As(err, &ve):
		resp = httperr.NewResponse(http.StatusUnprocessableEntity, httperr.CodeValidation, "Validation failed", fieldDetail{Field: ve.Field, Reason: ve.Reason})
	default:
		resp = httperr.NewResponse(http.StatusInternalServerError, httperr.CodeInternal, fallback, nil)
	}
	httperr.AbortWithError(c, err, resp)
}
