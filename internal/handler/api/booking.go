package api

import (
	"net/http"
	"strconv"

	reqdto "venue-boxoffice/internal/handler/dto/request"
	resdto "venue-boxoffice/internal/handler/dto/response"
	"venue-boxoffice/internal/handler/httperr"
	"venue-boxoffice/internal/handler/middleware"
	"venue-boxoffice/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Create booking group
// @Description Start an empty group of booking requests committed together
// @Tags booking-groups
// @Produce json
// @Success 201 {object} resdto.GroupResponse
// @Router /api/booking-groups [post]
func (h *BookingHandler) CreateGroup(c *gin.Context) {
	view, err := h.cmds.CreateGroup(c.Request.Context())
	if err != nil {
		abortWithDomainError(c, err, "Failed to create booking group")
		return
	}
	c.Header("Location", "/api/booking-groups/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromGroupView(view))
}

// @Summary Get booking group
// @Description Pending requests, state and current conflicts of a group
// @Tags booking-groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking-groups/{id} [get]
func (h *BookingHandler) GetGroup(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	view, err := h.cmds.GetGroup(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err, "Failed to load booking group")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

// @Summary Add booking request
// @Description Append one room/time request; overlaps are reported, not rejected
// @Tags booking-groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body reqdto.AddBookingRequest true "Booking request"
// @Success 200 {object} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-groups/{id}/requests [post]
func (h *BookingHandler) AddRequest(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	var req reqdto.AddBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.AddRequest(c.Request.Context(), id, req.ToParams())
	if err != nil {
		abortWithDomainError(c, err, "Failed to add booking request")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

// @Summary Add multi-day selections
// @Description Expand date to slot selections into requests, all or nothing
// @Tags booking-groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param request body reqdto.MultiDayRequest true "Selections"
// @Success 200 {object} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/booking-groups/{id}/multi-day [post]
func (h *BookingHandler) AddMultiDay(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	var req reqdto.MultiDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.AddMultiDay(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithDomainError(c, err, "Failed to add selections")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

// @Summary Remove booking request
// @Tags booking-groups
// @Produce json
// @Param id path string true "Group ID"
// @Param index path int true "Request index"
// @Success 200 {object} resdto.GroupResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-groups/{id}/requests/{index} [delete]
func (h *BookingHandler) RemoveRequest(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid index")
		return
	}
	view, err := h.cmds.RemoveRequest(c.Request.Context(), id, index)
	if err != nil {
		abortWithDomainError(c, err, "Failed to remove booking request")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupView(view))
}

// @Summary List conflicts
// @Tags booking-groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} resdto.ConflictResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking-groups/{id}/conflicts [get]
func (h *BookingHandler) Conflicts(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	pairs, err := h.cmds.Conflicts(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err, "Failed to check conflicts")
		return
	}
	c.JSON(http.StatusOK, resdto.FromConflicts(pairs))
}

// @Summary Commit booking group
// @Description Save every request in one transaction; refused while any pair overlaps
// @Tags booking-groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 201 {object} resdto.CommitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/booking-groups/{id}/commit [post]
func (h *BookingHandler) Commit(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	result, err := h.cmds.Commit(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err, "Failed to commit booking group")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommitResult(result))
}

// @Summary Discard booking group
// @Tags booking-groups
// @Param id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/booking-groups/{id} [delete]
func (h *BookingHandler) Discard(c *gin.Context) {
	id, ok := groupID(c)
	if !ok {
		return
	}
	if err := h.cmds.Discard(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err, "Failed to discard booking group")
		return
	}
	c.Status(http.StatusNoContent)
}

func groupID(c *gin.Context) (uuid.UUID, bool) {
	if id, ok := middleware.GetGroupID(c); ok {
		return id, true
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}
