//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"venue-boxoffice/internal/domain/booking"
	"venue-boxoffice/internal/handler/api"
	reqdto "venue-boxoffice/internal/handler/dto/request"
	resdto "venue-boxoffice/internal/handler/dto/response"
	"venue-boxoffice/internal/handler/middleware"
	"venue-boxoffice/internal/pkg/errs"
	"venue-boxoffice/internal/usecase/commands"
	"venue-boxoffice/tests/common/httptest"
	"venue-boxoffice/tests/common/testutil"
	commandsmock "venue-boxoffice/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerSuite struct {
	suite.Suite
	router   *gin.Engine
	ctrl     *gomock.Controller
	mockCmds *commandsmock.MockBookingCommands
	handler  *api.BookingHandler
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerSuite))
}

func (s *BookingHandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockCmds = commandsmock.NewMockBookingCommands(s.ctrl)
	s.handler = api.NewBookingHandler(s.mockCmds)

	s.router = gin.New()
	g := s.router.Group("/booking-groups")
	withID := middleware.RequireGroupID()
	g.POST("", s.handler.CreateGroup)
	g.GET("/:id", withID, s.handler.GetGroup)
	g.DELETE("/:id", withID, s.handler.Discard)
	g.POST("/:id/requests", withID, s.handler.AddRequest)
	g.DELETE("/:id/requests/:index", withID, s.handler.RemoveRequest)
	g.POST("/:id/multi-day", withID, s.handler.AddMultiDay)
	g.GET("/:id/conflicts", withID, s.handler.Conflicts)
	g.POST("/:id/commit", withID, s.handler.Commit)
}

func (s *BookingHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BookingHandlerSuite) newRequest(venue, start, end string) booking.Request {
	req, err := booking.NewRequest(booking.RequestParams{
		Date:        "2025-05-01",
		Venue:       venue,
		StartTime:   start,
		EndTime:     end,
		EventName:   "Spring Recital",
		ClientName:  "Northern Chamber Choir",
		BookingType: "evening",
	})
	s.Require().NoError(err)
	return req
}

func (s *BookingHandlerSuite) view(id uuid.UUID, reqs ...booking.Request) *commands.GroupView {
	return &commands.GroupView{
		ID:        id,
		State:     booking.StateBuilding,
		CreatedAt: time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC),
		Requests:  reqs,
		Conflicts: booking.FindConflicts(reqs),
	}
}

func notFound(id uuid.UUID) error {
	return errs.Mark(errs.New("booking group "+id.String()), errs.ErrGroupNotFound)
}

// ================================================================================
// TestCreateGroup
// ================================================================================

func (s *BookingHandlerSuite) TestCreateGroup() {
	id := uuid.New()
	s.mockCmds.EXPECT().CreateGroup(gomock.Any()).Return(s.view(id), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-groups", nil)

	var body resdto.GroupResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal(id.String(), body.ID)
	s.Equal("building", body.State)
	s.Empty(body.Requests)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/booking-groups/" + id.String()})
}

// ================================================================================
// TestGetGroup
// ================================================================================

func (s *BookingHandlerSuite) TestGetGroup() {
	id := uuid.New()
	url := "/booking-groups/" + id.String()

	s.Run("success: returns pending requests and conflicts", func() {
		a := s.newRequest("Main Hall", "18:00", "22:00")
		b := s.newRequest("Main Hall", "21:00", "00:00")
		s.mockCmds.EXPECT().GetGroup(gomock.Any(), id).Return(s.view(id, a, b), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.GroupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Requests, 2)
		s.Equal("24:00", body.Requests[1].EndTime)
		s.Equal("EVENING", body.Requests[0].BookingType)
		s.Require().Len(body.Conflicts, 1)
		s.Equal(0, body.Conflicts[0].First)
		s.Equal(1, body.Conflicts[0].Second)
		s.Equal("Main Hall", body.Conflicts[0].Venue)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-groups/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when the group is unknown", func() {
		s.mockCmds.EXPECT().GetGroup(gomock.Any(), id).Return(nil, notFound(id)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking group not found")
	})
}

// ================================================================================
// TestAddRequest
// ================================================================================

func (s *BookingHandlerSuite) TestAddRequest() {
	id := uuid.New()
	url := "/booking-groups/" + id.String() + "/requests"
	reqBody := reqdto.AddBookingRequest{
		Date:          "2025-05-01",
		Venue:         "Main Hall",
		StartTime:     "18:00",
		EndTime:       "23:00",
		EventName:     "Spring Recital",
		ClientName:    "Northern Chamber Choir",
		Configuration: "Theatre",
		BookingType:   "evening",
	}

	s.Run("success: forwards the request fields", func() {
		added := s.newRequest("Main Hall", "18:00", "23:00")
		s.mockCmds.EXPECT().AddRequest(gomock.Any(), id, reqBody.ToParams()).
			Return(s.view(id, added), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.GroupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Requests, 1)
	})

	s.Run("success: missing optional fields are forwarded empty", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("configuration", nil), testutil.Field("booking_type", nil))
		want := reqBody.ToParams()
		want.Configuration = ""
		want.BookingType = ""
		s.mockCmds.EXPECT().AddRequest(gomock.Any(), id, want).Return(s.view(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 carries the failing field", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("start_time", "23:30"))
		s.mockCmds.EXPECT().AddRequest(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, p booking.RequestParams) (*commands.GroupView, error) {
				_, err := booking.NewRequest(p)
				return nil, err
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		var detail struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		}
		s.Require().NoError(json.Unmarshal(body.Detail, &detail))
		s.Equal("end_time", detail.Field)
		s.NotEmpty(detail.Reason)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown group",
				commandsError:  notFound(id),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking group not found",
			},
			{
				name:           "unpriced booking type",
				commandsError:  errs.Mark(errs.New("no rule"), errs.ErrUnpricedBooking),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No price",
			},
			{
				name:           "closed group",
				commandsError:  errs.Wrap(booking.ErrGroupClosed, "add"),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking group is closed",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to add booking request",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCmds.EXPECT().AddRequest(gomock.Any(), id, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAddMultiDay
// ================================================================================

func (s *BookingHandlerSuite) TestAddMultiDay() {
	id := uuid.New()
	url := "/booking-groups/" + id.String() + "/multi-day"
	reqBody := map[string]any{
		"client_name": "Northern Chamber Choir",
		"event_name":  "Festival",
		"selections": map[string]any{
			"2025-05-01": []map[string]any{{"venue": "Main Hall", "start_time": "09:00", "end_time": "13:00"}},
			"2025-05-02": []map[string]any{
				{"venue": "Main Hall", "start_time": "09:00", "end_time": "13:00"},
				{"venue": "Small Hall", "start_time": "18:00", "end_time": "23:00", "booking_type": "EVENING"},
			},
		},
	}

	s.Run("success: selections are converted per date", func() {
		want := commands.MultiDayInput{
			ClientName: "Northern Chamber Choir",
			EventName:  "Festival",
			Selections: booking.Selections{
				"2025-05-01": {{Venue: "Main Hall", StartTime: "09:00", EndTime: "13:00"}},
				"2025-05-02": {
					{Venue: "Main Hall", StartTime: "09:00", EndTime: "13:00"},
					{Venue: "Small Hall", StartTime: "18:00", EndTime: "23:00", BookingType: "EVENING"},
				},
			},
		}
		s.mockCmds.EXPECT().AddMultiDay(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.MultiDayInput) (*commands.GroupView, error) {
				if diff := cmp.Diff(want, in); diff != "" {
					s.T().Errorf("multi-day input mismatch (-want +got):\n%s", diff)
				}
				return s.view(id), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when a slot is invalid", func() {
		m := testutil.DtoMap(s.T(), reqBody, testutil.Field("selections.2025-05-03", []map[string]any{
			{"venue": "Nowhere", "start_time": "09:00", "end_time": "10:00"},
		}))
		s.mockCmds.EXPECT().AddMultiDay(gomock.Any(), id, gomock.Any()).
			Return(nil, &booking.ValidationError{Field: "venue", Reason: "unknown venue"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, m)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

// ================================================================================
// TestRemoveRequest
// ================================================================================

func (s *BookingHandlerSuite) TestRemoveRequest() {
	id := uuid.New()
	base := "/booking-groups/" + id.String() + "/requests/"

	s.Run("success", func() {
		s.mockCmds.EXPECT().RemoveRequest(gomock.Any(), id, 1).Return(s.view(id), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base+"1", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-numeric index", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base+"first", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid index")
	})

	s.Run("error: 404 on out of range index", func() {
		s.mockCmds.EXPECT().RemoveRequest(gomock.Any(), id, 7).Return(nil, booking.ErrNoSuchIndex).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, base+"7", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No request at that index")
	})
}

// ================================================================================
// TestConflicts
// ================================================================================

func (s *BookingHandlerSuite) TestConflicts() {
	id := uuid.New()
	a := s.newRequest("Small Hall", "18:00", "22:00")
	b := s.newRequest("Small Hall", "20:00", "23:00")
	s.mockCmds.EXPECT().Conflicts(gomock.Any(), id).Return(booking.FindConflicts([]booking.Request{a, b}), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-groups/"+id.String()+"/conflicts", nil)

	var body []resdto.ConflictResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("Small Hall", body[0].Venue)
	s.Equal("2025-05-01", body[0].Date)
	s.Contains(body[0].Detail, "overlaps")
}

// ================================================================================
// TestCommit
// ================================================================================

func (s *BookingHandlerSuite) TestCommit() {
	id := uuid.New()
	url := "/booking-groups/" + id.String() + "/commit"

	s.Run("success: 201 with booking ids and total", func() {
		bookingID := uuid.New()
		s.mockCmds.EXPECT().Commit(gomock.Any(), id).Return(&commands.CommitResult{
			GroupID:       id,
			BookingIDs:    []uuid.UUID{bookingID},
			PricedCount:   1,
			RoomRateTotal: decimal.NewFromInt(1850),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.CommitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		want := resdto.CommitResponse{
			GroupID:       id.String(),
			BookingIDs:    []string{bookingID.String()},
			PricedCount:   1,
			RoomRateTotal: "1850.00",
		}
		s.Empty(cmp.Diff(want, body))
	})

	s.Run("error: 409 lists the overlapping pairs", func() {
		a := s.newRequest("Main Hall", "18:00", "22:00")
		b := s.newRequest("Main Hall", "21:00", "23:00")
		conflict := &booking.ConflictError{Pairs: booking.FindConflicts([]booking.Request{a, b})}
		s.mockCmds.EXPECT().Commit(gomock.Any(), id).Return(nil, conflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Booking requests overlap")
		var pairs []resdto.ConflictResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &pairs))
		s.Len(pairs, 1)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty group",
				commandsError:  booking.ErrEmptyGroup,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no requests",
			},
			{
				name:           "persistence failure",
				commandsError:  &booking.PersistenceError{Index: -1, Err: errors.New("connection reset")},
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Booking storage unavailable",
			},
			{
				name:           "already submitted",
				commandsError:  booking.ErrGroupClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "closed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCmds.EXPECT().Commit(gomock.Any(), id).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDiscard
// ================================================================================

func (s *BookingHandlerSuite) TestDiscard() {
	id := uuid.New()
	url := "/booking-groups/" + id.String()

	s.Run("success: 204", func() {
		s.mockCmds.EXPECT().Discard(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		require.Equal(s.T(), http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when already submitted", func() {
		s.mockCmds.EXPECT().Discard(gomock.Any(), id).Return(booking.ErrGroupClosed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "closed")
	})
}
