//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resort-booking/internal/handler/api"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/common/testutil"
	commandsmock "resort-booking/tests/mock/commands"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	authedUserID uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_name", "Juan Dela Cruz")
		c.Set("user_email", "juan@example.com")
		c.Next()
	}

	// Setup routes
	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.GetUserReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	resB := builder.NewReservationBuilder()
	reqBody := resB.BuildCreateRequestBody()
	returnView := resB.BuildViewQuery()

	s.Run("success: returns 201 Created with ReservationResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.CreateReservationParams) (*queries.ReservationView, error) {
				s.Equal(s.authedUserID, params.UserID)
				s.Equal("Juan Dela Cruz", params.UserFullName)
				s.Equal(resB.RoomID, params.RoomID)
				s.Equal(resB.Guests, params.Guests)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
		var response resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(returnView.Reference, response.Reference)
		s.Equal(returnView.TotalAmount, response.TotalAmount)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReservation{
			{name: "missing field: room_id", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: guests", mutate: testutil.Field("guests", nil), expectCode: http.StatusBadRequest},
			{name: "malformed room_id", mutate: testutil.Field("room_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "ISO date rejected", mutate: testutil.Field("date", "2025-10-06"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
					b.RoomID = resB.RoomID
				}).BuildCreateRequestBody()
				tc.mutate(requestMap)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "selection incomplete",
				commandsError:  &commands.SelectionIncompleteError{Missing: []string{"stay duration"}},
				expectedStatus: http.StatusUnprocessableEntity,
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				s.Equal(tc.expectedStatus, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 422 body names the missing fields", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &commands.SelectionIncompleteError{Missing: []string{"stay duration", "guest count"}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		var body struct {
			Error   string   `json:"error"`
			Missing []string `json:"missing"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal([]string{"stay duration", "guest count"}, body.Missing)
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	resB := builder.NewReservationBuilder()
	url := "/reservations/" + resB.ID.String()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, resB.ID).
			Return(resB.BuildViewQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		var response resdto.ReservationResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(resB.ID, response.ID)
		s.Equal("Oct 6, 2025", response.Date)
		s.Equal(resB.Reference, response.Reference)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, resB.ID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGetUserReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetUserReservations() {
	url := "/reservations"

	s.Run("success: returns 200 OK with the guest's reservations", func() {
		items := []*queries.ReservationListItem{
			builder.NewReservationBuilder().BuildListItem(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = "cancelled"
			}).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID, queries.FilterAll).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
		var response []resdto.ReservationListResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Len(response, 2)
		s.Equal("pending", response[0].Status)
		s.Equal("cancelled", response[1].Status)
	})

	s.Run("success: passes the filter through", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.authedUserID, queries.FilterUpcoming).
			Return([]*queries.ReservationListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?filter=upcoming", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request for unknown filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?filter=archived", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.authedUserID, reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/cancel", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.authedUserID, reservationID).
			Return(commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 409 Conflict when no longer cancellable", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.authedUserID, reservationID).
			Return(commands.ErrNotCancellable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
