//go:build e2e

package room_test

import (
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/handler/dto/response"
	"resort-booking/tests/common/dbtest"
	"resort-booking/tests/common/httptest"
	"resort-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roomsURL = "/api/rooms"

type RoomSuite struct {
	e2e.SharedSuite
}

func TestRoomSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RoomSuite))
}

// =============================================================================
// TestListAndGetRooms
// =============================================================================

func (s *RoomSuite) TestListAndGetRooms() {
	s.Run("Normal case: lists every offering with rates and amenities", func() {
		t := s.T()

		cottageID := dbtest.CreateTestRoom(t, s.DB, "Seaside Cottage A")
		dbtest.CreateTestWholeResort(t, s.DB)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rooms []response.RoomResponse
		httptest.DecodeResponseBody(t, w.Body, &rooms)
		require.Len(t, rooms, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+cottageID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cottage response.RoomResponse
		httptest.DecodeResponseBody(t, w.Body, &cottage)
		require.Equal(t, int64(2500), cottage.DayRate)
		require.Equal(t, int64(3500), cottage.OvernightRate)
		require.Len(t, cottage.Amenities, 2)
		require.Equal(t, "Free parking", cottage.Amenities[0].Name)
		require.False(t, cottage.Amenities[0].Optional)
		require.Equal(t, "Videoke", cottage.Amenities[1].Name)
		require.Equal(t, int64(500), cottage.Amenities[1].Surcharge)
		require.True(t, cottage.Amenities[1].Optional)
	})

	s.Run("Error case: unknown room returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+uuid.New().String(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestCalendar
// =============================================================================

func (s *RoomSuite) TestCalendar() {
	s.Run("Normal case: empty month renders all cells without blocks", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Seaside Cottage A")
		next := time.Now().AddDate(0, 1, 0)

		url := roomsURL + "/" + roomID.String() + "/calendar?year=" +
			next.Format("2006") + "&month=" + next.Format("1")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var calendar response.CalendarResponse
		httptest.DecodeResponseBody(t, w.Body, &calendar)
		require.Equal(t, next.Year(), calendar.Year)
		require.Equal(t, int(next.Month()), calendar.Month)
		require.Empty(t, calendar.BlockedDates)
		require.NotEmpty(t, calendar.Cells)
	})

	s.Run("Error case: month out of range returns 400", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Seaside Cottage A")

		url := roomsURL + "/" + roomID.String() + "/calendar?month=13"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestQuote
// =============================================================================

func (s *RoomSuite) TestQuote() {
	s.Run("Normal case: a complete selection is priced with its lines", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Seaside Cottage A")
		date := availability.DisplayKey(time.Now().AddDate(0, 1, 0))

		reqBody := map[string]any{
			"date":      date,
			"duration":  "overnight",
			"guests":    4,
			"amenities": []string{"Videoke"},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			roomsURL+"/"+roomID.String()+"/quote", reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		httptest.DecodeResponseBody(t, w.Body, &quote)
		require.True(t, quote.Reservable)
		require.Equal(t, int64(3500), quote.BaseAmount)
		require.Equal(t, int64(4000), quote.Total)
		require.Len(t, quote.Lines, 2)
	})

	s.Run("Normal case: a partial selection reports what is missing", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, "Seaside Cottage A")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			roomsURL+"/"+roomID.String()+"/quote", map[string]any{"duration": "day"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.QuoteResponse
		httptest.DecodeResponseBody(t, w.Body, &quote)
		require.False(t, quote.Reservable)
		require.Equal(t, int64(2500), quote.Total)
		require.Contains(t, quote.Missing, "check-in date")
		require.Contains(t, quote.Missing, "guest count")
	})
}
