//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/room"
	"resort-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cottage(t *testing.T) *room.Room {
	t.Helper()
	r, err := builder.NewRoomBuilder().BuildDomain()
	require.NoError(t, err)
	return r
}

func wholeResort(t *testing.T) *room.Room {
	t.Helper()
	r, err := builder.NewWholeResortBuilder().BuildDomain()
	require.NoError(t, err)
	return r
}

func TestSelection_Duration(t *testing.T) {
	t.Run("day and overnight are mutually exclusive", func(t *testing.T) {
		sel := reservation.NewSelection()

		sel.ChooseDay()
		assert.Equal(t, reservation.DurationDay, sel.Duration())

		sel.ChooseOvernight()
		assert.Equal(t, reservation.DurationOvernight, sel.Duration())

		sel.ChooseDay()
		assert.Equal(t, reservation.DurationDay, sel.Duration())
	})

	t.Run("clearing resets to none", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.ChooseOvernight()

		sel.ClearDuration()

		assert.Equal(t, reservation.DurationNone, sel.Duration())
	})
}

func TestSelection_SelectDate(t *testing.T) {
	sel := reservation.NewSelection()
	sel.SelectDate(time.Date(2025, time.October, 6, 18, 30, 0, 0, time.UTC))

	require.NotNil(t, sel.Date())
	assert.Equal(t, time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC), *sel.Date())

	sel.ClearDate()
	assert.Nil(t, sel.Date())
}

func TestSelection_SetGuests(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		capacity int
		want     int
	}{
		{name: "within capacity", count: 4, capacity: 8, want: 4},
		{name: "clamped to capacity", count: 20, capacity: 8, want: 8},
		{name: "negative floors to zero", count: -3, capacity: 8, want: 0},
		{name: "zero stays zero", count: 0, capacity: 8, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := reservation.NewSelection()
			sel.SetGuests(tc.count, tc.capacity)
			assert.Equal(t, tc.want, sel.Guests())
		})
	}
}

func TestSelection_ToggleAmenity(t *testing.T) {
	videoke := room.NewAmenity("Videoke", room.NewMoney(500))
	parking := room.NewAmenity("Free parking", room.NewMoney(0))

	t.Run("optional amenity toggles on and off", func(t *testing.T) {
		sel := reservation.NewSelection()

		sel.ToggleAmenity(videoke)
		assert.Len(t, sel.Amenities(), 1)

		sel.ToggleAmenity(videoke)
		assert.Empty(t, sel.Amenities())
	})

	t.Run("included amenity is a no-op", func(t *testing.T) {
		sel := reservation.NewSelection()

		sel.ToggleAmenity(parking)

		assert.Empty(t, sel.Amenities())
	})
}

func TestSelection_IsReservable(t *testing.T) {
	date := time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC)

	t.Run("complete selection is reservable", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.SelectDate(date)
		sel.ChooseDay()
		sel.SetGuests(4, 8)

		ok, missing := sel.IsReservable(cottage(t))

		assert.True(t, ok)
		assert.Empty(t, missing)
	})

	t.Run("reports every missing field", func(t *testing.T) {
		sel := reservation.NewSelection()

		ok, missing := sel.IsReservable(cottage(t))

		assert.False(t, ok)
		assert.Equal(t, []string{"check-in date", "stay duration", "guest count"}, missing)
	})

	t.Run("zero guests blocks the reserve action", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.SelectDate(date)
		sel.ChooseOvernight()

		ok, missing := sel.IsReservable(cottage(t))

		assert.False(t, ok)
		assert.Equal(t, []string{"guest count"}, missing)
	})

	t.Run("whole resort needs no duration choice", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.SelectDate(date)
		sel.SetGuests(30, 50)

		ok, missing := sel.IsReservable(wholeResort(t))

		assert.True(t, ok)
		assert.Empty(t, missing)
	})
}
