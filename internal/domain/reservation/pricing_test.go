//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	videoke := room.NewAmenity("Videoke", room.NewMoney(500))

	t.Run("day rate", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.ChooseDay()

		breakdown := reservation.ComputeTotal(cottage(t), sel)

		assert.Equal(t, int64(2500), breakdown.Base.Amount())
		assert.Equal(t, int64(2500), breakdown.Total.Amount())
		require.Len(t, breakdown.Lines, 1)
		assert.Equal(t, "DAY", breakdown.Lines[0].Label)
	})

	t.Run("overnight rate", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.ChooseOvernight()

		breakdown := reservation.ComputeTotal(cottage(t), sel)

		assert.Equal(t, int64(3500), breakdown.Total.Amount())
		require.Len(t, breakdown.Lines, 1)
		assert.Equal(t, "OVERNIGHT", breakdown.Lines[0].Label)
	})

	t.Run("no duration means zero base", func(t *testing.T) {
		sel := reservation.NewSelection()

		breakdown := reservation.ComputeTotal(cottage(t), sel)

		assert.Equal(t, int64(0), breakdown.Total.Amount())
		assert.Empty(t, breakdown.Lines)
	})

	t.Run("amenity surcharge added on top", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.ChooseDay()
		sel.ToggleAmenity(videoke)

		breakdown := reservation.ComputeTotal(cottage(t), sel)

		assert.Equal(t, int64(2500), breakdown.Base.Amount())
		assert.Equal(t, int64(3000), breakdown.Total.Amount())
		require.Len(t, breakdown.Lines, 2)
		assert.Equal(t, "Videoke", breakdown.Lines[1].Label)
		assert.Equal(t, int64(500), breakdown.Lines[1].Amount.Amount())
	})

	t.Run("whole resort charges the flat package rate", func(t *testing.T) {
		sel := reservation.NewSelection()

		breakdown := reservation.ComputeTotal(wholeResort(t), sel)

		assert.Equal(t, int64(40000), breakdown.Total.Amount())
		require.Len(t, breakdown.Lines, 1)
		assert.Equal(t, "24-HOUR PACKAGE", breakdown.Lines[0].Label)
	})

	t.Run("whole resort ignores any duration choice", func(t *testing.T) {
		r := wholeResort(t)

		for _, choose := range []func(*reservation.Selection){
			(*reservation.Selection).ChooseDay,
			(*reservation.Selection).ChooseOvernight,
		} {
			sel := reservation.NewSelection()
			sel.SelectDate(time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC))
			choose(sel)

			breakdown := reservation.ComputeTotal(r, sel)

			assert.Equal(t, int64(40000), breakdown.Total.Amount())
		}
	})
}
