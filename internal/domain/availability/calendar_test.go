//go:build unit

package availability_test

import (
	"testing"
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// October 2025 starts on a Wednesday and has 31 days.
var today = time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC)

func blockedIdx(keys ...string) availability.Index {
	idx := make(availability.Index)
	for _, key := range keys {
		idx[key] = []availability.Entry{{Status: reservation.StatusConfirmed}}
	}
	return idx
}

func TestMonthGrid(t *testing.T) {
	t.Run("leading blanks match the first weekday", func(t *testing.T) {
		cells := availability.MonthGrid(2025, time.October, today, availability.Index{}, nil)

		require.Len(t, cells, 3+31)
		for i := 0; i < 3; i++ {
			assert.True(t, cells[i].Blank)
		}
		assert.False(t, cells[3].Blank)
		assert.Equal(t, 1, cells[3].Day)
		assert.Equal(t, 31, cells[len(cells)-1].Day)
	})

	t.Run("no blanks when the month starts on Sunday", func(t *testing.T) {
		// March 2026 starts on a Sunday
		cells := availability.MonthGrid(2026, time.March, today, availability.Index{}, nil)

		require.NotEmpty(t, cells)
		assert.False(t, cells[0].Blank)
		assert.Equal(t, 1, cells[0].Day)
	})

	t.Run("days before today are disabled", func(t *testing.T) {
		cells := availability.MonthGrid(2025, time.October, today, availability.Index{}, nil)

		day5 := cells[3+4]
		day6 := cells[3+5]
		assert.True(t, day5.Disabled)
		assert.False(t, day6.Disabled)
	})

	t.Run("today itself stays enabled regardless of time of day", func(t *testing.T) {
		lateToday := time.Date(2025, time.October, 6, 23, 30, 0, 0, time.FixedZone("PHT", 8*60*60))
		cells := availability.MonthGrid(2025, time.October, lateToday, availability.Index{}, nil)

		day6 := cells[3+5]
		assert.False(t, day6.Disabled)
	})

	t.Run("blocked dates are disabled", func(t *testing.T) {
		idx := blockedIdx("Oct 15, 2025")
		cells := availability.MonthGrid(2025, time.October, today, idx, nil)

		day15 := cells[3+14]
		assert.True(t, day15.Disabled)
	})

	t.Run("selected day is marked", func(t *testing.T) {
		selected := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
		cells := availability.MonthGrid(2025, time.October, today, availability.Index{}, &selected)

		day10 := cells[3+9]
		assert.True(t, day10.Selected)

		marked := 0
		for _, cell := range cells {
			if cell.Selected {
				marked++
			}
		}
		assert.Equal(t, 1, marked)
	})
}

func TestSelect(t *testing.T) {
	t.Run("picking an enabled day replaces the selection", func(t *testing.T) {
		current := time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)

		got := availability.Select(2025, time.October, 10, today, availability.Index{}, &current)

		require.NotNil(t, got)
		assert.Equal(t, 10, got.Day())
	})

	t.Run("picking a past day keeps the prior selection", func(t *testing.T) {
		current := time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)

		got := availability.Select(2025, time.October, 2, today, availability.Index{}, &current)

		require.NotNil(t, got)
		assert.Equal(t, 8, got.Day())
	})

	t.Run("picking a blocked day keeps the prior selection", func(t *testing.T) {
		idx := blockedIdx("Oct 15, 2025")
		current := time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)

		got := availability.Select(2025, time.October, 15, today, idx, &current)

		require.NotNil(t, got)
		assert.Equal(t, 8, got.Day())
	})

	t.Run("picking a disabled day with no selection stays empty", func(t *testing.T) {
		got := availability.Select(2025, time.October, 2, today, availability.Index{}, nil)

		assert.Nil(t, got)
	})
}
