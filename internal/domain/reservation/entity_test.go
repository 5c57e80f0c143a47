//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"resort-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeSelection(t *testing.T) *reservation.Selection {
	t.Helper()
	sel := reservation.NewSelection()
	sel.SelectDate(time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC))
	sel.ChooseDay()
	sel.SetGuests(4, 8)
	return sel
}

func TestNewReservation(t *testing.T) {
	now := time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)

	t.Run("builds a pending reservation with server-side total", func(t *testing.T) {
		userID := uuid.New()

		res, err := reservation.NewReservation(cottage(t), completeSelection(t), userID, "Juan Dela Cruz", "juan@example.com", now)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, int64(2500), res.Total().Amount())
		assert.Equal(t, "on_arrival", res.PaymentMethod())
		assert.Equal(t, userID, res.UserID())
		assert.Equal(t, 4, res.Guests())
		assert.Equal(t, now, res.CreatedAt())
		assert.NotEqual(t, uuid.Nil, res.ID())
	})

	t.Run("reference carries the RES prefix", func(t *testing.T) {
		res, err := reservation.NewReservation(cottage(t), completeSelection(t), uuid.New(), "Juan", "juan@example.com", now)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(res.Reference(), "RES-"))
		assert.Equal(t, res.Reference(), strings.ToUpper(res.Reference()))
	})

	t.Run("verification code is eight characters", func(t *testing.T) {
		res, err := reservation.NewReservation(cottage(t), completeSelection(t), uuid.New(), "Juan", "juan@example.com", now)
		require.NoError(t, err)

		assert.Len(t, res.VerificationCode(), 8)
	})

	t.Run("incomplete selection is rejected", func(t *testing.T) {
		sel := reservation.NewSelection()

		_, err := reservation.NewReservation(cottage(t), sel, uuid.New(), "Juan", "juan@example.com", now)

		assert.ErrorIs(t, err, reservation.ErrSelectionIncomplete)
	})

	t.Run("whole resort forces the package duration", func(t *testing.T) {
		sel := reservation.NewSelection()
		sel.SelectDate(time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC))
		sel.ChooseDay()
		sel.SetGuests(30, 50)

		res, err := reservation.NewReservation(wholeResort(t), sel, uuid.New(), "Juan", "juan@example.com", now)
		require.NoError(t, err)

		assert.Equal(t, reservation.DurationWhole, res.Duration())
		assert.Equal(t, int64(40000), res.Total().Amount())
	})
}

func TestReservation_Cancel(t *testing.T) {
	now := time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)
	later := now.Add(2 * time.Hour)

	t.Run("pending reservation cancels", func(t *testing.T) {
		res, err := reservation.NewReservation(cottage(t), completeSelection(t), uuid.New(), "Juan", "juan@example.com", now)
		require.NoError(t, err)

		require.NoError(t, res.Cancel(later))

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		assert.Equal(t, later, res.UpdatedAt())
		assert.False(t, res.IsActive())
	})

	t.Run("non-pending statuses refuse", func(t *testing.T) {
		for _, status := range []reservation.Status{
			reservation.StatusConfirmed,
			reservation.StatusCancelled,
			reservation.StatusCompleted,
			reservation.StatusCheckedIn,
		} {
			res := reconstructWithStatus(t, status, now)

			err := res.Cancel(later)

			assert.ErrorIs(t, err, reservation.ErrNotCancellable, "status %s", status)
		}
	})
}

func reconstructWithStatus(t *testing.T, status reservation.Status, now time.Time) *reservation.Reservation {
	t.Helper()
	base, err := reservation.NewReservation(cottage(t), completeSelection(t), uuid.New(), "Juan", "juan@example.com", now)
	require.NoError(t, err)

	return reservation.ReconstructReservation(
		base.ID(),
		base.Reference(),
		base.UserID(),
		base.UserFullName(),
		base.UserEmail(),
		base.RoomID(),
		base.RoomName(),
		base.RoomCategory(),
		base.Date(),
		base.Duration(),
		base.Guests(),
		base.Total(),
		base.PaymentMethod(),
		status,
		base.VerificationCode(),
		base.CreatedAt(),
		base.UpdatedAt(),
	)
}

func TestStatus_Blocking(t *testing.T) {
	assert.True(t, reservation.StatusPending.Blocking())
	assert.True(t, reservation.StatusConfirmed.Blocking())
	assert.False(t, reservation.StatusCancelled.Blocking())
	assert.False(t, reservation.StatusCompleted.Blocking())
	assert.False(t, reservation.StatusCheckedIn.Blocking())
}
