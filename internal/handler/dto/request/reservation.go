package request

import (
	"time"

	"resort-booking/internal/domain/availability"

	"github.com/google/uuid"
)

// CreateReservationRequest carries the guest's confirmed selection. The date
// travels as a display key ("Oct 6, 2025"), the format every stored record
// uses.
type CreateReservationRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Duration  string    `json:"duration,omitempty"`
	Guests    int       `json:"guests" binding:"required"`
	Amenities []string  `json:"amenities,omitempty"`
}

func (r CreateReservationRequest) ParseDate() (time.Time, error) {
	return availability.ParseDisplayKey(r.Date)
}
