//go:build unit || e2e

package builder

import (
	"time"

	"resort-booking/internal/domain/availability"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Reference    string
	UserID       uuid.UUID
	UserFullName string
	UserEmail    string
	RoomID       uuid.UUID
	RoomName     string
	RoomCategory string
	Date         time.Time
	Duration     string
	Guests       int
	TotalAmount  int64
	Status       string
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		ID:           uuid.New(),
		Reference:    "RES-MDER4X2K-A1B2C3",
		UserID:       uuid.New(),
		UserFullName: "Juan Dela Cruz",
		UserEmail:    "juan@example.com",
		RoomID:       uuid.New(),
		RoomName:     "Seaside Cottage A",
		RoomCategory: "cottage",
		Date:         time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC),
		Duration:     "day",
		Guests:       4,
		TotalAmount:  3000,
		Status:       "pending",
		CreatedAt:    now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               b.ID,
		Reference:        b.Reference,
		UserID:           b.UserID,
		UserFullName:     b.UserFullName,
		UserEmail:        b.UserEmail,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		RoomCategory:     b.RoomCategory,
		Date:             availability.DisplayKey(b.Date),
		Duration:         b.Duration,
		Guests:           b.Guests,
		TotalAmount:      b.TotalAmount,
		PaymentMethod:    "on_arrival",
		Status:           b.Status,
		VerificationCode: "A1B2C3D4",
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:          b.ID,
		Reference:   b.Reference,
		RoomName:    b.RoomName,
		Date:        availability.DisplayKey(b.Date),
		Duration:    b.Duration,
		Guests:      b.Guests,
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:               b.ID,
		Reference:        b.Reference,
		UserID:           b.UserID,
		UserFullName:     b.UserFullName,
		UserEmail:        b.UserEmail,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		RoomCategory:     b.RoomCategory,
		Date:             availability.DisplayKey(b.Date),
		Duration:         b.Duration,
		Guests:           b.Guests,
		TotalAmount:      b.TotalAmount,
		PaymentMethod:    "on_arrival",
		Status:           b.Status,
		VerificationCode: "A1B2C3D4",
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"room_id":  b.RoomID.String(),
		"date":     availability.DisplayKey(b.Date),
		"duration": b.Duration,
		"guests":   b.Guests,
	}
}
