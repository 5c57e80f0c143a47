package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RoomSnapshot struct {
	ID              uuid.UUID
	Name            string
	Category        string
	DayRate         int64
	OvernightRate   int64
	WholeResortRate int64
	Capacity        int
	Amenities       []AmenitySnapshot
}

type AmenitySnapshot struct {
	Name      string
	Surcharge int64
}

type ReservationSnapshot struct {
	ID               uuid.UUID
	Reference        string
	UserID           uuid.UUID
	UserFullName     string
	UserEmail        string
	RoomID           uuid.UUID
	RoomName         string
	RoomCategory     string
	Date             string
	Duration         string
	Guests           int
	TotalAmount      int64
	PaymentMethod    string
	Status           string
	VerificationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
