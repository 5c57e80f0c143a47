package queries

import (
	"time"

	"resort-booking/internal/domain/availability"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	DayRate         int64         `json:"day_rate"`
	OvernightRate   int64         `json:"overnight_rate"`
	WholeResortRate int64         `json:"whole_resort_rate"`
	Capacity        int           `json:"capacity"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"image_url"`
	Amenities       []AmenityView `json:"amenities"`
}

type AmenityView struct {
	Name      string `json:"name"`
	Surcharge int64  `json:"surcharge"`
}

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	UserID           uuid.UUID `json:"user_id"`
	UserFullName     string    `json:"user_full_name"`
	UserEmail        string    `json:"user_email"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomName         string    `json:"room_name"`
	RoomCategory     string    `json:"room_category"`
	Date             string    `json:"date"`
	Duration         string    `json:"duration"`
	Guests           int       `json:"guests"`
	TotalAmount      int64     `json:"total_amount"`
	PaymentMethod    string    `json:"payment_method"`
	Status           string    `json:"status"`
	VerificationCode string    `json:"verification_code"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	RoomName    string    `json:"room_name"`
	Date        string    `json:"date"`
	Duration    string    `json:"duration"`
	Guests      int       `json:"guests"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CalendarView struct {
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	Cells        []availability.DayCell `json:"cells"`
	BlockedDates []string               `json:"blocked_dates"`
}

type QuoteView struct {
	Lines      []QuoteLine `json:"lines"`
	BaseAmount int64       `json:"base_amount"`
	Total      int64       `json:"total"`
	Reservable bool        `json:"reservable"`
	Missing    []string    `json:"missing,omitempty"`
}

type QuoteLine struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}
