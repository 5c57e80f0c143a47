package response

import (
	"time"

	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	UserID           uuid.UUID `json:"userId"`
	UserFullName     string    `json:"userFullName"`
	UserEmail        string    `json:"userEmail"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomName         string    `json:"roomName"`
	RoomCategory     string    `json:"roomCategory"`
	Date             string    `json:"date"`
	Duration         string    `json:"duration"`
	Guests           int       `json:"guests"`
	TotalAmount      int64     `json:"totalAmount"`
	PaymentMethod    string    `json:"paymentMethod"`
	Status           string    `json:"status"`
	VerificationCode string    `json:"verificationCode"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	RoomName    string    `json:"roomName"`
	Date        string    `json:"date"`
	Duration    string    `json:"duration"`
	Guests      int       `json:"guests"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:               rm.ID,
		Reference:        rm.Reference,
		UserID:           rm.UserID,
		UserFullName:     rm.UserFullName,
		UserEmail:        rm.UserEmail,
		RoomID:           rm.RoomID,
		RoomName:         rm.RoomName,
		RoomCategory:     rm.RoomCategory,
		Date:             rm.Date,
		Duration:         rm.Duration,
		Guests:           rm.Guests,
		TotalAmount:      rm.TotalAmount,
		PaymentMethod:    rm.PaymentMethod,
		Status:           rm.Status,
		VerificationCode: rm.VerificationCode,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:          rm.ID,
		Reference:   rm.Reference,
		RoomName:    rm.RoomName,
		Date:        rm.Date,
		Duration:    rm.Duration,
		Guests:      rm.Guests,
		TotalAmount: rm.TotalAmount,
		Status:      rm.Status,
		CreatedAt:   rm.CreatedAt,
	}
}
