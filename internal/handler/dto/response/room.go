package response

import (
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	DayRate         int64             `json:"dayRate"`
	OvernightRate   int64             `json:"overnightRate"`
	WholeResortRate int64             `json:"wholeResortRate"`
	Capacity        int               `json:"capacity"`
	Description     string            `json:"description"`
	ImageURL        string            `json:"imageUrl"`
	Amenities       []AmenityResponse `json:"amenities"`
}

type AmenityResponse struct {
	Name      string `json:"name"`
	Surcharge int64  `json:"surcharge"`
	Optional  bool   `json:"optional"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	amenities := make([]AmenityResponse, 0, len(rm.Amenities))
	for _, a := range rm.Amenities {
		amenities = append(amenities, AmenityResponse{
			Name:      a.Name,
			Surcharge: a.Surcharge,
			Optional:  a.Surcharge > 0,
		})
	}

	return &RoomResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Category:        rm.Category,
		DayRate:         rm.DayRate,
		OvernightRate:   rm.OvernightRate,
		WholeResortRate: rm.WholeResortRate,
		Capacity:        rm.Capacity,
		Description:     rm.Description,
		ImageURL:        rm.ImageURL,
		Amenities:       amenities,
	}
}
