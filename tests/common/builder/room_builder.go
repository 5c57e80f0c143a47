//go:build unit || e2e

package builder

import (
	"resort-booking/internal/domain/room"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID              uuid.UUID
	Name            string
	Category        string
	DayRate         int64
	OvernightRate   int64
	WholeResortRate int64
	Capacity        int
	Description     string
	ImageURL        string
	Amenities       []queries.AmenityView
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:            uuid.New(),
		Name:          "Seaside Cottage A",
		Category:      "cottage",
		DayRate:       2500,
		OvernightRate: 3500,
		Capacity:      8,
		Description:   "Cottage with a beachfront view",
		ImageURL:      "https://example.com/cottage-a.jpg",
		Amenities: []queries.AmenityView{
			{Name: "Free parking", Surcharge: 0},
			{Name: "Videoke", Surcharge: 500},
		},
	}
}

func NewWholeResortBuilder() *RoomBuilder {
	b := NewRoomBuilder()
	b.Name = "Whole Resort"
	b.Category = "whole"
	b.DayRate = 0
	b.OvernightRate = 0
	b.WholeResortRate = 40000
	b.Capacity = 50
	b.Description = "Exclusive use of the entire resort for 24 hours"
	return b
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*room.Room, error) {
	amenities := make([]room.Amenity, 0, len(b.Amenities))
	for _, a := range b.Amenities {
		amenities = append(amenities, room.NewAmenity(a.Name, room.NewMoney(a.Surcharge)))
	}
	return room.NewRoom(
		b.ID,
		b.Name,
		room.Category(b.Category),
		room.NewMoney(b.DayRate),
		room.NewMoney(b.OvernightRate),
		room.NewMoney(b.WholeResortRate),
		b.Capacity,
		b.Description,
		b.ImageURL,
		amenities,
	)
}

func (b *RoomBuilder) BuildViewQuery() *queries.RoomView {
	return &queries.RoomView{
		ID:              b.ID,
		Name:            b.Name,
		Category:        b.Category,
		DayRate:         b.DayRate,
		OvernightRate:   b.OvernightRate,
		WholeResortRate: b.WholeResortRate,
		Capacity:        b.Capacity,
		Description:     b.Description,
		ImageURL:        b.ImageURL,
		Amenities:       b.Amenities,
	}
}

func (b *RoomBuilder) BuildSnapshot() *commands.RoomSnapshot {
	amenities := make([]commands.AmenitySnapshot, 0, len(b.Amenities))
	for _, a := range b.Amenities {
		amenities = append(amenities, commands.AmenitySnapshot{Name: a.Name, Surcharge: a.Surcharge})
	}
	return &commands.RoomSnapshot{
		ID:              b.ID,
		Name:            b.Name,
		Category:        b.Category,
		DayRate:         b.DayRate,
		OvernightRate:   b.OvernightRate,
		WholeResortRate: b.WholeResortRate,
		Capacity:        b.Capacity,
		Amenities:       amenities,
	}
}
