package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrInvalidCategory = errors.New("invalid room category")
	ErrRoomNameTooLong = errors.New("room name is too long (max 255 characters)")
)

const MaxRoomNameLength = 255

// Room is an immutable offering snapshot fetched by the query side.
type Room struct {
	id              uuid.UUID
	name            string
	category        Category
	dayRate         Money
	overnightRate   Money
	wholeResortRate Money
	capacity        int
	description     string
	imageURL        string
	amenities       []Amenity
}

func NewRoom(
	id uuid.UUID,
	name string,
	category Category,
	dayRate, overnightRate, wholeResortRate Money,
	capacity int,
	description, imageURL string,
	amenities []Amenity,
) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if capacity <= 0 {
		capacity = category.DefaultCapacity()
	}

	return &Room{
		id:              id,
		name:            name,
		category:        category,
		dayRate:         dayRate,
		overnightRate:   overnightRate,
		wholeResortRate: wholeResortRate,
		capacity:        capacity,
		description:     description,
		imageURL:        imageURL,
		amenities:       amenities,
	}, nil
}

func (r *Room) IsWholeResort() bool {
	return r.category == CategoryWhole
}

// FindAmenity looks an amenity up by exact name among the room's offerings.
func (r *Room) FindAmenity(name string) (Amenity, bool) {
	for _, a := range r.amenities {
		if a.Name() == name {
			return a, true
		}
	}
	return Amenity{}, false
}

func (r *Room) ID() uuid.UUID          { return r.id }
func (r *Room) Name() string           { return r.name }
func (r *Room) Category() Category     { return r.category }
func (r *Room) DayRate() Money         { return r.dayRate }
func (r *Room) OvernightRate() Money   { return r.overnightRate }
func (r *Room) WholeResortRate() Money { return r.wholeResortRate }
func (r *Room) Capacity() int          { return r.capacity }
func (r *Room) Description() string    { return r.description }
func (r *Room) ImageURL() string       { return r.imageURL }
func (r *Room) Amenities() []Amenity   { return r.amenities }
