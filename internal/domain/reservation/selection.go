package reservation

import (
	"time"

	"resort-booking/internal/domain/room"
)

// Selection is the transient per-screen booking state: chosen date, duration
// window, guest count and optional add-ons. It owns the small state machine
// that keeps day and overnight mutually exclusive.
type Selection struct {
	date      *time.Time
	duration  Duration
	guests    int
	amenities []room.Amenity
}

func NewSelection() *Selection {
	return &Selection{duration: DurationNone}
}

func (s *Selection) SelectDate(date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	s.date = &day
}

func (s *Selection) ClearDate() {
	s.date = nil
}

// ChooseDay activates the day window, clearing overnight.
func (s *Selection) ChooseDay() {
	s.duration = DurationDay
}

// ChooseOvernight activates the overnight window, clearing day.
func (s *Selection) ChooseOvernight() {
	s.duration = DurationOvernight
}

func (s *Selection) ChooseWholeResort() {
	s.duration = DurationWhole
}

func (s *Selection) ClearDuration() {
	s.duration = DurationNone
}

// SetGuests clamps to 0..capacity.
func (s *Selection) SetGuests(count, capacity int) {
	if count < 0 {
		count = 0
	}
	if count > capacity {
		count = capacity
	}
	s.guests = count
}

// ToggleAmenity adds or removes an optional add-on. Included amenities
// (zero surcharge) are informational only; toggling them is a no-op.
func (s *Selection) ToggleAmenity(a room.Amenity) {
	if !a.IsOptional() {
		return
	}
	for i, selected := range s.amenities {
		if selected.Name() == a.Name() {
			s.amenities = append(s.amenities[:i], s.amenities[i+1:]...)
			return
		}
	}
	s.amenities = append(s.amenities, a)
}

func (s *Selection) Date() *time.Time {
	return s.date
}

func (s *Selection) Duration() Duration {
	return s.duration
}

func (s *Selection) Guests() int {
	return s.guests
}

func (s *Selection) Amenities() []room.Amenity {
	return s.amenities
}

// IsReservable is the validity gate for the reserve action. The returned
// reasons name every missing field so the caller can show them instead of
// failing silently.
func (s *Selection) IsReservable(r *room.Room) (bool, []string) {
	var missing []string
	if s.date == nil {
		missing = append(missing, "check-in date")
	}
	if !r.IsWholeResort() && s.duration != DurationDay && s.duration != DurationOvernight {
		missing = append(missing, "stay duration")
	}
	if s.guests <= 0 {
		missing = append(missing, "guest count")
	}
	return len(missing) == 0, missing
}
