package request

import (
	"time"

	"resort-booking/internal/domain/availability"
)

// QuoteRequest prices a partial selection. Every field is optional: the
// summary updates as the guest fills the form.
type QuoteRequest struct {
	Date      string   `json:"date,omitempty"`
	Duration  string   `json:"duration,omitempty"`
	Guests    int      `json:"guests,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

func (r QuoteRequest) ParseDate() (*time.Time, error) {
	if r.Date == "" {
		return nil, nil
	}
	t, err := availability.ParseDisplayKey(r.Date)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
