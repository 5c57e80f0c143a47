package availability

import (
	"sort"
	"time"

	"resort-booking/internal/domain/reservation"
)

// ReservationSummary is one entry inside a date document: which room it
// holds and in what status. Extra fields on the wire are ignored.
type ReservationSummary struct {
	RoomName string             `json:"roomName"`
	Status   reservation.Status `json:"status"`
}

// DateDocument is the shape of a date-indexed record in the dates
// collection.
type DateDocument struct {
	Date         string               `json:"date"`
	Reservations []ReservationSummary `json:"reservations"`
}

// Entry is what the index retains per matching reservation.
type Entry struct {
	Status reservation.Status
}

// Index maps a display date key to the reservations held against one room
// on that day. Built fresh per request; never persisted.
type Index map[string][]Entry

// BuildIndex scans date documents and retains entries whose room name
// matches exactly. Malformed or empty input yields an empty index: the
// calendar fails open and treats every date as available.
func BuildIndex(docs []DateDocument, roomName string) Index {
	idx := make(Index)
	for _, doc := range docs {
		if doc.Date == "" {
			continue
		}
		for _, summary := range doc.Reservations {
			if summary.RoomName != roomName {
				continue
			}
			status := summary.Status
			if status == "" {
				status = reservation.StatusPending
			}
			idx[doc.Date] = append(idx[doc.Date], Entry{Status: status})
		}
	}
	return idx
}

// IsDateUnavailable reports whether any reservation held on the given day
// blocks it. Dates with no entry, or only released entries (cancelled,
// completed, checked-in), are available.
func (idx Index) IsDateUnavailable(date time.Time) bool {
	for _, entry := range idx[DisplayKey(date)] {
		if entry.Status.Blocking() {
			return true
		}
	}
	return false
}

// BlockedKeys returns the display keys of every blocked date, sorted for
// stable responses.
func (idx Index) BlockedKeys() []string {
	keys := make([]string, 0, len(idx))
	for key, entries := range idx {
		for _, entry := range entries {
			if entry.Status.Blocking() {
				keys = append(keys, key)
				break
			}
		}
	}
	sort.Strings(keys)
	return keys
}
