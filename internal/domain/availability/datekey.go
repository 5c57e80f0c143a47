package availability

import (
	"fmt"
	"time"
)

// Two canonical date-key formats, shared by every writer and reader so the
// string-matched contract cannot drift.
//
// DisplayKey is the format stored inside date documents and reservation
// records: "Oct 6, 2025" (three-letter month, no leading zero on the day,
// comma, 4-digit year). Matching is by string equality, so this must stay
// bit-for-bit identical to what the records carry.
//
// DocumentKey is the ISO day used in date-document IDs: "2025-10-06".
const (
	displayKeyLayout  = "Jan 2, 2006"
	documentKeyLayout = "2006-01-02"
)

func DisplayKey(t time.Time) string {
	return t.Format(displayKeyLayout)
}

func ParseDisplayKey(key string) (time.Time, error) {
	return time.Parse(displayKeyLayout, key)
}

func DocumentKey(t time.Time) string {
	return t.Format(documentKeyLayout)
}

// DocumentID names the date document for one room type and day, e.g.
// "whole_resort_2025-10-06".
func DocumentID(roomType string, t time.Time) string {
	return fmt.Sprintf("%s_%s", roomType, DocumentKey(t))
}

// TruncateToDay strips the time component for day-granularity comparisons.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
