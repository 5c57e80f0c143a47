package availability

import (
	"time"
)

// DayCell describes one slot in a month grid. Leading slots before the
// first weekday are blank; the rest carry the day number and its state.
type DayCell struct {
	Day      int  `json:"day"`
	Blank    bool `json:"blank"`
	Disabled bool `json:"disabled"`
	Selected bool `json:"selected"`
}

// MonthGrid renders the day cells for one month. A cell is disabled when
// its date is strictly before today at day granularity or blocked in the
// index; it is selected when it equals the current selection by calendar
// date. Pure function of its inputs.
func MonthGrid(year int, month time.Month, today time.Time, idx Index, selected *time.Time) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today = TruncateToDay(today)

	cells := make([]DayCell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Blank: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, DayCell{
			Day:      day,
			Disabled: beforeDay(date, today) || idx.IsDateUnavailable(date),
			Selected: selected != nil && sameDay(date, *selected),
		})
	}

	return cells
}

// Select applies a tap on a day cell: picking a disabled day is a no-op
// and keeps the prior selection; picking an enabled day replaces it.
func Select(year int, month time.Month, day int, today time.Time, idx Index, current *time.Time) *time.Time {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if beforeDay(date, today) || idx.IsDateUnavailable(date) {
		return current
	}
	return &date
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// Calendar-date ordering, ignoring time components and locations.
func beforeDay(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	if a.Month() != b.Month() {
		return a.Month() < b.Month()
	}
	return a.Day() < b.Day()
}
