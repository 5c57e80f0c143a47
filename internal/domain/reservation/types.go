package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusCheckedIn Status = "checked-in"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusCheckedIn:
		return true
	default:
		return false
	}
}

// Blocking reports whether a reservation with this status holds its date.
// Only pending and confirmed block; cancelled, completed and checked-in
// release the date (business rule carried over from the booking desk).
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Duration is the booking window for a stay. Day and overnight are the two
// 10-hour windows for standard rooms; the whole-resort package is a fixed
// 24-hour block with no window choice.
type Duration string

const (
	DurationNone      Duration = "none"
	DurationDay       Duration = "day"
	DurationOvernight Duration = "overnight"
	DurationWhole     Duration = "whole-resort"
)

func (d Duration) String() string {
	return string(d)
}
