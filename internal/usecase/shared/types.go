package shared

// DateEntryRecord is the reservation summary appended into a date document.
// Field names are the wire contract with existing records; the availability
// index only reads roomName and status, the rest is front-desk context.
type DateEntryRecord struct {
	ReservationID string `json:"reservationId"`
	RoomType      string `json:"roomType"`
	Date          string `json:"date"`
	RoomName      string `json:"roomName"`
	Guests        int    `json:"guests"`
	BookedAt      string `json:"bookedAt"`
	UserID        string `json:"userId"`
	UserFullName  string `json:"userFullName"`
	Status        string `json:"status"`
}
