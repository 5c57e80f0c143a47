package response

import (
	"resort-booking/internal/domain/availability"
	"resort-booking/internal/usecase/queries"
)

type CalendarResponse struct {
	Year         int                    `json:"year"`
	Month        int                    `json:"month"`
	Cells        []availability.DayCell `json:"cells"`
	BlockedDates []string               `json:"blockedDates"`
}

type QuoteResponse struct {
	Lines      []QuoteLineResponse `json:"lines"`
	BaseAmount int64               `json:"baseAmount"`
	Total      int64               `json:"total"`
	Reservable bool                `json:"reservable"`
	Missing    []string            `json:"missing,omitempty"`
}

type QuoteLineResponse struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

func FromCalendarView(rm *queries.CalendarView) *CalendarResponse {
	return &CalendarResponse{
		Year:         rm.Year,
		Month:        rm.Month,
		Cells:        rm.Cells,
		BlockedDates: rm.BlockedDates,
	}
}

func FromQuoteView(rm *queries.QuoteView) *QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(rm.Lines))
	for _, line := range rm.Lines {
		lines = append(lines, QuoteLineResponse{Label: line.Label, Amount: line.Amount})
	}
	return &QuoteResponse{
		Lines:      lines,
		BaseAmount: rm.BaseAmount,
		Total:      rm.Total,
		Reservable: rm.Reservable,
		Missing:    rm.Missing,
	}
}
