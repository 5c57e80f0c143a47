package reservation

import (
	"resort-booking/internal/domain/room"
)

// PriceLine is one row of the displayed breakdown.
type PriceLine struct {
	Label  string
	Amount room.Money
}

type PriceBreakdown struct {
	Lines []PriceLine
	Base  room.Money
	Total room.Money
}

// ComputeTotal derives the payable amount for a selection, in order:
// whole-resort offerings charge the flat package rate regardless of any
// duration choice; standard offerings charge the rate of the active window;
// selected optional amenities are added on top.
func ComputeTotal(r *room.Room, sel *Selection) PriceBreakdown {
	var breakdown PriceBreakdown

	if r.IsWholeResort() {
		breakdown.Base = r.WholeResortRate()
		breakdown.Lines = append(breakdown.Lines, PriceLine{
			Label:  "24-HOUR PACKAGE",
			Amount: r.WholeResortRate(),
		})
	} else {
		switch sel.Duration() {
		case DurationDay:
			breakdown.Base = r.DayRate()
			breakdown.Lines = append(breakdown.Lines, PriceLine{
				Label:  "DAY",
				Amount: r.DayRate(),
			})
		case DurationOvernight:
			breakdown.Base = r.OvernightRate()
			breakdown.Lines = append(breakdown.Lines, PriceLine{
				Label:  "OVERNIGHT",
				Amount: r.OvernightRate(),
			})
		}
	}

	total := breakdown.Base
	for _, a := range sel.Amenities() {
		breakdown.Lines = append(breakdown.Lines, PriceLine{
			Label:  a.Name(),
			Amount: a.Surcharge(),
		})
		total = total.Add(a.Surcharge())
	}
	breakdown.Total = total

	return breakdown
}
