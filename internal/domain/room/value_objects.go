package room

import (
	"regexp"
	"strconv"
	"strings"
)

// Money is a peso amount. Rates in the source data carry no sub-unit
// precision, so whole units are stored as-is.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	if amount < 0 {
		amount = 0
	}
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

var nonNumeric = regexp.MustCompile(`[^0-9.-]`)

// CoerceAmount converts loosely-typed rate fields to Money. Source records
// mix numbers with strings like "₱2,500"; anything unparseable becomes zero
// rather than poisoning a computed total.
func CoerceAmount(v any) Money {
	switch n := v.(type) {
	case nil:
		return Money{}
	case int:
		return NewMoney(int64(n))
	case int32:
		return NewMoney(int64(n))
	case int64:
		return NewMoney(n)
	case float64:
		return NewMoney(int64(n))
	case string:
		cleaned := nonNumeric.ReplaceAllString(strings.TrimSpace(n), "")
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Money{}
		}
		return NewMoney(int64(parsed))
	default:
		return Money{}
	}
}

// Amenity is a named inclusion or paid add-on. A zero surcharge marks an
// included amenity: informational only, never selectable.
type Amenity struct {
	name      string
	surcharge Money
}

func NewAmenity(name string, surcharge Money) Amenity {
	return Amenity{
		name:      strings.TrimSpace(name),
		surcharge: surcharge,
	}
}

// IncludedAmenities builds the amenity list for offerings that store plain
// name arrays; everything in that shape is free of charge.
func IncludedAmenities(names []string) []Amenity {
	amenities := make([]Amenity, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		amenities = append(amenities, NewAmenity(name, Money{}))
	}
	return amenities
}

func (a Amenity) Name() string {
	return a.name
}

func (a Amenity) Surcharge() Money {
	return a.surcharge
}

func (a Amenity) IsOptional() bool {
	return a.surcharge.Amount() > 0
}
