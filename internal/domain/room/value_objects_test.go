//go:build unit

package room_test

import (
	"testing"

	"resort-booking/internal/domain/room"

	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "int", input: 2500, want: 2500},
		{name: "int64", input: int64(3500), want: 3500},
		{name: "float", input: 500.0, want: 500},
		{name: "plain numeric string", input: "2500", want: 2500},
		{name: "peso sign and commas", input: "₱2,500", want: 2500},
		{name: "whitespace", input: "  3500 ", want: 3500},
		{name: "decimal string truncates", input: "499.99", want: 499},
		{name: "garbage string", input: "call for pricing", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "negative floors to zero", input: -100, want: 0},
		{name: "unsupported type", input: []int{1}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, room.CoerceAmount(tc.input).Amount())
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("negative amounts floor to zero", func(t *testing.T) {
		assert.Equal(t, int64(0), room.NewMoney(-500).Amount())
	})

	t.Run("addition", func(t *testing.T) {
		sum := room.NewMoney(2500).Add(room.NewMoney(500))
		assert.Equal(t, int64(3000), sum.Amount())
	})

	t.Run("zero check", func(t *testing.T) {
		assert.True(t, room.NewMoney(0).IsZero())
		assert.False(t, room.NewMoney(1).IsZero())
	})
}

func TestAmenity(t *testing.T) {
	t.Run("positive surcharge is optional", func(t *testing.T) {
		a := room.NewAmenity("Videoke", room.NewMoney(500))
		assert.True(t, a.IsOptional())
	})

	t.Run("zero surcharge is included", func(t *testing.T) {
		a := room.NewAmenity("Free parking", room.NewMoney(0))
		assert.False(t, a.IsOptional())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		a := room.NewAmenity("  Videoke  ", room.NewMoney(500))
		assert.Equal(t, "Videoke", a.Name())
	})
}

func TestIncludedAmenities(t *testing.T) {
	amenities := room.IncludedAmenities([]string{"Free parking", "", "  ", "Grill area"})

	assert.Len(t, amenities, 2)
	for _, a := range amenities {
		assert.False(t, a.IsOptional())
	}
}
