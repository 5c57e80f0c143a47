package room

type Category string

const (
	CategoryRoom    Category = "room"
	CategoryCottage Category = "cottage"
	CategoryWhole   Category = "whole"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryRoom, CategoryCottage, CategoryWhole:
		return true
	default:
		return false
	}
}

// Capacity fallbacks for offerings stored without one.
const (
	DefaultWholeResortCapacity = 50
	DefaultRoomCapacity        = 8
)

func (c Category) DefaultCapacity() int {
	if c == CategoryWhole {
		return DefaultWholeResortCapacity
	}
	return DefaultRoomCapacity
}
