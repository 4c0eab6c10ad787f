package domain

import "fmt"

// Floor represents a floor number in a building.
type Floor int

// NewFloor creates a new Floor.
func NewFloor(value int) Floor {
	return Floor(value)
}

// Value returns the integer value of the floor.
func (f Floor) Value() int {
	return int(f)
}

// IsValid checks if the floor is within the given inclusive range.
func (f Floor) IsValid(minFloor, maxFloor Floor) bool {
	return f >= minFloor && f <= maxFloor
}

// Distance returns the absolute distance in floors between f and other.
func (f Floor) Distance(other Floor) int {
	diff := int(f) - int(other)
	if diff < 0 {
		return -diff
	}
	return diff
}

// String returns the string representation of the floor.
func (f Floor) String() string {
	return fmt.Sprintf("%d", int(f))
}

// IsAbove reports whether f is above other.
func (f Floor) IsAbove(other Floor) bool {
	return f > other
}

// IsBelow reports whether f is below other.
func (f Floor) IsBelow(other Floor) bool {
	return f < other
}

// IsEqual reports whether f equals other.
func (f Floor) IsEqual(other Floor) bool {
	return f == other
}
