package kernel

import "manufacturing/internal/pkg/errs"

const (
	// MinPercentage is the lower bound of the percentage scale.
	MinPercentage = 0
	// MaxPercentage is the upper bound of the percentage scale.
	MaxPercentage = 100
)

// Percentage is a value object representing an integer share of completion or
// efficiency on the closed scale [0, 100]. Milestone completion and employee
// efficiency both use it; out-of-range inputs are rejected at construction
// instead of being clamped, so bad data never enters an aggregate silently.
//
// The zero value is a valid 0%, which matches the initial state of every
// milestone and tracking record.
type Percentage struct {
	value int
}

// NewPercentage creates a Percentage, rejecting values outside [0, 100] with a
// ValueIsOutOfRangeError.
func NewPercentage(value int) (Percentage, error) {
	if value < MinPercentage || value > MaxPercentage {
		return Percentage{}, errs.NewValueIsOutOfRangeError("percentage", value, MinPercentage, MaxPercentage)
	}
	return Percentage{value: value}, nil
}

// Value returns the percentage as an int in [0, 100].
func (p Percentage) Value() int {
	return p.value
}

// IsEqual compares two percentages by value.
func (p Percentage) IsEqual(other Percentage) bool {
	return p.value == other.value
}
