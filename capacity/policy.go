// Package capacity decides when an array-backed container grows or shrinks its
// backing store and by how much. Growth and shrink move the capacity
// geometrically, so each element is copied an amortized constant number of times.
package capacity

import (
	"errors"
	"fmt"
)

const (
	// DefaultGrowthFactor is the multiplier applied on growth and the divisor on shrink.
	DefaultGrowthFactor = 2
	// DefaultHighWater is the fill ratio at which a store grows.
	DefaultHighWater = 0.75
	// DefaultLowWater is the fill ratio at which a store shrinks.
	DefaultLowWater = 0.25
	// DefaultFloor is the smallest capacity a bounded store shrinks to.
	DefaultFloor = 10
)

var (
	ErrInvalidPolicy    = errors.New("invalid capacity policy")
	ErrInvalidCapacity  = errors.New("invalid capacity")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Policy holds the resize thresholds. It has no state of its own, the caller
// supplies the current size and capacity on every query. The methods assume a
// policy that passes Validate; a growth factor below 1 never shrinks.
type Policy struct {
	GrowthFactor int
	HighWater    float64
	LowWater     float64
	Floor        int
}

// DefaultPolicy returns the policy with growth factor 2, high water 75%, low water 25% and floor 10.
func DefaultPolicy() Policy {
	return Policy{
		GrowthFactor: DefaultGrowthFactor,
		HighWater:    DefaultHighWater,
		LowWater:     DefaultLowWater,
		Floor:        DefaultFloor,
	}
}

// Validate returns an error wrapping ErrInvalidPolicy if the thresholds are unusable.
// The low water mark must sit below HighWater/GrowthFactor, otherwise a single
// shrink could leave the store above its high water mark.
func (p Policy) Validate() error {
	switch {
	case p.GrowthFactor < 2:
		return fmt.Errorf("%w: growth factor %d below 2", ErrInvalidPolicy, p.GrowthFactor)
	case p.HighWater <= 0 || p.HighWater > 1:
		return fmt.Errorf("%w: high water %v outside (0, 1]", ErrInvalidPolicy, p.HighWater)
	case p.LowWater < 0 || p.LowWater >= p.HighWater/float64(p.GrowthFactor):
		return fmt.Errorf("%w: low water %v outside [0, %v)", ErrInvalidPolicy, p.LowWater, p.HighWater/float64(p.GrowthFactor))
	case p.Floor < 1:
		return fmt.Errorf("%w: floor %d below 1", ErrInvalidPolicy, p.Floor)
	}

	return nil
}

// ShouldGrow reports whether size elements in capacity slots reach the high water mark.
// Callers pass the size including any pending insertion.
func (p Policy) ShouldGrow(size, capacity int) bool {
	return float64(size) >= p.HighWater*float64(capacity)
}

// ShouldShrink reports whether size elements in capacity slots are at or below the
// low water mark and a shrink would not cross floor.
func (p Policy) ShouldShrink(size, capacity, floor int) bool {
	if p.GrowthFactor < 1 {
		return false
	}

	return float64(size) <= p.LowWater*float64(capacity) && capacity/p.GrowthFactor >= floor
}

// NextGrow returns the capacity to grow to.
func (p Policy) NextGrow(capacity int) int {
	return capacity * p.GrowthFactor
}

// NextShrink returns the capacity to shrink to, never below floor.
func (p Policy) NextShrink(capacity, floor int) int {
	if p.GrowthFactor < 1 {
		return max(floor, capacity)
	}

	return max(floor, capacity/p.GrowthFactor)
}
