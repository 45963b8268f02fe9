// Package match selects the nearest legal reference time for a
// measured duration and decides whether it is close enough to count.
package match

import (
	"math"

	"github.com/bimmerbailey/timegate/internal/clock"
)

// DefaultTolerance is the conventional maximum deviation, in seconds,
// used when no configuration supplies a tighter one.
const DefaultTolerance = 0.6

// Result describes the outcome of evaluating one measured duration.
type Result struct {
	Input   float64 `json:"input_seconds"`
	Legal   float64 `json:"legal_time,omitempty"`
	Display string  `json:"display,omitempty"`
	Matched bool    `json:"matched"`
}

// Closest scans legal for the value with the smallest absolute
// difference from input. Ties keep the earliest element. The second
// return is false when legal is empty or the smallest difference
// exceeds tolerance (inclusive boundary: a delta equal to tolerance
// still matches).
func Closest(input float64, legal []float64, tolerance float64) (float64, bool) {
	var closest float64
	smallest := math.Inf(1)
	found := false

	for _, l := range legal {
		delta := math.Abs(input - l)
		if delta < smallest {
			smallest = delta
			closest = l
			found = true
		}
	}

	if !found || smallest > tolerance {
		return 0, false
	}
	return closest, true
}

// Evaluate runs Closest and packages the outcome for display. The
// legal value's hh:mm:ss rendering truncates toward zero.
func Evaluate(input float64, legal []float64, tolerance float64) Result {
	value, ok := Closest(input, legal, tolerance)
	if !ok {
		return Result{Input: input}
	}
	return Result{
		Input:   input,
		Legal:   value,
		Display: clock.FormatHMS(int(value)),
		Matched: true,
	}
}
