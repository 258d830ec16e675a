// SPDX-License-Identifier: MIT

package solver

import "math"

// Predicate decides after each epoch whether the run has converged enough.
// It sees the three diagnostics in order: err1, err2, err3.
type Predicate func(err1, err2, err3 float64) bool

// DefaultGap is the threshold of DefaultStop.
const DefaultGap = 0.5

// DefaultStop fires once the top-r diagonal mean clearly dominates the rest:
// |err1| - |err2| > 0.5 (strict). err3 is ignored.
func DefaultStop(err1, err2, _ float64) bool {
	return math.Abs(err1)-math.Abs(err2) > DefaultGap
}

// NeverStop always runs the full epoch budget.
func NeverStop(_, _, _ float64) bool { return false }

// GapAbove generalises DefaultStop to an arbitrary threshold:
// |err1| - |err2| > threshold.
func GapAbove(threshold float64) Predicate {
	return func(err1, err2, _ float64) bool {
		return math.Abs(err1)-math.Abs(err2) > threshold
	}
}

// AnyOf fires when at least one of ps fires. Nil entries are skipped;
// an empty list never fires.
func AnyOf(ps ...Predicate) Predicate {
	return func(err1, err2, err3 float64) bool {
		for _, p := range ps {
			if p != nil && p(err1, err2, err3) {
				return true
			}
		}
		return false
	}
}
