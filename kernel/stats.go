// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/robustgeo/interval"

// defaultStats is shared by every Kernel not bound to its own block,
// regardless of real type.
var defaultStats Stats

// ClearStatistics resets the process-wide kernel counters.
func ClearStatistics() {
	defaultStats.Clear()
}

// GetStatistics returns the process-wide kernel counters.
func GetStatistics() Statistics {
	return defaultStats.Snapshot()
}

// Measure runs fn against a copy of k bound to fresh kernel counters and
// returns what fn's predicate calls recorded. k's own block is untouched.
func Measure[T interval.Real](k Kernel[T], fn func(Kernel[T])) Statistics {
	var st Stats
	k.stats = &st
	fn(k)
	return st.Snapshot()
}
