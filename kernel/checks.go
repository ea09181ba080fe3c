// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/katalvlaran/robustgeo/interval"
	"github.com/katalvlaran/robustgeo/planar"
)

// checkSegment panics if a and b coincide. Compiled out unless debugChecks.
func checkSegment[T interval.Real](a, b planar.Point[T]) {
	if debugChecks && a.X() == b.X() && a.Y() == b.Y() {
		panic(ErrDegenerateSegment)
	}
}

// checkDirection panics if v is zero. Compiled out unless debugChecks.
func checkDirection[T interval.Real](v planar.Vector[T]) {
	if debugChecks && v.IsZero() {
		panic(ErrZeroVector)
	}
}
