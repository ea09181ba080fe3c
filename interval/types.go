// SPDX-License-Identifier: MIT

package interval

import (
	"errors"
	"sync/atomic"

	"golang.org/x/exp/constraints"
)

// ErrIndeterminate indicates that a sign or ordering query cannot be certified
// because the interval straddles zero (or the two brackets overlap).
var ErrIndeterminate = errors.New("interval: indeterminate result")

// Real is the set of floating-point types an Interval can be built over.
type Real interface {
	constraints.Float
}

// Interval is a closed bracket [lower, upper] outward-bounding an unknown real.
//
// The zero value is the singleton [0,0] reporting into the process-wide
// statistics of T. Intervals are values: assignment copies the bounds and the
// statistics binding.
type Interval[T Real] struct {
	lower T
	upper T
	stats *Stats // nil ⇒ DefaultStats[T]()
}

// Statistics is a point-in-time copy of a Stats block.
type Statistics struct {
	// IndeterminateResultCount is the number of Sign/Less queries that could
	// not be certified.
	IndeterminateResultCount uint64
	// ArithmeticOpCount is the number of Add/Sub/Mul operations performed.
	ArithmeticOpCount uint64
}

// Stats is a live block of interval counters. The zero value is ready to use.
// A Stats must not be copied after first use.
type Stats struct {
	indeterminate atomic.Uint64
	arithmetic    atomic.Uint64
}

// Clear resets both counters to zero.
func (s *Stats) Clear() {
	s.indeterminate.Store(0)
	s.arithmetic.Store(0)
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() Statistics {
	return Statistics{
		IndeterminateResultCount: s.indeterminate.Load(),
		ArithmeticOpCount:        s.arithmetic.Load(),
	}
}

// RecordIndeterminate counts one indeterminate query. It is the single entry
// point through which comparisons outside this package may report one.
func (s *Stats) RecordIndeterminate() {
	s.indeterminate.Add(1)
}

func (s *Stats) recordArithmetic() {
	s.arithmetic.Add(1)
}

// Process-wide blocks, one per floating-point width.
var (
	singleStats Stats
	doubleStats Stats
)

// DefaultStats returns the process-wide statistics block shared by every
// Interval[T] that has not been bound to its own block.
func DefaultStats[T Real]() *Stats {
	if isSingle[T]() {
		return &singleStats
	}
	return &doubleStats
}

// ClearStatistics resets the process-wide statistics of T.
func ClearStatistics[T Real]() {
	DefaultStats[T]().Clear()
}

// GetStatistics returns the process-wide statistics of T.
func GetStatistics[T Real]() Statistics {
	return DefaultStats[T]().Snapshot()
}
