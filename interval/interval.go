// SPDX-License-Identifier: MIT

package interval

import (
	"math"
	"strconv"
)

// New returns the singleton interval [v,v].
func New[T Real](v T) Interval[T] {
	return Interval[T]{lower: v, upper: v}
}

// NewRange returns the interval [lower,upper].
// Precondition: lower ≤ upper. It is not checked; a reversed bracket makes
// every later result meaningless.
func NewRange[T Real](lower, upper T) Interval[T] {
	return Interval[T]{lower: lower, upper: upper}
}

// WithStats returns a copy of x that reports into s. Results of arithmetic
// on the copy keep reporting into s.
func (x Interval[T]) WithStats(s *Stats) Interval[T] {
	x.stats = s
	return x
}

// Stats returns the statistics block x reports into.
func (x Interval[T]) Stats() *Stats {
	if x.stats != nil {
		return x.stats
	}
	return DefaultStats[T]()
}

// Lower returns the lower bound.
func (x Interval[T]) Lower() T { return x.lower }

// Upper returns the upper bound.
func (x Interval[T]) Upper() T { return x.upper }

// IsSingleton reports whether the interval holds exactly one value.
func (x Interval[T]) IsSingleton() bool { return x.lower == x.upper }

// Add sets x to x + y and returns x.
func (x *Interval[T]) Add(y Interval[T]) *Interval[T] {
	lo, _ := sumBounds(x.lower, y.lower)
	_, hi := sumBounds(x.upper, y.upper)
	x.lower, x.upper = lo, hi
	x.Stats().recordArithmetic()
	return x
}

// Sub sets x to x − y and returns x.
func (x *Interval[T]) Sub(y Interval[T]) *Interval[T] {
	lo, _ := sumBounds(x.lower, -y.upper)
	_, hi := sumBounds(x.upper, -y.lower)
	x.lower, x.upper = lo, hi
	x.Stats().recordArithmetic()
	return x
}

// Mul sets x to x × y and returns x.
//
// The signs of the factors are not known in advance, so the bracket is the
// hull of all four corner products; the operation still counts once.
func (x *Interval[T]) Mul(y Interval[T]) *Interval[T] {
	lo, hi := productBounds(x.lower, y.lower)
	corners := [3][2]T{
		{x.lower, y.upper},
		{x.upper, y.lower},
		{x.upper, y.upper},
	}
	for _, c := range corners {
		l, h := productBounds(c[0], c[1])
		lo = min(lo, l)
		hi = max(hi, h)
	}
	x.lower, x.upper = lo, hi
	x.Stats().recordArithmetic()
	return x
}

// Add returns x + y.
func Add[T Real](x, y Interval[T]) Interval[T] {
	z := x
	z.Add(y)
	return z
}

// Sub returns x − y.
func Sub[T Real](x, y Interval[T]) Interval[T] {
	z := x
	z.Sub(y)
	return z
}

// Mul returns x × y.
func Mul[T Real](x, y Interval[T]) Interval[T] {
	z := x
	z.Mul(y)
	return z
}

// Sign returns −1 if the interval lies strictly below zero, +1 if strictly
// above, and 0 for the exact singleton [0,0]. Any other bracket is
// indeterminate: the indeterminate counter is bumped and ErrIndeterminate
// is returned.
func (x Interval[T]) Sign() (int, error) {
	switch {
	case x.upper < 0:
		return -1, nil
	case x.lower > 0:
		return 1, nil
	case x.lower == 0 && x.upper == 0:
		return 0, nil
	}
	x.Stats().RecordIndeterminate()
	return 0, ErrIndeterminate
}

// Less compares corresponding bounds: true when both bounds of x are below
// those of y, false when neither is, ErrIndeterminate otherwise (counted in
// the statistics of x). Less never touches the arithmetic counter.
func Less[T Real](x, y Interval[T]) (bool, error) {
	switch {
	case x.lower < y.lower && x.upper < y.upper:
		return true, nil
	case x.lower >= y.lower && x.upper >= y.upper:
		return false, nil
	}
	x.Stats().RecordIndeterminate()
	return false, ErrIndeterminate
}

// Move returns the value of x and resets x to [0,0]. The statistics binding
// of x is kept.
func (x *Interval[T]) Move() Interval[T] {
	v := *x
	x.lower, x.upper = 0, 0
	return v
}

// String formats the interval as "[lower,upper]" using six significant
// digits in %g style.
func (x Interval[T]) String() string {
	return "[" + formatReal(x.lower) + "," + formatReal(x.upper) + "]"
}

func formatReal[T Real](v T) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	bits := 64
	if isSingle[T]() {
		bits = 32
	}
	return strconv.FormatFloat(f, 'g', 6, bits)
}
