// SPDX-License-Identifier: MIT

package interval

import (
	"math"
	"unsafe"
)

// minTrustedProduct is the magnitude below which an FMA residual of zero may
// hide an inexact float64 product (the true residual can underflow to zero).
const minTrustedProduct = 0x1p-969

var (
	posInf32 = float32(math.Inf(1))
	negInf32 = float32(math.Inf(-1))
)

// isSingle reports whether T has float32 width.
func isSingle[T Real]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// nextUp returns the smallest T greater than x (x itself for +Inf and NaN).
func nextUp[T Real](x T) T {
	if isSingle[T]() {
		return T(math.Nextafter32(float32(x), posInf32))
	}
	return T(math.Nextafter(float64(x), math.Inf(1)))
}

// nextDown returns the largest T less than x (x itself for −Inf and NaN).
func nextDown[T Real](x T) T {
	if isSingle[T]() {
		return T(math.Nextafter32(float32(x), negInf32))
	}
	return T(math.Nextafter(float64(x), math.Inf(-1)))
}

func isFinite[T Real](x T) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// widen brackets a rounded value whose error direction is unknown.
func widen[T Real](r T) (lo, hi T) {
	return nextDown(r), nextUp(r)
}

// settle turns a rounded value r and the sign of (exact − r) into the pair
// (r rounded toward −∞, r rounded toward +∞).
func settle[T Real](r T, residual int) (lo, hi T) {
	switch {
	case residual > 0:
		return r, nextUp(r)
	case residual < 0:
		return nextDown(r), r
	default:
		return r, r
	}
}

func signOf[T Real](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// sumBounds returns a+b rounded toward −∞ and toward +∞.
//
// TwoSum recovers the exact rounding error of s = fl(a+b) in any binary
// format under round-to-nearest, subnormals included.
func sumBounds[T Real](a, b T) (lo, hi T) {
	s := T(a + b)
	if !isFinite(s) {
		return widen(s)
	}
	bv := T(s - a)
	av := T(s - bv)
	e := T(T(a-av) + T(b-bv))
	if !isFinite(e) {
		return widen(s)
	}
	return settle(s, signOf(e))
}

// productBounds returns a·b rounded toward −∞ and toward +∞.
func productBounds[T Real](a, b T) (lo, hi T) {
	p := T(a * b)
	if !isFinite(p) {
		return widen(p)
	}
	if isSingle[T]() {
		// 24×24 significand bits fit in float64, so this product is exact.
		exact := float64(a) * float64(b)
		switch {
		case exact > float64(p):
			return settle(p, 1)
		case exact < float64(p):
			return settle(p, -1)
		case exact == float64(p):
			return p, p
		}
		return widen(p)
	}
	e := math.FMA(float64(a), float64(b), -float64(p))
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return widen(p)
	}
	if e == 0 && a != 0 && b != 0 && math.Abs(float64(p)) < minTrustedProduct {
		return widen(p)
	}
	return settle(p, signOf(e))
}
