// SPDX-License-Identifier: MIT

package kernel

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/robustgeo/exact"
	"github.com/katalvlaran/robustgeo/interval"
	"github.com/katalvlaran/robustgeo/planar"
)

// ring is the arithmetic a determinant is evaluated in. Each determinant is
// written once against ring and instantiated for the interval filter and for
// the exact fallback, so both tiers compute the same expression.
type ring[T interval.Real, N any] interface {
	lift(v T) N
	add(x, y N) N
	sub(x, y N) N
	mul(x, y N) N
}

// determinant evaluates a polynomial over the coordinates of p.
type determinant[T interval.Real, N any] func(r ring[T, N], p []planar.Point[T]) N

// filterRing evaluates with outward-rounded intervals.
type filterRing[T interval.Real] struct {
	stats *interval.Stats
}

func (r filterRing[T]) lift(v T) interval.Interval[T] {
	return interval.New(v).WithStats(r.stats)
}

func (filterRing[T]) add(x, y interval.Interval[T]) interval.Interval[T] { return interval.Add(x, y) }
func (filterRing[T]) sub(x, y interval.Interval[T]) interval.Interval[T] { return interval.Sub(x, y) }
func (filterRing[T]) mul(x, y interval.Interval[T]) interval.Interval[T] { return interval.Mul(x, y) }

// exactRing evaluates without rounding.
type exactRing[T interval.Real] struct {
	ev *exact.Evaluator
}

func (r exactRing[T]) lift(v T) *apd.Decimal { return r.ev.Float(float64(v)) }
func (r exactRing[T]) add(x, y *apd.Decimal) *apd.Decimal { return r.ev.Add(x, y) }
func (r exactRing[T]) sub(x, y *apd.Decimal) *apd.Decimal { return r.ev.Sub(x, y) }
func (r exactRing[T]) mul(x, y *apd.Decimal) *apd.Decimal { return r.ev.Mul(x, y) }

// orient2d is (a−c)×(b−c) for p = a, b, c.
func orient2d[T interval.Real, N any](r ring[T, N], p []planar.Point[T]) N {
	a, b, c := p[0], p[1], p[2]
	cx, cy := r.lift(c.X()), r.lift(c.Y())
	acx, acy := r.sub(r.lift(a.X()), cx), r.sub(r.lift(a.Y()), cy)
	bcx, bcy := r.sub(r.lift(b.X()), cx), r.sub(r.lift(b.Y()), cy)
	return r.sub(r.mul(acx, bcy), r.mul(bcx, acy))
}

// incircle is the lifted 3×3 in-circle determinant translated to d, for
// p = a, b, c, d. It is positive when d is strictly inside the circle through
// the counter-clockwise triangle a, b, c.
func incircle[T interval.Real, N any](r ring[T, N], p []planar.Point[T]) N {
	a, b, c, d := p[0], p[1], p[2], p[3]
	dx, dy := r.lift(d.X()), r.lift(d.Y())
	adx, ady := r.sub(r.lift(a.X()), dx), r.sub(r.lift(a.Y()), dy)
	bdx, bdy := r.sub(r.lift(b.X()), dx), r.sub(r.lift(b.Y()), dy)
	cdx, cdy := r.sub(r.lift(c.X()), dx), r.sub(r.lift(c.Y()), dy)

	ad := r.add(r.mul(adx, adx), r.mul(ady, ady))
	bd := r.add(r.mul(bdx, bdx), r.mul(bdy, bdy))
	cd := r.add(r.mul(cdx, cdx), r.mul(cdy, cdy))

	m1 := r.mul(adx, r.sub(r.mul(bdy, cd), r.mul(bd, cdy)))
	m2 := r.mul(ady, r.sub(r.mul(bdx, cd), r.mul(bd, cdx)))
	m3 := r.mul(ad, r.sub(r.mul(bdx, cdy), r.mul(bdy, cdx)))
	return r.add(r.sub(m1, m2), m3)
}

// prefdir is |cd|²·((b−a)·v)² − |ab|²·((d−c)·v)² for p = a, b, c, d, v, with
// the direction v carried as a point.
func prefdir[T interval.Real, N any](r ring[T, N], p []planar.Point[T]) N {
	a, b, c, d, v := p[0], p[1], p[2], p[3], p[4]
	vx, vy := r.lift(v.X()), r.lift(v.Y())
	abx, aby := r.sub(r.lift(b.X()), r.lift(a.X())), r.sub(r.lift(b.Y()), r.lift(a.Y()))
	cdx, cdy := r.sub(r.lift(d.X()), r.lift(c.X())), r.sub(r.lift(d.Y()), r.lift(c.Y()))

	abv := r.add(r.mul(abx, vx), r.mul(aby, vy))
	cdv := r.add(r.mul(cdx, vx), r.mul(cdy, vy))
	ab2 := r.add(r.mul(abx, abx), r.mul(aby, aby))
	cd2 := r.add(r.mul(cdx, cdx), r.mul(cdy, cdy))
	return r.sub(r.mul(cd2, r.mul(abv, abv)), r.mul(ab2, r.mul(cdv, cdv)))
}
