// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"go.uber.org/zap"

	"github.com/katalvlaran/robustgeo/exact"
	"github.com/katalvlaran/robustgeo/interval"
	"github.com/katalvlaran/robustgeo/planar"
)

// Kernel evaluates filtered exact predicates over points with coordinates of
// type T. It holds no per-call state; the zero value reports into the
// process-wide counters and does not log.
type Kernel[T interval.Real] struct {
	stats         *Stats
	intervalStats *interval.Stats
	logger        *zap.Logger
}

// New returns a Kernel configured by opts applied over DefaultOptions.
func New[T interval.Real](opts ...Option) Kernel[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Kernel[T]{
		stats:         o.Stats,
		intervalStats: o.IntervalStats,
		logger:        o.Logger,
	}
}

// Orientation returns the turn direction of a, b, c: the sign of (a−c)×(b−c).
// Precondition: a ≠ b.
func (k Kernel[T]) Orientation(a, b, c planar.Point[T]) Orientation {
	checkSegment(a, b)
	s := k.sign(&k.counters().orientation, "orientation",
		orient2d[T, interval.Interval[T]], orient2d[T, *apd.Decimal],
		[]planar.Point[T]{a, b, c})
	return Orientation(s)
}

// SideOfOrientedCircle locates d relative to the circle through a, b, c.
// For a counter-clockwise triangle OnPositiveSide means strictly inside.
// Precondition: a, b, c are not collinear.
func (k Kernel[T]) SideOfOrientedCircle(a, b, c, d planar.Point[T]) OrientedSide {
	s := k.sign(&k.counters().sideOfCircle, "side-of-oriented-circle",
		incircle[T, interval.Interval[T]], incircle[T, *apd.Decimal],
		[]planar.Point[T]{a, b, c, d})
	return OrientedSide(s)
}

// PreferredDirection compares how closely segments ab and cd align with v:
// 1 if ab is closer to v than cd, 0 if equally close, −1 if farther.
// Preconditions: a ≠ b, c ≠ d, v ≠ 0.
func (k Kernel[T]) PreferredDirection(a, b, c, d planar.Point[T], v planar.Vector[T]) int {
	checkSegment(a, b)
	checkSegment(c, d)
	checkDirection(v)
	return k.sign(&k.counters().preferredDirection, "preferred-direction",
		prefdir[T, interval.Interval[T]], prefdir[T, *apd.Decimal],
		[]planar.Point[T]{a, b, c, d, planar.Pt(v.X(), v.Y())})
}

// IsStrictlyConvexQuad reports whether the counter-clockwise quadrilateral
// a, b, c, d makes a left turn at every vertex. The turns abc, bcd, cda, dab
// are tested in that order and the first non-left turn ends the test.
func (k Kernel[T]) IsStrictlyConvexQuad(a, b, c, d planar.Point[T]) bool {
	return k.Orientation(a, b, c) == LeftTurn &&
		k.Orientation(b, c, d) == LeftTurn &&
		k.Orientation(c, d, a) == LeftTurn &&
		k.Orientation(d, a, b) == LeftTurn
}

// IsLocallyDelaunayEdge reports whether the diagonal ac of the quadrilateral
// a, b, c, d satisfies the empty-circle property: d is not strictly inside the
// circle through a, b, c.
func (k Kernel[T]) IsLocallyDelaunayEdge(a, b, c, d planar.Point[T]) bool {
	return k.SideOfOrientedCircle(a, b, c, d) != OnPositiveSide
}

// IsLocallyPDDelaunayEdge is IsLocallyDelaunayEdge with a deterministic
// tie-break for cocircular quadrilaterals: the diagonal ac is kept when it is
// closer than bd to the preferred direction u, or equally close to u and
// closer to the secondary direction v.
//
// PreferredDirection runs only when d lies on the circle, once for u and a
// second time for v when u ties, so the preferred-direction counters grow by
// zero, one or two per call.
// Preconditions: u, v nonzero and neither parallel nor orthogonal.
func (k Kernel[T]) IsLocallyPDDelaunayEdge(a, b, c, d planar.Point[T], u, v planar.Vector[T]) bool {
	switch k.SideOfOrientedCircle(a, b, c, d) {
	case OnNegativeSide:
		return true
	case OnPositiveSide:
		return false
	}
	switch k.PreferredDirection(a, c, b, d, u) {
	case 1:
		return true
	case 0:
		return k.PreferredDirection(a, c, b, d, v) == 1
	default:
		return false
	}
}

// Statistics returns the counters of the block k reports into.
func (k Kernel[T]) Statistics() Statistics {
	return k.counters().Snapshot()
}

// ClearStatistics resets the block k reports into.
func (k Kernel[T]) ClearStatistics() {
	k.counters().Clear()
}

// IntervalStatistics returns the counters of the interval filter used by k.
func (k Kernel[T]) IntervalStatistics() interval.Statistics {
	return k.filter().stats.Snapshot()
}

func (k Kernel[T]) counters() *Stats {
	if k.stats != nil {
		return k.stats
	}
	return &defaultStats
}

func (k Kernel[T]) filter() filterRing[T] {
	if k.intervalStats != nil {
		return filterRing[T]{stats: k.intervalStats}
	}
	return filterRing[T]{stats: interval.DefaultStats[T]()}
}

// sign evaluates det with the interval filter and, only if the bracket
// straddles zero, again in exact arithmetic.
func (k Kernel[T]) sign(
	c *counter,
	name string,
	fast determinant[T, interval.Interval[T]],
	certified determinant[T, *apd.Decimal],
	p []planar.Point[T],
) int {
	c.total.Add(1)
	bracket := fast(k.filter(), p)
	if s, err := bracket.Sign(); err == nil {
		return s
	}

	c.exact.Add(1)
	k.logFallback(name, bracket, p)

	ev := exact.NewEvaluator()
	d := certified(exactRing[T]{ev: ev}, p)
	if err := ev.Err(); err != nil {
		// Only reachable with NaN or infinite coordinates.
		panic(fmt.Errorf("kernel: %s: %w", name, err))
	}
	return exact.Sign(d)
}

func (k Kernel[T]) logFallback(name string, bracket interval.Interval[T], p []planar.Point[T]) {
	if k.logger == nil {
		return
	}
	ce := k.logger.Check(zap.DebugLevel, "interval filter indeterminate, evaluating exactly")
	if ce == nil {
		return
	}
	pts := make([]string, len(p))
	for i, pt := range p {
		pts[i] = pt.String()
	}
	ce.Write(
		zap.String("predicate", name),
		zap.Stringer("bracket", bracket),
		zap.Strings("points", pts),
	)
}
