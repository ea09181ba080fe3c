// SPDX-License-Identifier: MIT

// Package kernel implements filtered exact geometric predicates for planar
// point sets, the decisions a triangulation or mesh generator branches on.
//
// Overview:
//
//   - Every predicate is the sign of a polynomial in the input coordinates.
//   - The polynomial is first evaluated with outward-rounded intervals
//     (package interval). If the resulting bracket excludes zero, or is
//     exactly [0,0], its sign is the answer.
//   - Otherwise the same polynomial is evaluated again in exact decimal
//     arithmetic (package exact) and that sign is returned.
//   - The answer is therefore always the sign of the exact real value; the
//     interval pass only decides how much work is needed to find it.
//
// Primitive predicates:
//
//	Orientation(a, b, c)               sign of (a−c)×(b−c)
//	SideOfOrientedCircle(a, b, c, d)   in-circle determinant, positive inside
//	PreferredDirection(a, b, c, d, v)  |cd|²((b−a)·v)² − |ab|²((d−c)·v)²
//
// Composite predicates built from them:
//
//	IsStrictlyConvexQuad(a, b, c, d)
//	IsLocallyDelaunayEdge(a, b, c, d)
//	IsLocallyPDDelaunayEdge(a, b, c, d, u, v)
//
// The composite PD-Delaunay test (preferred-direction Delaunay) breaks the tie
// for four cocircular points by keeping whichever diagonal is closer to the
// direction u, then v, so that a triangulation of a regular grid is unique.
//
// Statistics:
//
// Each primitive call increments its total counter once, and its exact
// counter once more if it fell back. Composites add nothing of their own.
// Counters are atomic. A Kernel reports into the process-wide block
// (ClearStatistics, GetStatistics) unless bound to its own with WithStats;
// Measure scopes a block to a single function call.
//
// Preconditions (distinct segment endpoints, nonzero directions,
// non-collinear circle triples) are not validated. Building with
// -tags robustgeo_debug turns on checks that panic with ErrDegenerateSegment
// or ErrZeroVector. NaN or infinite coordinates make the exact pass panic.
//
// Example usage:
//
//	k := kernel.New[float64]()
//	a, b, c := planar.Pt(0.0, 0.0), planar.Pt(2.0, 2.0), planar.Pt(0.0, 2.0)
//	if k.Orientation(a, b, c) == kernel.LeftTurn {
//	    // counter-clockwise
//	}
package kernel
