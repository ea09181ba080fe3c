// Package robustgeo is a small toolkit for geometric predicates that never
// lie: orientation, in-circle and direction comparisons whose answer is the
// sign of the exact real value of the input coordinates, even when
// floating-point evaluation would round it away.
//
// 🚀 What is in the box?
//
//	• interval/ – outward-rounded interval numbers over float32 / float64
//	• exact/    – exact decimal evaluation of the same expressions (apd)
//	• planar/   – Point / Vector values + adapters from r2, go-geom and WKT
//	• kernel/   – the filtered predicates and the composites built on them
//	• cmd/robustgeo – a CLI to evaluate any predicate from the shell
//
// ✨ How it works
//
//   - Fast path: evaluate the determinant with intervals. If the bracket
//     excludes zero (or is exactly [0,0]) its sign is final.
//   - Slow path: only when the bracket straddles zero, evaluate the same
//     determinant exactly. Typical inputs never get there.
//   - Counters record how often each predicate ran and how often it fell
//     back, per kernel or process-wide.
//
// Quick example:
//
//	k := kernel.New[float64]()
//	k.Orientation(planar.Pt(0.0, 0.0), planar.Pt(2.0, 2.0), planar.Pt(2.0, 0.0)) // RightTurn
//
// See examples/ for a grid triangulation that relies on the
// preferred-direction tie-break.
//
//	go get github.com/katalvlaran/robustgeo
package robustgeo
