// SPDX-License-Identifier: MIT

// Package interval provides an outward-rounded interval number over binary
// floating-point types, the fast half of a filtered geometric predicate.
//
// Overview:
//
//   - An Interval[T] is a closed bracket [lower, upper] that is guaranteed to
//     contain the true real result of any sequence of +, −, × applied to the
//     inputs it was built from.
//   - Every bound is rounded in the safe direction: lower bounds toward −∞,
//     upper bounds toward +∞. The result is the same bracket that hardware
//     directed rounding (fesetround) would produce, without touching any
//     process-wide floating-point state.
//   - Sign reports a certified sign or ErrIndeterminate when the bracket
//     straddles zero. That decision point is the filter: callers re-evaluate
//     the same expression exactly only when Sign refuses to answer.
//
// Directed rounding:
//
//	Go gives no access to the FPU rounding mode, so each directed bound is
//	computed in round-to-nearest and then corrected with an error-free
//	transformation:
//	  • + and −: Knuth's TwoSum yields the exact residual (a+b) − fl(a+b).
//	  • ×, float64: math.FMA(a, b, −p) yields the exact residual a·b − p.
//	  • ×, float32: the float64 product of two float32 values is exact.
//	A positive residual means the rounded value sits below the true value, so
//	the upper bound steps one ulp up (and vice versa). When the residual cannot
//	be trusted (overflow, NaN, products deep in the subnormal range) both bounds
//	step outward, which stays sound.
//
// Statistics:
//
//   - Each Add/Sub/Mul increments ArithmeticOpCount by exactly one.
//   - Each indeterminate Sign or Less increments IndeterminateResultCount by one.
//   - By default an Interval reports into the process-wide block for its width
//     (DefaultStats[float32] / DefaultStats[float64]). WithStats binds an
//     Interval, and everything computed from it, to a caller-owned *Stats.
//   - Counters are atomic; sharing one block between goroutines is safe, but
//     the counts then interleave.
//
// Error handling (sentinel errors):
//
//   - ErrIndeterminate:
//     Returned by Sign and Less when the bracket cannot certify an answer.
//     It is a control-flow signal, not a failure: fall back to exact arithmetic.
//
// Example:
//
//	x := interval.New(0.1)
//	x.Add(interval.New(0.2))
//	fmt.Println(x) // [0.3,0.3] – bounds differ by one ulp
//	if s, err := x.Sign(); err == nil {
//	    fmt.Println("sign:", s)
//	}
package interval
