// SPDX-License-Identifier: MIT

// Package exact evaluates polynomial predicate expressions without rounding
// error, the certified half of a filtered geometric predicate.
//
// Numbers are github.com/cockroachdb/apd/v3 decimals. Every finite binary
// float is a dyadic rational m·2^e and therefore has a finite decimal
// expansion m·5^(−e)·10^e, so lifting is exact. The Evaluator's context has
// precision 0 (rounding disabled) and traps Inexact, so +, − and × are exact
// and any violation surfaces as an error instead of a wrong sign.
//
// Errors are sticky: the first failure is kept, later operations return zero
// and Err reports what went wrong. The only reachable failure is lifting NaN
// or ±Inf (ErrNonFinite).
package exact
