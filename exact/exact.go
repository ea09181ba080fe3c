// SPDX-License-Identifier: MIT

package exact

import (
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

// ErrNonFinite indicates that NaN or ±Inf was lifted into exact arithmetic.
var ErrNonFinite = errors.New("exact: value is NaN or infinite")

// Evaluator performs exact +, −, × on decimals lifted from binary floats.
// An Evaluator is cheap to create and is not safe for concurrent use.
type Evaluator struct {
	ctx apd.Context
	err error
}

// NewEvaluator returns an Evaluator with rounding disabled and the Inexact
// condition trapped.
func NewEvaluator() *Evaluator {
	ctx := apd.BaseContext
	ctx.Traps |= apd.Inexact
	return &Evaluator{ctx: ctx}
}

// Err returns the first error encountered, if any.
func (e *Evaluator) Err() error {
	return e.err
}

// Float returns the exact decimal value of f.
//
// apd.Decimal.SetFloat64 is not used: it parses the shortest round-trip
// representation of f, which differs from its binary value (0.1 becomes 1E-1).
func (e *Evaluator) Float(f float64) *apd.Decimal {
	d := new(apd.Decimal)
	if e.err != nil {
		return d
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		e.err = errors.Wrapf(ErrNonFinite, "lift %v", f)
		return d
	}
	if f == 0 {
		return d
	}

	frac, exp := math.Frexp(f)
	mant := int64(frac * (1 << 53))
	exp -= 53
	for mant%2 == 0 {
		mant /= 2
		exp++
	}

	coeff := apd.NewBigInt(mant)
	if exp >= 0 {
		coeff.Lsh(coeff, uint(exp))
		return d.Set(apd.NewWithBigInt(coeff, 0))
	}
	// m·2^exp = m·5^(−exp)·10^exp
	pow := new(apd.BigInt).Exp(apd.NewBigInt(5), apd.NewBigInt(int64(-exp)), nil)
	coeff.Mul(coeff, pow)
	return d.Set(apd.NewWithBigInt(coeff, int32(exp)))
}

// Add returns x + y.
func (e *Evaluator) Add(x, y *apd.Decimal) *apd.Decimal {
	return e.apply("add", e.ctx.Add, x, y)
}

// Sub returns x − y.
func (e *Evaluator) Sub(x, y *apd.Decimal) *apd.Decimal {
	return e.apply("sub", e.ctx.Sub, x, y)
}

// Mul returns x × y.
func (e *Evaluator) Mul(x, y *apd.Decimal) *apd.Decimal {
	return e.apply("mul", e.ctx.Mul, x, y)
}

// Sign returns −1, 0 or +1.
func Sign(d *apd.Decimal) int {
	return d.Sign()
}

// Cmp returns −1, 0 or +1 as x is less than, equal to, or greater than y.
func Cmp(x, y *apd.Decimal) int {
	return x.Cmp(y)
}

func (e *Evaluator) apply(
	name string,
	op func(d, x, y *apd.Decimal) (apd.Condition, error),
	x, y *apd.Decimal,
) *apd.Decimal {
	d := new(apd.Decimal)
	if e.err != nil {
		return d
	}
	if _, err := op(d, x, y); err != nil {
		e.err = errors.Wrapf(err, "exact: %s", name)
	}
	return d
}
