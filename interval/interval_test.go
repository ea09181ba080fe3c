// SPDX-License-Identifier: MIT

package interval_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/robustgeo/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eachWidth runs fn once per supported floating-point width.
func eachWidth(t *testing.T, f32, f64 func(t *testing.T)) {
	t.Run("float32", f32)
	t.Run("float64", f64)
}

// TestInterval_ZeroValue verifies the zero value is the singleton [0,0].
func TestInterval_ZeroValue(t *testing.T) {
	eachWidth(t, testZeroValue[float32], testZeroValue[float64])
}

func testZeroValue[T interval.Real](t *testing.T) {
	var x interval.Interval[T]
	assert.Equal(t, T(0), x.Lower())
	assert.Equal(t, T(0), x.Upper())
	assert.True(t, x.IsSingleton())
	assert.Same(t, interval.DefaultStats[T](), x.Stats(), "unbound interval reports process-wide")

	y := interval.New(T(3))
	assert.Equal(t, T(3), y.Lower())
	assert.Equal(t, T(3), y.Upper())
	assert.True(t, y.IsSingleton())
}

// TestInterval_NewRange verifies the two-argument constructor.
func TestInterval_NewRange(t *testing.T) {
	eachWidth(t, testNewRange[float32], testNewRange[float64])
}

func testNewRange[T interval.Real](t *testing.T) {
	x := interval.NewRange(T(3), T(6))
	assert.Equal(t, T(3), x.Lower())
	assert.Equal(t, T(6), x.Upper())
	assert.False(t, x.IsSingleton())
}

// TestInterval_CopyAndMove verifies copies are independent and Move resets
// the source.
func TestInterval_CopyAndMove(t *testing.T) {
	var st interval.Stats
	x := interval.NewRange(-1.5, 2.5).WithStats(&st)

	c := x
	c.Add(interval.New(1.0))
	assert.Equal(t, -1.5, x.Lower(), "copy must not alias the source")
	assert.Equal(t, -0.5, c.Lower())

	m := x.Move()
	assert.Equal(t, -1.5, m.Lower())
	assert.Equal(t, 2.5, m.Upper())
	assert.Equal(t, 0.0, x.Lower())
	assert.Equal(t, 0.0, x.Upper())
	assert.Same(t, &st, x.Stats(), "move keeps the statistics binding")
	assert.Same(t, &st, m.Stats())
}

// TestInterval_Add checks [3,6] + [3,6] = [6,12] and the op counter.
func TestInterval_Add(t *testing.T) {
	eachWidth(t, testAdd[float32], testAdd[float64])
}

func testAdd[T interval.Real](t *testing.T) {
	var st interval.Stats
	x := interval.NewRange(T(3), T(6)).WithStats(&st)
	got := x.Add(interval.NewRange(T(3), T(6)))

	assert.Same(t, &x, got, "Add returns its receiver")
	assert.Equal(t, T(6), x.Lower())
	assert.Equal(t, T(12), x.Upper())
	assert.Equal(t, interval.Statistics{ArithmeticOpCount: 1}, st.Snapshot())
}

// TestInterval_Sub checks [3,6] − [3,6] = [−3,3].
func TestInterval_Sub(t *testing.T) {
	eachWidth(t, testSub[float32], testSub[float64])
}

func testSub[T interval.Real](t *testing.T) {
	var st interval.Stats
	x := interval.NewRange(T(3), T(6)).WithStats(&st)
	x.Sub(interval.NewRange(T(3), T(6)))

	assert.Equal(t, T(-3), x.Lower())
	assert.Equal(t, T(3), x.Upper())
	assert.Equal(t, uint64(1), st.Snapshot().ArithmeticOpCount)
}

// TestInterval_Mul checks positive and mixed-sign corner selection.
func TestInterval_Mul(t *testing.T) {
	eachWidth(t, testMul[float32], testMul[float64])
}

func testMul[T interval.Real](t *testing.T) {
	var st interval.Stats
	x := interval.NewRange(T(3), T(6)).WithStats(&st)
	x.Mul(interval.NewRange(T(3), T(6)))
	assert.Equal(t, T(9), x.Lower())
	assert.Equal(t, T(36), x.Upper())

	// Corners: 10, −8, −15, 12.
	y := interval.Mul(interval.NewRange(T(-2), T(3)).WithStats(&st), interval.NewRange(T(-5), T(4)))
	assert.Equal(t, T(-15), y.Lower())
	assert.Equal(t, T(12), y.Upper())

	assert.Equal(t, uint64(2), st.Snapshot().ArithmeticOpCount, "one count per Mul, not per corner")
}

// TestInterval_PureOperators verifies Add/Sub/Mul functions leave operands intact.
func TestInterval_PureOperators(t *testing.T) {
	var st interval.Stats
	x := interval.New(2.0).WithStats(&st)
	y := interval.New(5.0)

	assert.Equal(t, 7.0, interval.Add(x, y).Lower())
	assert.Equal(t, -3.0, interval.Sub(x, y).Upper())
	assert.Equal(t, 10.0, interval.Mul(x, y).Lower())
	assert.Equal(t, 2.0, x.Lower())
	assert.Equal(t, 5.0, y.Lower())
	assert.Equal(t, uint64(3), st.Snapshot().ArithmeticOpCount)
	assert.Same(t, &st, interval.Add(x, y).Stats(), "results inherit the left operand's binding")
}

// TestInterval_Soundness checks that every corner of the operand boxes maps
// inside the computed bracket.
func TestInterval_Soundness(t *testing.T) {
	eachWidth(t,
		func(t *testing.T) { testSoundness(t, rand.New(rand.NewSource(8)), randomFloat32) },
		func(t *testing.T) { testSoundness(t, rand.New(rand.NewSource(7)), randomFloat) },
	)
}

func testSoundness[T interval.Real](t *testing.T, rnd *rand.Rand, draw func(*rand.Rand) T) {
	type op struct {
		name  string
		apply func(x, y interval.Interval[T]) interval.Interval[T]
		exact func(a, b *big.Rat) *big.Rat
	}
	ops := []op{
		{"add", interval.Add[T], func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }},
		{"sub", interval.Sub[T], func(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }},
		{"mul", interval.Mul[T], func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }},
	}
	for _, o := range ops {
		t.Run(o.name, func(t *testing.T) {
			var st interval.Stats
			for i := 0; i < 500; i++ {
				x := randomInterval(rnd, draw).WithStats(&st)
				y := randomInterval(rnd, draw)
				z := o.apply(x, y)
				require.LessOrEqual(t, z.Lower(), z.Upper())
				for _, a := range []T{x.Lower(), x.Upper()} {
					for _, b := range []T{y.Lower(), y.Upper()} {
						v := o.exact(rat(float64(a)), rat(float64(b)))
						require.LessOrEqual(t, rat(float64(z.Lower())).Cmp(v), 0, "%v %s %v escapes %v", x, o.name, y, z)
						require.GreaterOrEqual(t, rat(float64(z.Upper())).Cmp(v), 0, "%v %s %v escapes %v", x, o.name, y, z)
					}
				}
			}
			assert.Equal(t, uint64(500), st.Snapshot().ArithmeticOpCount)
		})
	}
}

func randomInterval[T interval.Real](rnd *rand.Rand, draw func(*rand.Rand) T) interval.Interval[T] {
	a, b := draw(rnd), draw(rnd)
	if a > b {
		a, b = b, a
	}
	return interval.NewRange(a, b)
}

// TestInterval_Sign covers the three certified outcomes and the
// indeterminate case.
func TestInterval_Sign(t *testing.T) {
	eachWidth(t, testSign[float32], testSign[float64])
}

func testSign[T interval.Real](t *testing.T) {
	var st interval.Stats
	cases := []struct {
		lo, hi T
		want   int
	}{
		{-6, -3, -1},
		{3, 6, 1},
		{0, 0, 0},
		{-1, -0.5, -1},
		{1e-30, 1e-29, 1},
	}
	for _, c := range cases {
		s, err := interval.NewRange(c.lo, c.hi).WithStats(&st).Sign()
		require.NoError(t, err, "[%v,%v]", c.lo, c.hi)
		assert.Equal(t, c.want, s, "[%v,%v]", c.lo, c.hi)
	}
	assert.Equal(t, uint64(0), st.Snapshot().IndeterminateResultCount)

	for i, c := range [][2]T{{-1, 1}, {0, 1}, {-1, 0}} {
		_, err := interval.NewRange(c[0], c[1]).WithStats(&st).Sign()
		assert.ErrorIs(t, err, interval.ErrIndeterminate)
		assert.Equal(t, uint64(i+1), st.Snapshot().IndeterminateResultCount)
	}
	assert.Equal(t, uint64(0), st.Snapshot().ArithmeticOpCount, "Sign is not arithmetic")
}

// TestInterval_Less verifies bracket ordering.
func TestInterval_Less(t *testing.T) {
	var st interval.Stats
	x := interval.NewRange(1.0, 2.0).WithStats(&st)

	less, err := interval.Less(x, interval.NewRange(1.5, 3.0))
	require.NoError(t, err)
	assert.True(t, less)

	less, err = interval.Less(x, interval.NewRange(0.0, 2.0))
	require.NoError(t, err)
	assert.False(t, less)

	less, err = interval.Less(x, x)
	require.NoError(t, err)
	assert.False(t, less, "an interval is not less than itself")

	_, err = interval.Less(x, interval.NewRange(0.5, 5.0))
	assert.ErrorIs(t, err, interval.ErrIndeterminate)
	assert.Equal(t, interval.Statistics{IndeterminateResultCount: 1}, st.Snapshot())
}

// TestInterval_CounterExactness performs N mixed operations after a clear.
func TestInterval_CounterExactness(t *testing.T) {
	const n = 97
	var st interval.Stats
	st.Clear()
	x := interval.New(1.0).WithStats(&st)
	y := interval.New(1.0000001)
	for i := 0; i < n; i++ {
		switch i % 3 {
		case 0:
			x.Add(y)
		case 1:
			x.Sub(y)
		default:
			x.Mul(y)
		}
	}
	assert.Equal(t, uint64(n), st.Snapshot().ArithmeticOpCount)
}

// TestInterval_DefaultStats verifies the process-wide blocks are per width
// and that clearing is idempotent.
func TestInterval_DefaultStats(t *testing.T) {
	assert.NotSame(t, interval.DefaultStats[float32](), interval.DefaultStats[float64]())

	interval.ClearStatistics[float32]()
	x := interval.New(float32(1))
	x.Add(interval.New(float32(2)))
	_, _ = interval.NewRange(float32(-1), float32(1)).Sign()
	assert.Equal(t, interval.Statistics{IndeterminateResultCount: 1, ArithmeticOpCount: 1},
		interval.GetStatistics[float32]())

	interval.ClearStatistics[float32]()
	interval.ClearStatistics[float32]()
	assert.Equal(t, interval.Statistics{}, interval.GetStatistics[float32]())
}

// TestInterval_RecordIndeterminate exercises the explicit mutation entry point.
func TestInterval_RecordIndeterminate(t *testing.T) {
	var st interval.Stats
	st.RecordIndeterminate()
	st.RecordIndeterminate()
	assert.Equal(t, uint64(2), st.Snapshot().IndeterminateResultCount)
	st.Clear()
	assert.Equal(t, interval.Statistics{}, st.Snapshot())
}

// TestInterval_String verifies the "[lower,upper]" text form.
func TestInterval_String(t *testing.T) {
	assert.Equal(t, "[0,0]", interval.Interval[float64]{}.String())
	assert.Equal(t, "[3,6]", interval.NewRange(3.0, 6.0).String())
	assert.Equal(t, "[-0.5,1.25]", interval.NewRange(-0.5, 1.25).String())
	assert.Equal(t, "[1e-19,1.23457e+06]", interval.NewRange(1e-19, 1234567.0).String())
	assert.Equal(t, "[0.1,0.1]", interval.New(float32(0.1)).String())
	assert.Equal(t, "[-inf,inf]", interval.NewRange(math.Inf(-1), math.Inf(1)).String())
}
