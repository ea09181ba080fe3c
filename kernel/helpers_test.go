// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/robustgeo/interval"
	"github.com/katalvlaran/robustgeo/kernel"
	"github.com/katalvlaran/robustgeo/planar"
)

// eachWidth runs fn once per supported floating-point width.
func eachWidth(t *testing.T, f32, f64 func(t *testing.T)) {
	t.Run("float32", f32)
	t.Run("float64", f64)
}

// fixture is a kernel bound to private counters.
type fixture[T interval.Real] struct {
	k  kernel.Kernel[T]
	st *kernel.Stats
	iv *interval.Stats
}

func newFixture[T interval.Real]() fixture[T] {
	f := fixture[T]{st: new(kernel.Stats), iv: new(interval.Stats)}
	f.k = kernel.New[T](kernel.WithStats(f.st), kernel.WithIntervalStats(f.iv))
	return f
}

func pt[T interval.Real](x, y T) planar.Point[T] { return planar.Pt(x, y) }

// up returns the next representable value above x.
func up[T interval.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math.Nextafter32(v, float32(math.Inf(1))))
	case float64:
		return T(math.Nextafter(v, math.Inf(1)))
	}
	panic("unsupported width")
}

// down returns the next representable value below x.
func down[T interval.Real](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math.Nextafter32(v, float32(math.Inf(-1))))
	case float64:
		return T(math.Nextafter(v, math.Inf(-1)))
	}
	panic("unsupported width")
}
