// SPDX-License-Identifier: MIT

//go:build robustgeo_debug

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/robustgeo/kernel"
	"github.com/katalvlaran/robustgeo/planar"
)

// TestPreconditionChecks runs only with -tags robustgeo_debug.
func TestPreconditionChecks(t *testing.T) {
	k := kernel.New[float64](kernel.WithStats(new(kernel.Stats)))
	p, q := planar.Pt(1.0, 1.0), planar.Pt(2.0, 3.0)

	assert.PanicsWithValue(t, kernel.ErrDegenerateSegment, func() { k.Orientation(p, p, q) })
	assert.PanicsWithValue(t, kernel.ErrDegenerateSegment, func() {
		k.PreferredDirection(p, q, q, q, planar.Vec(1.0, 0.0))
	})
	assert.PanicsWithValue(t, kernel.ErrZeroVector, func() {
		k.PreferredDirection(p, q, q, p, planar.Vec(0.0, 0.0))
	})
	assert.NotPanics(t, func() { k.PreferredDirection(p, q, q, p, planar.Vec(1.0, 0.0)) })
}
