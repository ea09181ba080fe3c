// SPDX-License-Identifier: MIT

package interval

// White-box bridge: exposes the directed-rounding kernels to interval_test.
var (
	SumBounds64     = sumBounds[float64]
	SumBounds32     = sumBounds[float32]
	ProductBounds64 = productBounds[float64]
	ProductBounds32 = productBounds[float32]
	NextUp64        = nextUp[float64]
	NextUp32        = nextUp[float32]
	NextDown64      = nextDown[float64]
	NextDown32      = nextDown[float32]
)
