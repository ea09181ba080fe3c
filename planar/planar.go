// SPDX-License-Identifier: MIT

package planar

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/katalvlaran/robustgeo/interval"
)

var (
	// ErrUnsupportedGeometry is returned by FromWKT for geometry kinds it
	// cannot flatten into a vertex list.
	ErrUnsupportedGeometry = errors.New("planar: unsupported geometry")

	// ErrEmptyGeometry is returned by FromWKT for EMPTY geometries.
	ErrEmptyGeometry = errors.New("planar: empty geometry")
)

// Point is a position in the plane.
type Point[T interval.Real] struct {
	x, y T
}

// Vector is a direction in the plane.
type Vector[T interval.Real] struct {
	x, y T
}

// Pt returns the point (x, y).
func Pt[T interval.Real](x, y T) Point[T] { return Point[T]{x: x, y: y} }

// Vec returns the vector (x, y).
func Vec[T interval.Real](x, y T) Vector[T] { return Vector[T]{x: x, y: y} }

// X returns the first coordinate.
func (p Point[T]) X() T { return p.x }

// Y returns the second coordinate.
func (p Point[T]) Y() T { return p.y }

// X returns the first component.
func (v Vector[T]) X() T { return v.x }

// Y returns the second component.
func (v Vector[T]) Y() T { return v.y }

// IsZero reports whether both components are zero.
func (v Vector[T]) IsZero() bool { return v.x == 0 && v.y == 0 }

// Sub returns the displacement from b to a, rounded to nearest.
func Sub[T interval.Real](a, b Point[T]) Vector[T] {
	return Vector[T]{x: a.x - b.x, y: a.y - b.y}
}

// String formats the point as "(x,y)".
func (p Point[T]) String() string { return fmt.Sprintf("(%v,%v)", p.x, p.y) }

// String formats the vector as "<x,y>".
func (v Vector[T]) String() string { return fmt.Sprintf("<%v,%v>", v.x, v.y) }

// Single narrows a float64 point to float32, rounding to nearest.
func Single(p Point[float64]) Point[float32] {
	return Point[float32]{x: float32(p.x), y: float32(p.y)}
}

// SingleVector narrows a float64 vector to float32, rounding to nearest.
func SingleVector(v Vector[float64]) Vector[float32] {
	return Vector[float32]{x: float32(v.x), y: float32(v.y)}
}

// FromR2 converts an r2.Point.
func FromR2(p r2.Point) Point[float64] { return Point[float64]{x: p.X, y: p.Y} }

// VectorFromR2 interprets an r2.Point as a direction.
func VectorFromR2(p r2.Point) Vector[float64] { return Vector[float64]{x: p.X, y: p.Y} }

// FromCoord converts the first two ordinates of a go-geom coordinate.
func FromCoord(c geom.Coord) Point[float64] { return Point[float64]{x: c.X(), y: c.Y()} }

// FromWKT decodes a WKT geometry into its vertex list.
func FromWKT(s string) ([]Point[float64], error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("planar: decode wkt: %w", err)
	}
	if g.Empty() {
		return nil, ErrEmptyGeometry
	}

	var coords []geom.Coord
	switch g := g.(type) {
	case *geom.Point:
		coords = []geom.Coord{g.Coords()}
	case *geom.LineString:
		coords = g.Coords()
	case *geom.MultiPoint:
		coords = g.Coords()
	case *geom.Polygon:
		coords = g.LinearRing(0).Coords()
		if n := len(coords); n > 1 && coords[0].Equal(g.Layout(), coords[n-1]) {
			coords = coords[:n-1]
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}

	pts := make([]Point[float64], 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 { // EMPTY member of a MULTIPOINT
			continue
		}
		pts = append(pts, FromCoord(c))
	}
	return pts, nil
}
