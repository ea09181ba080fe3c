// SPDX-License-Identifier: MIT

// Package planar provides the 2-D point and vector values consumed by the
// predicate kernel, plus adapters from the geometry types used elsewhere in
// the Go ecosystem.
//
// Point[T] and Vector[T] are plain immutable pairs over float32 or float64.
// They are distinct types so that a predicate signature documents which
// arguments are positions and which are directions.
//
// Adapters:
//
//	FromR2(r2.Point)         github.com/golang/geo/r2
//	VectorFromR2(r2.Point)
//	FromCoord(geom.Coord)    github.com/twpayne/go-geom
//	FromWKT(string)          github.com/twpayne/go-geom/encoding/wkt
//
// FromWKT understands POINT, LINESTRING, MULTIPOINT and POLYGON (exterior
// ring, without the closing vertex); the CLI uses it to read quadrilaterals.
package planar
