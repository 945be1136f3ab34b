// A constrained Delaunay triangulation package for Go.
//
// This package takes a set of points, a list of mandatory edges between them,
// and optional hole markers, and produces a triangle mesh that contains every
// mandatory edge, with hole regions and everything outside the constrained
// boundary carved away. Every loop in the engine is iteration-bounded, so
// adversarial or nearly-degenerate input produces an error instead of a hang.
package cdt

import "github.com/meshkit/cdt/delaunay"

type Point = delaunay.Point
type Triangle = delaunay.Triangle
type Edge = delaunay.Edge
type Options = delaunay.Options
type Precision = delaunay.Precision

const (
	PrecisionTolerant = delaunay.PrecisionTolerant
	PrecisionExact    = delaunay.PrecisionExact
)

func DefaultOptions() Options { return delaunay.DefaultOptions() }

// Triangulate builds the constrained triangulation of the given points with
// default options.
//
// Constraints are pairs of indices into points; each referenced edge is
// guaranteed to appear in the output or an error is returned. Hole markers
// are coordinates lying strictly inside regions to carve out. Output
// triangles are counterclockwise triples of point indices; duplicate input
// points are folded into their first occurrence.
func Triangulate(points []Point, constraints [][2]int, holes []Point) ([]Triangle, error) {
	return TriangulateWithOptions(points, constraints, holes, delaunay.DefaultOptions())
}

// TriangulateWithOptions is Triangulate with explicit iteration caps,
// tolerance and predicate precision.
func TriangulateWithOptions(points []Point, constraints [][2]int, holes []Point, opts Options) (result []Triangle, err error) {
	defer func() {
		recoveredErr := delaunay.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	edges := make([]delaunay.Edge, len(constraints))
	for i, c := range constraints {
		edges[i] = delaunay.Edge{U: c[0], V: c[1]}
	}
	return delaunay.Triangulate(points, edges, holes, opts), nil
}
