package delaunay

// Point is a 2D coordinate. Points are never modified once they are handed to
// the triangulator; the engine refers to them by their index in the input
// slice, so callers can correlate output triangles with their own data without
// any coordinate comparison.
type Point struct {
	X float64
	Y float64
}

// Triangle is a counterclockwise triple of point indices.
type Triangle struct {
	A, B, C int
}

// Edge is an unordered pair of point indices. NewEdge normalizes the order so
// that Edge values are comparable and usable as map keys.
type Edge struct {
	U, V int
}

func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{u, v}
}

// Other returns the endpoint of the edge that isn't p. It panics if p is not
// an endpoint, since that always indicates corrupted bookkeeping.
func (e Edge) Other(p int) int {
	switch p {
	case e.U:
		return e.V
	case e.V:
		return e.U
	}
	panic("point is not an endpoint of the edge")
}

type EdgeSet map[Edge]struct{}

func (s EdgeSet) Add(e Edge)      { s[e] = struct{}{} }
func (s EdgeSet) Remove(e Edge)   { delete(s, e) }
func (s EdgeSet) Has(e Edge) bool { _, ok := s[e]; return ok }

// Precision selects how uncertain predicate signs are resolved. The strategy
// is fixed up front in Options rather than negotiated at runtime.
type Precision int

const (
	// PrecisionTolerant treats determinants within the error bound as
	// collinear/cocircular. Fast, and safe against flip cycling because
	// ambiguous in-circle results are reported as "not inside".
	PrecisionTolerant Precision = iota
	// PrecisionExact escalates uncertain signs to arbitrary-precision
	// arithmetic, so near-degenerate inputs are classified exactly.
	PrecisionExact
)

// Options configures a single triangulation run. There is no package-level
// state; every run owns its own copy.
type Options struct {
	// MaxInsertionIterations caps the number of edge flips performed while
	// legalizing a single point insertion.
	MaxInsertionIterations int
	// MaxRefinementIterations caps the outer constraint-recovery passes.
	MaxRefinementIterations int
	// Tolerance is the epsilon used for degeneracy decisions (zero-area
	// triangles, coincident points).
	Tolerance float64
	// Precision selects the predicate strategy.
	Precision Precision
}

func DefaultOptions() Options {
	return Options{
		MaxInsertionIterations:  10000,
		MaxRefinementIterations: 100,
		Tolerance:               Tolerance,
		Precision:               PrecisionExact,
	}
}
