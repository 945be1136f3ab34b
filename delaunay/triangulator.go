// Package delaunay implements an iteration-bounded constrained Delaunay
// triangulation engine: incremental insertion with stack-based legalization,
// constraint edge recovery, and hole/boundary carving. Everything here
// signals failure by panicking with a TriangulateError; use the cdt package
// for an API that returns errors, or HandleTriangulatePanicRecover directly.
package delaunay

// Triangulator owns all state for one run. There is no process-wide mutable
// state anywhere in the engine; two Triangulators never share anything.
type Triangulator struct {
	opts  Options
	mesh  *Mesh
	super [3]int

	// canon maps each input point index to the vertex actually inserted for
	// it. It differs from the identity only for duplicate coordinates, which
	// fold into the first occurrence.
	canon []int
}

func NewTriangulator(points []Point, opts Options) *Triangulator {
	n := len(points)
	all := make([]Point, n, n+3)
	copy(all, points)
	corners := superTriangle(points)
	all = append(all, corners[0], corners[1], corners[2])

	t := &Triangulator{
		opts:  opts,
		super: [3]int{n, n + 1, n + 2},
		canon: make([]int, n),
	}
	t.mesh = NewMesh(all, opts)
	t.mesh.addTriangle(n, n+1, n+2)
	return t
}

// Canonical returns the vertex index that input point i was folded into. It
// equals i unless point i duplicated an earlier point's coordinates.
func (t *Triangulator) Canonical(i int) int { return t.canon[i] }

// Run executes the full pipeline: insert all points, recover all constraint
// edges under the refinement budget, carve holes and the exterior, and return
// the surviving triangles. Constraint and hole indices refer to the input
// point slice.
func (t *Triangulator) Run(constraints []Edge, holes []Point) []Triangle {
	t.insertAll()
	t.enforce(constraints)
	t.mesh.carveHoles(holes)
	t.mesh.removeOuter(t.super)
	return t.mesh.Triangles()
}

func (t *Triangulator) insertAll() {
	hint := 0
	for i := range t.canon {
		t.canon[i], hint = t.mesh.insertPoint(i, hint)
	}
}

// enforce runs the bounded constraint-recovery loop. Each pass attempts every
// unresolved segment once; segments that pass through vertices contribute
// their tail sub-segments to the next pass. A pass that resolves nothing, or
// exhausting the pass budget, reports IncompleteTriangulationError rather
// than spinning.
func (t *Triangulator) enforce(constraints []Edge) {
	n := len(t.canon)
	pending := make([]Edge, 0, len(constraints))
	for _, c := range constraints {
		if c.U < 0 || c.U >= n || c.V < 0 || c.V >= n {
			fatalf("constraint (%d %d) references a point outside the %d input points", c.U, c.V, n)
		}
		pending = append(pending, NewEdge(t.canon[c.U], t.canon[c.V]))
	}

	for pass := 0; len(pending) > 0; pass++ {
		if pass >= t.opts.MaxRefinementIterations {
			fatal(&IncompleteTriangulationError{Unresolved: pending})
		}
		progress := 0
		var next []Edge
		for _, e := range pending {
			if t.mesh.Constrained(e.U, e.V) {
				// Already recovered, e.g. a duplicate constraint pair.
				progress++
				continue
			}
			ok, rest := t.mesh.resolveConstraint(e.U, e.V)
			if ok {
				progress++
			} else {
				next = append(next, e)
			}
			next = append(next, rest...)
		}
		if progress == 0 && len(next) > 0 {
			fatal(&IncompleteTriangulationError{Unresolved: next})
		}
		pending = next
	}
}

// Triangulate is the one-call form of the pipeline above.
func Triangulate(points []Point, constraints []Edge, holes []Point, opts Options) []Triangle {
	return NewTriangulator(points, opts).Run(constraints, holes)
}
