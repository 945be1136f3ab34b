package delaunay

import (
	"math"

	"github.com/pkg/errors"
)

// The mesh is the live triangulation: a slab of triangle records addressed by
// slot index, plus an undirected-edge table that doubles as the adjacency
// relation. Storing adjacency keyed by edge (rather than as per-triangle
// neighbor pointers) means mutual consistency can't be violated by a partial
// update: if A borders B across e, the single table entry for e says so for
// both of them.

type meshTri struct {
	v     [3]int // counterclockwise vertex indices
	alive bool
}

// edge i of a triangle runs from v[i] to v[(i+1)%3]; the apex opposite edge i
// is v[(i+2)%3].

type Mesh struct {
	points []Point
	opts   Options

	tris []meshTri
	free []int
	live int

	// A triangle slot recently incident to each point. Used as a locate hint;
	// may be stale after removals and is repaired lazily.
	incident []int

	// Undirected edge -> up to two triangle slots (-1 for none).
	edgeTris map[Edge][2]int

	constrained EdgeSet
}

func NewMesh(points []Point, opts Options) *Mesh {
	incident := make([]int, len(points))
	for i := range incident {
		incident[i] = -1
	}
	return &Mesh{
		points:      points,
		opts:        opts,
		incident:    incident,
		edgeTris:    make(map[Edge][2]int),
		constrained: make(EdgeSet),
	}
}

func (m *Mesh) Point(i int) Point { return m.points[i] }

func (m *Mesh) Constrained(u, v int) bool { return m.constrained.Has(NewEdge(u, v)) }

func (m *Mesh) setConstrained(u, v int) { m.constrained.Add(NewEdge(u, v)) }

// addTriangle inserts the triangle (a, b, c), correcting winding to
// counterclockwise. A triangle with zero area beyond tolerance is never
// inserted; it signals DegenerateGeometryError instead.
func (m *Mesh) addTriangle(a, b, c int) int {
	pa, pb, pc := m.points[a], m.points[b], m.points[c]
	switch Orient(pa, pb, pc, m.opts.Precision) {
	case Right:
		b, c = c, b
		pb, pc = pc, pb
	case Collinear:
		fatal(&DegenerateGeometryError{a, b, c})
	}
	if math.Abs(SignedArea(pa, pb, pc)) <= m.opts.Tolerance {
		fatal(&DegenerateGeometryError{a, b, c})
	}

	var t int
	if n := len(m.free); n > 0 {
		t = m.free[n-1]
		m.free = m.free[:n-1]
		m.tris[t] = meshTri{v: [3]int{a, b, c}, alive: true}
	} else {
		t = len(m.tris)
		m.tris = append(m.tris, meshTri{v: [3]int{a, b, c}, alive: true})
	}
	m.live++

	for i := 0; i < 3; i++ {
		m.registerEdge(t, m.tris[t].v[i], m.tris[t].v[(i+1)%3])
		m.incident[m.tris[t].v[i]] = t
	}
	return t
}

func (m *Mesh) registerEdge(t, u, v int) {
	e := NewEdge(u, v)
	pair, ok := m.edgeTris[e]
	if !ok {
		m.edgeTris[e] = [2]int{t, -1}
		return
	}
	if pair[0] == -1 {
		pair[0] = t
	} else if pair[1] == -1 {
		pair[1] = t
	} else {
		fatalf("edge (%d %d) already borders two triangles", e.U, e.V)
	}
	m.edgeTris[e] = pair
}

func (m *Mesh) removeTriangle(t int) {
	tri := &m.tris[t]
	if !tri.alive {
		fatalf("removing dead triangle slot %d", t)
	}
	for i := 0; i < 3; i++ {
		m.unregisterEdge(t, tri.v[i], tri.v[(i+1)%3])
	}
	tri.alive = false
	m.live--
	m.free = append(m.free, t)
}

func (m *Mesh) unregisterEdge(t, u, v int) {
	e := NewEdge(u, v)
	pair := m.edgeTris[e]
	if pair[0] == t {
		pair[0] = pair[1]
	} else if pair[1] != t {
		fatalf("edge (%d %d) does not border triangle slot %d", e.U, e.V, t)
	}
	pair[1] = -1
	if pair[0] == -1 {
		delete(m.edgeTris, e)
	} else {
		m.edgeTris[e] = pair
	}
}

// neighbor returns the triangle slot across edge i of t, or -1.
func (m *Mesh) neighbor(t, i int) int {
	tri := m.tris[t]
	pair := m.edgeTris[NewEdge(tri.v[i], tri.v[(i+1)%3])]
	if pair[0] == t {
		return pair[1]
	}
	return pair[0]
}

// edgeTriangles returns the up-to-two live triangles bordering the undirected
// edge (u, v).
func (m *Mesh) edgeTriangles(u, v int) (int, int) {
	pair, ok := m.edgeTris[NewEdge(u, v)]
	if !ok {
		return -1, -1
	}
	return pair[0], pair[1]
}

func (m *Mesh) hasEdge(u, v int) bool {
	_, ok := m.edgeTris[NewEdge(u, v)]
	return ok
}

// edgeIndex returns which edge of t has endpoints {u, v}, or -1.
func (m *Mesh) edgeIndex(t, u, v int) int {
	tri := m.tris[t]
	for i := 0; i < 3; i++ {
		a, b := tri.v[i], tri.v[(i+1)%3]
		if (a == u && b == v) || (a == v && b == u) {
			return i
		}
	}
	return -1
}

// vertIndex returns which corner of t is point p, or -1.
func (m *Mesh) vertIndex(t, p int) int {
	tri := m.tris[t]
	for i := 0; i < 3; i++ {
		if tri.v[i] == p {
			return i
		}
	}
	return -1
}

// apex returns the vertex of t opposite edge i.
func (m *Mesh) apex(t, i int) int {
	return m.tris[t].v[(i+2)%3]
}

// incidentTriangle returns a live triangle touching point p, repairing a
// stale hint by scanning if necessary.
func (m *Mesh) incidentTriangle(p int) int {
	if t := m.incident[p]; t >= 0 && m.tris[t].alive && m.vertIndex(t, p) >= 0 {
		return t
	}
	for t := range m.tris {
		if m.tris[t].alive && m.vertIndex(t, p) >= 0 {
			m.incident[p] = t
			return t
		}
	}
	return -1
}

// Triangles returns the live triangle set in slot order.
func (m *Mesh) Triangles() []Triangle {
	result := make([]Triangle, 0, m.live)
	for _, tri := range m.tris {
		if tri.alive {
			result = append(result, Triangle{tri.v[0], tri.v[1], tri.v[2]})
		}
	}
	return result
}

type locKind int

const (
	locInside locKind = iota
	locOnEdge
	locOnVertex
	locOutside
)

type location struct {
	tri    int
	kind   locKind
	edge   int // valid for locOnEdge
	vertex int // valid for locOnVertex
}

// locate finds the triangle containing p by walking the adjacency from a hint
// triangle. The walk is step-capped; if it fails to settle (which can happen
// on heavily degenerate geometry) it falls back to a linear scan.
func (m *Mesh) locate(p Point, hint int) location {
	if m.live == 0 {
		return location{tri: -1, kind: locOutside}
	}
	cur := hint
	if cur < 0 || cur >= len(m.tris) || !m.tris[cur].alive {
		cur = m.firstLive()
	}

	maxSteps := 4 * (m.live + 1)
	for step := 0; step < maxSteps; step++ {
		if loc, ok := m.testTriangle(cur, p); ok {
			return loc
		}
		next := -1
		tri := m.tris[cur]
		for i := 0; i < 3; i++ {
			if Orient(m.points[tri.v[i]], m.points[tri.v[(i+1)%3]], p, m.opts.Precision) == Right {
				next = m.neighbor(cur, i)
				break
			}
		}
		if next == -1 {
			// No neighbor across the separating edge: p is outside the mesh.
			return location{tri: cur, kind: locOutside}
		}
		cur = next
	}

	// Fallback linear scan.
	for t := range m.tris {
		if !m.tris[t].alive {
			continue
		}
		if loc, ok := m.testTriangle(t, p); ok {
			return loc
		}
	}
	return location{tri: -1, kind: locOutside}
}

func (m *Mesh) firstLive() int {
	for t := range m.tris {
		if m.tris[t].alive {
			return t
		}
	}
	return -1
}

// testTriangle classifies p against triangle t. ok is false when p is
// strictly outside.
func (m *Mesh) testTriangle(t int, p Point) (location, bool) {
	tri := m.tris[t]
	for i := 0; i < 3; i++ {
		if coincident(m.points[tri.v[i]], p, m.opts.Tolerance) {
			return location{tri: t, kind: locOnVertex, vertex: tri.v[i]}, true
		}
	}
	// A point within tolerance of an edge is treated as lying on it, even when
	// the exact orientation is strictly one-sided. Splitting the flanking
	// triangles there avoids manufacturing a sliver that addTriangle would
	// then reject as degenerate.
	onEdge := -1
	for i := 0; i < 3; i++ {
		a, b := m.points[tri.v[i]], m.points[tri.v[(i+1)%3]]
		thin := math.Abs(SignedArea(a, b, p)) <= m.opts.Tolerance
		switch Orient(a, b, p, m.opts.Precision) {
		case Right:
			if !thin {
				return location{}, false
			}
			onEdge = i
		case Collinear:
			onEdge = i
		case Left:
			if thin {
				onEdge = i
			}
		}
	}
	if onEdge >= 0 {
		return location{tri: t, kind: locOnEdge, edge: onEdge}, true
	}
	return location{tri: t, kind: locInside}, true
}

// checkInvariants verifies winding, non-degeneracy, edge-table consistency
// and adjacency symmetry over the whole mesh. It is meant for tests and
// debugging; the engine never needs to repair anything it reports.
func (m *Mesh) checkInvariants() error {
	for t, tri := range m.tris {
		if !tri.alive {
			continue
		}
		pa, pb, pc := m.points[tri.v[0]], m.points[tri.v[1]], m.points[tri.v[2]]
		if Orient(pa, pb, pc, m.opts.Precision) != Left {
			return errors.Errorf("triangle slot %d is not counterclockwise", t)
		}
		if math.Abs(SignedArea(pa, pb, pc)) <= m.opts.Tolerance {
			return errors.Errorf("triangle slot %d is degenerate", t)
		}
		for i := 0; i < 3; i++ {
			n := m.neighbor(t, i)
			if n == -1 {
				continue
			}
			if !m.tris[n].alive {
				return errors.Errorf("triangle slot %d has dead neighbor %d", t, n)
			}
			j := m.edgeIndex(n, tri.v[i], tri.v[(i+1)%3])
			if j == -1 {
				return errors.Errorf("neighbor %d of slot %d does not share the edge", n, t)
			}
			if m.neighbor(n, j) != t {
				return errors.Errorf("adjacency of slots %d and %d is asymmetric", t, n)
			}
		}
	}
	for e, pair := range m.edgeTris {
		for _, t := range pair {
			if t == -1 {
				continue
			}
			if !m.tris[t].alive {
				return errors.Errorf("edge (%d %d) refers to dead slot %d", e.U, e.V, t)
			}
			if m.edgeIndex(t, e.U, e.V) == -1 {
				return errors.Errorf("edge (%d %d) refers to slot %d which lacks it", e.U, e.V, t)
			}
		}
	}
	return nil
}
