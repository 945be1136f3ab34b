package delaunay

import "math"

// Incremental point insertion in the Bowyer-Watson style: locate the
// containing triangle, connect the new point to its corners, then restore the
// Delaunay property by flipping edges outward from the insertion site. The
// flip loop is an explicit work stack with a counted budget, never recursion,
// so a numerically hostile input exhausts the budget and reports
// LegalizationStalledError instead of hanging.

// superTriangle returns three synthetic corners that comfortably enclose all
// of the given points. The multiplier is large enough that the synthetic
// corners never end up inside any circumcircle of interior-only triangles for
// realistic inputs.
func superTriangle(points []Point) [3]Point {
	if len(points) == 0 {
		return [3]Point{{-20, -1}, {20, -1}, {0, 20}}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	dMax := math.Max(maxX-minX, maxY-minY)
	if dMax <= 0 || math.IsInf(dMax, 0) {
		dMax = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	return [3]Point{
		{midX - 20*dMax, midY - dMax},
		{midX + 20*dMax, midY - dMax},
		{midX, midY + 20*dMax},
	}
}

// insertPoint adds point index p to the triangulation. The returned canonical
// index differs from p only when p coincides with an existing vertex, in
// which case the mesh is left untouched. The second return value is a
// triangle near the insertion site, usable as the next locate hint.
func (m *Mesh) insertPoint(p int, hint int) (canonical int, near int) {
	loc := m.locate(m.points[p], hint)
	switch loc.kind {
	case locOutside:
		fatalf("point %d lies outside the bounding triangle", p)
		return -1, -1
	case locOnVertex:
		return loc.vertex, loc.tri
	case locOnEdge:
		return p, m.splitEdge(loc.tri, loc.edge, p)
	default:
		return p, m.splitTriangle(loc.tri, p)
	}
}

// splitTriangle replaces triangle t with three triangles fanning out from p,
// then legalizes the triangle edges opposite p.
func (m *Mesh) splitTriangle(t, p int) int {
	x, y, z := m.tris[t].v[0], m.tris[t].v[1], m.tris[t].v[2]
	m.removeTriangle(t)

	var work triStack
	work.Push(m.addTriangle(x, y, p))
	work.Push(m.addTriangle(y, z, p))
	work.Push(m.addTriangle(z, x, p))

	m.legalize(p, work)
	return m.incidentTriangle(p)
}

// splitEdge replaces the one or two triangles flanking edge e of t with a fan
// around p. A constrained edge stays constrained across the split: the two
// halves inherit the tag.
func (m *Mesh) splitEdge(t, e, p int) int {
	u, w := m.tris[t].v[e], m.tris[t].v[(e+1)%3]
	a := m.apex(t, e)
	n := m.neighbor(t, e)

	d := -1
	if n != -1 {
		d = m.apex(n, m.edgeIndex(n, u, w))
		m.removeTriangle(n)
	}
	m.removeTriangle(t)

	if constrained := NewEdge(u, w); m.constrained.Has(constrained) {
		m.constrained.Remove(constrained)
		m.setConstrained(u, p)
		m.setConstrained(p, w)
	}

	var work triStack
	work.Push(m.addTriangle(u, p, a))
	work.Push(m.addTriangle(p, w, a))
	if d != -1 {
		work.Push(m.addTriangle(w, p, d))
		work.Push(m.addTriangle(p, u, d))
	}

	m.legalize(p, work)
	return m.incidentTriangle(p)
}

// legalize restores the local Delaunay property around freshly inserted point
// p. Each stack entry is a triangle containing p whose edge opposite p may be
// illegal. Flip count is bounded by MaxInsertionIterations.
func (m *Mesh) legalize(p int, work triStack) {
	flips := 0
	for !work.Empty() {
		t := work.Pop()
		if t < 0 || t >= len(m.tris) || !m.tris[t].alive {
			continue
		}
		pi := m.vertIndex(t, p)
		if pi == -1 {
			continue
		}
		e := (pi + 1) % 3 // the edge of t not touching p
		u, w := m.tris[t].v[e], m.tris[t].v[(e+1)%3]
		if m.Constrained(u, w) {
			continue
		}
		n := m.neighbor(t, e)
		if n == -1 {
			continue
		}
		d := m.apex(n, m.edgeIndex(n, u, w))

		// (u, w, p) is a counterclockwise rotation of t.
		if !InCircumcircle(m.points[u], m.points[w], m.points[p], m.points[d], m.opts.Precision) {
			continue
		}

		flips++
		if flips > m.opts.MaxInsertionIterations {
			fatal(&LegalizationStalledError{Point: p, Flips: flips})
		}

		m.removeTriangle(n)
		m.removeTriangle(t)
		work.Push(m.addTriangle(u, d, p))
		work.Push(m.addTriangle(d, w, p))
	}
}
