package delaunay

// Constraint enforcement: each required edge that is missing from the mesh is
// recovered by walking the corridor of triangles its segment crosses, removing
// them, and re-triangulating the two cavity chains on either side by ear
// clipping. Crossing another constrained edge is a hard input error; passing
// exactly through a vertex splits the constraint into two sub-segments, the
// second of which is handed back to the refinement loop.

// resolveConstraint forces the edge (u, v) into the mesh. It returns whether
// any progress was made and the sub-segments still to be recovered. A false
// return with no remainder means the segment could not be processed this
// pass; the refinement loop decides whether to try again.
func (m *Mesh) resolveConstraint(u, v int) (bool, []Edge) {
	if u == v {
		fatal(&ConstraintConflictError{Edge: NewEdge(u, v), Blocking: NewEdge(u, v)})
	}
	if m.hasEdge(u, v) {
		m.setConstrained(u, v)
		return true, nil
	}

	start, lo, hi, via := m.findCrossingStart(u, v)
	if via != -1 {
		// The segment leaves u exactly through the mesh vertex via, so the
		// existing edge (u, via) is the first piece of the constraint.
		m.setConstrained(u, via)
		return true, []Edge{NewEdge(via, v)}
	}
	if start == -1 {
		return false, nil
	}

	pu, pv := m.points[u], m.points[v]
	dead := []int{start}
	lower := []int{lo}
	upper := []int{hi}
	target := v
	cur := start

	for steps := 0; ; steps++ {
		if steps > m.live {
			// The walk is cycling over a corrupted or numerically hostile
			// region. Nothing has been mutated yet, so report no progress.
			return false, nil
		}
		if m.Constrained(lo, hi) {
			fatal(&ConstraintConflictError{Edge: NewEdge(u, v), Blocking: NewEdge(lo, hi)})
		}
		t1, t2 := m.edgeTriangles(lo, hi)
		next := t1
		if next == cur {
			next = t2
		}
		if next == -1 {
			fatalf("constraint (%d %d) walked off the mesh across edge (%d %d)", u, v, lo, hi)
		}
		dead = append(dead, next)
		w := m.apex(next, m.edgeIndex(next, lo, hi))
		if w == v {
			break
		}
		side := Orient(pu, pv, m.points[w], m.opts.Precision)
		if side == Collinear {
			if !onSegment(pu, pv, m.points[w]) {
				fatalf("constraint (%d %d) passed a collinear vertex %d outside the segment", u, v, w)
			}
			// The corridor ends early at a vertex sitting on the segment.
			target = w
			break
		}
		if side == Left {
			upper = append(upper, w)
			hi = w
		} else {
			lower = append(lower, w)
			lo = w
		}
		cur = next
	}

	for _, t := range dead {
		m.removeTriangle(t)
	}

	// The upper cavity is the region left of u->target; counterclockwise its
	// boundary runs u, target, then the upper chain from target back to u.
	upperPoly := make([]int, 0, len(upper)+2)
	upperPoly = append(upperPoly, u, target)
	for i := len(upper) - 1; i >= 0; i-- {
		upperPoly = append(upperPoly, upper[i])
	}
	m.earClip(upperPoly)

	// The lower cavity runs u, then its chain in walk order, then target.
	lowerPoly := make([]int, 0, len(lower)+2)
	lowerPoly = append(lowerPoly, u)
	lowerPoly = append(lowerPoly, lower...)
	lowerPoly = append(lowerPoly, target)
	m.earClip(lowerPoly)

	m.setConstrained(u, target)
	if target != v {
		return true, []Edge{NewEdge(target, v)}
	}
	return true, nil
}

// findCrossingStart locates the triangle at u whose far edge the segment
// (u, v) exits through. It returns that triangle with the far edge split into
// its lower (right of u->v) and upper (left) endpoints. If the segment leaves
// u along an existing edge toward vertex via, only via is returned. All
// values are -1 when no suitable triangle is found.
func (m *Mesh) findCrossingStart(u, v int) (tri, lo, hi, via int) {
	pu, pv := m.points[u], m.points[v]

	check := func(t int) (int, int, int, bool) {
		k := m.vertIndex(t, u)
		b := m.tris[t].v[(k+1)%3]
		c := m.tris[t].v[(k+2)%3]
		ob := Orient(pu, pv, m.points[b], m.opts.Precision)
		oc := Orient(pu, pv, m.points[c], m.opts.Precision)
		if ob == Collinear && onSegment(pu, pv, m.points[b]) {
			return -1, -1, b, true
		}
		if oc == Collinear && onSegment(pu, pv, m.points[c]) {
			return -1, -1, c, true
		}
		if ob == Right && oc == Left {
			return t, b, c, true
		}
		return -1, -1, -1, false
	}

	// Rotate around u through the adjacency. Every interior fan is closed
	// because the super-triangle encloses all real points; if the rotation
	// still runs into an open edge, fall back to scanning.
	startTri := m.incidentTriangle(u)
	t := startTri
	for steps := 0; t != -1 && steps <= m.live; steps++ {
		if tri, lo, hiOrVia, ok := check(t); ok {
			if tri == -1 && lo == -1 {
				return -1, -1, -1, hiOrVia
			}
			return tri, lo, hiOrVia, -1
		}
		t = m.neighbor(t, m.vertIndex(t, u))
		if t == startTri {
			return -1, -1, -1, -1
		}
	}

	for t := range m.tris {
		if !m.tris[t].alive || m.vertIndex(t, u) == -1 {
			continue
		}
		if tri, lo, hiOrVia, ok := check(t); ok {
			if tri == -1 && lo == -1 {
				return -1, -1, -1, hiOrVia
			}
			return tri, lo, hiOrVia, -1
		}
	}
	return -1, -1, -1, -1
}

// earClip re-triangulates a simple counterclockwise pseudo-polygon given as a
// cycle of point indices. Cavities produced by the corridor walk are always
// simple, so a clippable ear exists at every step; failing to find one means
// the geometry is too degenerate to recover and is reported rather than
// retried forever.
func (m *Mesh) earClip(poly []int) {
	for len(poly) > 3 {
		clipped := false
		for i := 0; i < len(poly); i++ {
			a := poly[CircularIndex(i-1, len(poly))]
			b := poly[i]
			c := poly[CircularIndex(i+1, len(poly))]
			if Orient(m.points[a], m.points[b], m.points[c], m.opts.Precision) != Left {
				continue
			}
			ear := true
			for _, q := range poly {
				if q == a || q == b || q == c {
					continue
				}
				if pointInTriangle(m.points[a], m.points[b], m.points[c], m.points[q], m.opts.Precision) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			m.addTriangle(a, b, c)
			poly = append(poly[:i], poly[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			fatalf("no clippable ear in a cavity of %d points", len(poly))
		}
	}
	m.addTriangle(poly[0], poly[1], poly[2])
}
