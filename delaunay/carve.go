package delaunay

// Carving is a pure mesh edit: flood fills through the adjacency, stopping at
// constrained edges, and removes what it reaches. It never re-triggers
// legalization.

// carveHoles removes every triangle reachable from each hole marker without
// crossing a constrained edge. Markers that land on a vertex, on a
// constrained edge, or outside the mesh are skipped; they don't identify an
// unambiguous region.
func (m *Mesh) carveHoles(holes []Point) {
	for _, h := range holes {
		loc := m.locate(h, -1)
		switch loc.kind {
		case locInside:
			m.floodRemove(loc.tri)
		case locOnEdge:
			tri := m.tris[loc.tri]
			u, w := tri.v[loc.edge], tri.v[(loc.edge+1)%3]
			if !m.Constrained(u, w) {
				m.floodRemove(loc.tri)
			}
		}
	}
}

// removeOuter strips everything that lies outside the domain. With
// constrained edges closing a boundary loop, the exterior is whatever is
// flood-reachable from the super-triangle corners without crossing a
// constrained edge. When the constrained edges close no loop anywhere (that
// includes the no-constraints case) there is no boundary to stop at and the
// flood would silently empty the mesh, so only the triangles using a
// synthetic corner are dropped, leaving the convex hull triangulation.
func (m *Mesh) removeOuter(super [3]int) {
	var seeds []int
	for t := range m.tris {
		if !m.tris[t].alive {
			continue
		}
		for _, s := range super {
			if m.vertIndex(t, s) != -1 {
				seeds = append(seeds, t)
				break
			}
		}
	}
	if !m.constraintsCloseLoop() {
		for _, t := range seeds {
			if m.tris[t].alive {
				m.removeTriangle(t)
			}
		}
		return
	}
	for _, t := range seeds {
		if m.tris[t].alive {
			m.floodRemove(t)
		}
	}
}

// constraintsCloseLoop reports whether the constrained edge set contains a
// cycle, i.e. whether it can bound a region at all. Union-find over the
// constrained endpoints: an edge joining two already-connected vertices
// closes a loop.
func (m *Mesh) constraintsCloseLoop() bool {
	parent := make(map[int]int, len(m.constrained))
	var find func(int) int
	find = func(x int) int {
		p, ok := parent[x]
		if !ok || p == x {
			parent[x] = x
			return x
		}
		root := find(p)
		parent[x] = root
		return root
	}
	for e := range m.constrained {
		u, v := find(e.U), find(e.V)
		if u == v {
			return true
		}
		parent[u] = v
	}
	return false
}

func (m *Mesh) floodRemove(seed int) {
	var work triStack
	work.Push(seed)
	for !work.Empty() {
		t := work.Pop()
		if t == -1 || !m.tris[t].alive {
			continue
		}
		tri := m.tris[t]
		for i := 0; i < 3; i++ {
			if m.Constrained(tri.v[i], tri.v[(i+1)%3]) {
				continue
			}
			if n := m.neighbor(t, i); n != -1 {
				work.Push(n)
			}
		}
		m.removeTriangle(t)
	}
}
