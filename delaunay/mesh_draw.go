package delaunay

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/meshkit/cdt/dbg"
)

// This is for debugging purposes only

// Padding around the mesh so the super-triangle fringe is obvious
const dbgDrawPadding = 100

// Helper to draw and print the live mesh in the terminal (iTerm only) for
// debugging. Constrained edges are drawn on top in a different color.
func (m *Mesh) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, tri := range m.tris {
		if !tri.alive {
			continue
		}
		for _, v := range tri.v {
			p := m.points[v]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return // nothing alive to draw
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, tri := range m.tris {
		if !tri.alive {
			continue
		}
		a, b, d := m.points[tri.v[0]], m.points[tri.v[1]], m.points[tri.v[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.6)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetLineWidth(2)
	for e := range m.constrained {
		a, b := m.points[e.U], m.points[e.V]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.SetRGB(1, 0, 0)
	c.Stroke()

	c.SavePNG("/tmp/cdtmesh.png")
	imgcat.CatFile("/tmp/cdtmesh.png", os.Stdout)
}

func (m *Mesh) dbgName(t int) string {
	name := dbg.Name(t)
	if !m.tris[t].alive {
		return aurora.Cyan(name).String()
	}
	tri := m.tris[t]
	for i := 0; i < 3; i++ {
		if m.Constrained(tri.v[i], tri.v[(i+1)%3]) {
			return aurora.Red(name).String()
		}
	}
	return aurora.Green(name).String()
}

func (m *Mesh) String() string {
	var lines []string
	for t, tri := range m.tris {
		if !tri.alive {
			continue
		}
		neighbors := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			if n := m.neighbor(t, i); n != -1 {
				neighbors = append(neighbors, m.dbgName(n))
			}
		}
		lines = append(lines, fmt.Sprintf("%s (%d %d %d) <%s>",
			m.dbgName(t), tri.v[0], tri.v[1], tri.v[2], strings.Join(neighbors, ", ")))
	}
	return strings.Join(lines, "\n")
}
