package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/meshkit/cdt"
	"github.com/meshkit/cdt/delaunay"
)

// Demo of constrained triangulation. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an extra
// newline.
//
// Polygons should be simple and wind counterclockwise. A clockwise polygon is
// a hole: its outline becomes constraint edges and a marker inside it carves
// the region out. Polygon edges must not intersect each other; this is not
// validated.

var (
	output    = kingpin.Flag("output", "Write a PNG rendering of the result to this path.").Short('o').String()
	scale     = kingpin.Flag("scale", "Pixels per input unit in the rendering.").Default("20").Float64()
	maxFlips  = kingpin.Flag("max-flips", "Flip budget per point insertion.").Default("10000").Int()
	maxPasses = kingpin.Flag("max-passes", "Constraint recovery pass budget.").Default("100").Int()
	tolerance = kingpin.Flag("tolerance", "Degeneracy tolerance (twice-area units).").Default("1e-9").Float64()
	tolerant  = kingpin.Flag("tolerant", "Use tolerance-guarded predicates instead of exact arithmetic.").Bool()
)

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	if len(polygons) == 0 {
		kingpin.Fatalf("no polygons on stdin")
	}

	var points []cdt.Point
	var constraints [][2]int
	var holes []cdt.Point
	for _, poly := range polygons {
		if len(poly) < 3 {
			kingpin.Fatalf("polygon with %d points", len(poly))
		}
		if delaunay.IsClockwise(poly) {
			marker, ok := delaunay.InteriorPoint(poly, delaunay.PrecisionExact)
			if !ok {
				kingpin.Fatalf("could not find an interior point for a hole polygon")
			}
			holes = append(holes, marker)
		}
		base := len(points)
		for i := range poly {
			points = append(points, poly[i])
			constraints = append(constraints, [2]int{base + i, base + (i+1)%len(poly)})
		}
	}

	opts := cdt.DefaultOptions()
	opts.MaxInsertionIterations = *maxFlips
	opts.MaxRefinementIterations = *maxPasses
	opts.Tolerance = *tolerance
	if *tolerant {
		opts.Precision = cdt.PrecisionTolerant
	}

	triangles, err := cdt.TriangulateWithOptions(points, constraints, holes, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	fmt.Printf("%s %d points, %d constraints, %d holes -> %d triangles\n",
		aurora.Green("ok:"), len(points), len(constraints), len(holes), len(triangles))
	for _, tri := range triangles {
		fmt.Printf("%d %d %d\n", tri.A, tri.B, tri.C)
	}

	if *output != "" {
		if err := render(points, triangles, *output, *scale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
	}
}

func readPolygons(in *os.File) [][]cdt.Point {
	polygons := [][]cdt.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []cdt.Point{}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if strings.TrimSpace(line) == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []cdt.Point{}
			}
			continue
		}

		// Parse the point out of the line
		point, err := parsePoint(line)
		if err != nil {
			kingpin.Fatalf("bad point line %q: %v", line, err)
		}
		points = append(points, point)
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) (cdt.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cdt.Point{}, fmt.Errorf("want \"x y\", got %d fields", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cdt.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cdt.Point{}, err
	}
	return cdt.Point{X: x, Y: y}, nil
}

const renderPadding = 20

func render(points []cdt.Point, triangles []cdt.Triangle, path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, tri := range triangles {
		a, b, d := points[tri.A], points[tri.B], points[tri.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGBA(0, 0.5, 0, 0.8)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	return c.SavePNG(path)
}
