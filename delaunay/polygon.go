package delaunay

// Helpers for callers that start from polygon outlines rather than raw
// constraint lists: the demo CLI turns each outline into a closed constraint
// chain and each hole outline into a hole marker.

// SignedPolygonArea returns twice the signed area of the polygon ring;
// positive for counterclockwise winding.
func SignedPolygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

func IsClockwise(points []Point) bool {
	return SignedPolygonArea(points) < 0
}

func ReversePolygon(points []Point) []Point {
	reversed := make([]Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		reversed = append(reversed, points[i])
	}
	return reversed
}

// ContainsPointEvenOdd is winding-rule point-in-polygon via crossing count.
// This is provided primarily for validating triangulations by sampling.
func ContainsPointEvenOdd(points []Point, p Point) bool {
	crossings := 0
	for i, a := range points {
		b := points[CircularIndex(i+1, len(points))]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				crossings++
			}
		}
	}
	return crossings%2 == 1
}

// InteriorPoint returns a point strictly inside the simple polygon: the
// centroid of its first clippable ear. Works for either winding.
func InteriorPoint(points []Point, prec Precision) (Point, bool) {
	if len(points) < 3 {
		return Point{}, false
	}
	ccw := points
	if IsClockwise(points) {
		ccw = ReversePolygon(points)
	}
	n := len(ccw)
	for i := 0; i < n; i++ {
		a := ccw[CircularIndex(i-1, n)]
		b := ccw[i]
		c := ccw[CircularIndex(i+1, n)]
		if Orient(a, b, c, prec) != Left {
			continue
		}
		ear := true
		for j := 0; j < n; j++ {
			if j == CircularIndex(i-1, n) || j == i || j == CircularIndex(i+1, n) {
				continue
			}
			if pointInTriangle(a, b, c, ccw[j], prec) {
				ear = false
				break
			}
		}
		if ear {
			return Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}, true
		}
	}
	return Point{}, false
}
