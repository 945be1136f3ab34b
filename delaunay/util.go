package delaunay

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, coordinate equality is tolerance
// based. Without this, near-duplicate input points would produce absurdly thin
// triangles instead of being folded together.
func coincident(a, b Point, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// triStack is an explicit work stack of triangle slots, used instead of
// recursion during legalization so the flip budget can be enforced without
// risking call-stack depth.
type triStack []int

func (s *triStack) Push(t int) {
	*s = append(*s, t)
}

func (s *triStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	t := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return t
}

func (s *triStack) Empty() bool {
	return len(*s) == 0
}
