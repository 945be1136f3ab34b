package delaunay

// Geometric predicates. These are guaranteed to produce consistent results by
// computing conservative error bounds on the floating-point determinants and
// falling back to arbitrary-precision arithmetic when the sign is uncertain
// (PrecisionExact), or clamping uncertain signs to the degenerate answer
// (PrecisionTolerant). Naive comparisons here are what cause flip cycling on
// near-collinear input, so every sign decision goes through the same ladder.

import (
	"math"
	"math/big"
)

// Orientation is the position of a query point relative to a directed edge.
type Orientation int

const (
	Right     Orientation = -1
	Collinear Orientation = 0
	Left      Orientation = 1
)

const (
	// dblEpsilon is the rounding unit of float64 arithmetic (2^-53).
	dblEpsilon = 1.1102230246251565e-16

	// Maximum relative error of the orientation determinant, per Shewchuk's
	// "Adaptive Precision Floating-Point Arithmetic". If the determinant
	// magnitude exceeds orientErrBound times the magnitude sum of its terms,
	// its sign is certain.
	orientErrBound = (3.0 + 16.0*dblEpsilon) * dblEpsilon

	// The same bound for the 4x4 in-circle determinant.
	inCircleErrBound = (10.0 + 96.0*dblEpsilon) * dblEpsilon
)

// newBigFloat constructs a big.Float with maximum precision. At this precision
// the differences and products of float64 inputs are computed without
// rounding, so the determinant signs below are exact.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

// Orient reports whether c lies to the left of, to the right of, or on the
// directed line a->b. Left corresponds to counterclockwise order of (a, b, c).
func Orient(a, b, c Point, prec Precision) Orientation {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	detSum := math.Abs(detLeft) + math.Abs(detRight)
	errBound := orientErrBound * detSum
	if det > errBound {
		return Left
	}
	if det < -errBound {
		return Right
	}
	if prec == PrecisionTolerant {
		return Collinear
	}
	return exactOrient(a, b, c)
}

func exactOrient(a, b, c Point) Orientation {
	acx := newBigFloat().Sub(big.NewFloat(a.X), big.NewFloat(c.X))
	bcy := newBigFloat().Sub(big.NewFloat(b.Y), big.NewFloat(c.Y))
	acy := newBigFloat().Sub(big.NewFloat(a.Y), big.NewFloat(c.Y))
	bcx := newBigFloat().Sub(big.NewFloat(b.X), big.NewFloat(c.X))
	det := newBigFloat().Sub(
		newBigFloat().Mul(acx, bcy),
		newBigFloat().Mul(acy, bcx),
	)
	return Orientation(det.Sign())
}

// InCircumcircle reports whether p lies strictly inside the circumcircle of
// the counterclockwise triangle (a, b, c). Points on the circle are outside.
// In tolerant mode an uncertain determinant reports "not inside", which keeps
// legalization from flipping back and forth across a numerically cocircular
// quad.
func InCircumcircle(a, b, c, p Point, prec Precision) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	bcDet := bx*cy - cx*by
	caDet := cx*ay - ax*cy
	abDet := ax*by - bx*ay
	aLift := ax*ax + ay*ay
	bLift := bx*bx + by*by
	cLift := cx*cx + cy*cy

	det := aLift*bcDet + bLift*caDet + cLift*abDet

	permanent := (math.Abs(bx*cy)+math.Abs(cx*by))*aLift +
		(math.Abs(cx*ay)+math.Abs(ax*cy))*bLift +
		(math.Abs(ax*by)+math.Abs(bx*ay))*cLift
	errBound := inCircleErrBound * permanent
	if det > errBound {
		return true
	}
	if det > -errBound && prec == PrecisionExact {
		return exactInCircumcircle(a, b, c, p) > 0
	}
	return false
}

func exactInCircumcircle(a, b, c, p Point) int {
	px := big.NewFloat(p.X)
	py := big.NewFloat(p.Y)

	diff := func(q Point) (x, y *big.Float) {
		x = newBigFloat().Sub(big.NewFloat(q.X), px)
		y = newBigFloat().Sub(big.NewFloat(q.Y), py)
		return x, y
	}
	ax, ay := diff(a)
	bx, by := diff(b)
	cx, cy := diff(c)

	mul := func(x, y *big.Float) *big.Float { return newBigFloat().Mul(x, y) }
	sub := func(x, y *big.Float) *big.Float { return newBigFloat().Sub(x, y) }
	add := func(x, y *big.Float) *big.Float { return newBigFloat().Add(x, y) }

	bcDet := sub(mul(bx, cy), mul(cx, by))
	caDet := sub(mul(cx, ay), mul(ax, cy))
	abDet := sub(mul(ax, by), mul(bx, ay))
	aLift := add(mul(ax, ax), mul(ay, ay))
	bLift := add(mul(bx, bx), mul(by, by))
	cLift := add(mul(cx, cx), mul(cy, cy))

	det := add(add(mul(aLift, bcDet), mul(bLift, caDet)), mul(cLift, abDet))
	return det.Sign()
}

// SignedArea is twice the signed area of triangle (a, b, c); positive for
// counterclockwise winding.
func SignedArea(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// pointInTriangle reports whether p lies inside or on the boundary of the
// counterclockwise triangle (a, b, c).
func pointInTriangle(a, b, c, p Point, prec Precision) bool {
	return Orient(a, b, p, prec) != Right &&
		Orient(b, c, p, prec) != Right &&
		Orient(c, a, p, prec) != Right
}

// onSegment reports whether p, already known to be collinear with the segment
// (a, b), lies strictly between its endpoints.
func onSegment(a, b, p Point) bool {
	if math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y) {
		if a.X < b.X {
			return a.X < p.X && p.X < b.X
		}
		return b.X < p.X && p.X < a.X
	}
	if a.Y < b.Y {
		return a.Y < p.Y && p.Y < b.Y
	}
	return b.Y < p.Y && p.Y < a.Y
}
