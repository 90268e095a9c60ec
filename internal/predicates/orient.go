// Package predicates provides the robust geometric primitives the rest of
// the pipeline treats as ground truth: orientation and segment
// intersection. Both use a fast floating-point path with an error bound,
// falling back to a compensated (double-double) recomputation when the
// fast result is too close to zero to trust — the same fast/exact split
// used by adaptive orientation predicates generally (see the Orient2D/
// InCircle/SegmentIntersect shapes this package mirrors).
package predicates

import "github.com/archgeo/polygonize/internal/geom"

// Orientation is the sign of the turn from p to q to r.
type Orientation int

const (
	Collinear Orientation = 0
	Left      Orientation = 1
	Right     Orientation = -1
)

// Orient returns the orientation of the ordered triple (p, q, r): Left if
// r is to the left of the directed line p->q, Right if to the right,
// Collinear if the three points lie on one line. A fast floating-point
// determinant is computed first; its sign is used when it clears its own
// rounding-error bound. Otherwise the determinant is recomputed with
// compensated arithmetic (see orient2DExact), which is accurate to a few
// ULPs but not exact, so the sign of a nearly collinear triple is not
// guaranteed.
func Orient(p, q, r geom.Coordinate) Orientation {
	det, bound := orient2DFast(p, q, r)
	if det > bound || det < -bound {
		return signOf(det)
	}
	return signOf(orient2DExact(p, q, r))
}

// orient2DFast computes (q-p) x (r-p) and a conservative error bound on
// that computation (proportional to the magnitudes involved, following the
// standard relative-error-bound style used in adaptive predicates: a
// result whose absolute value exceeds the bound has a trustworthy sign).
func orient2DFast(p, q, r geom.Coordinate) (det, bound float64) {
	qpx, qpy := q.X-p.X, q.Y-p.Y
	rpx, rpy := r.X-p.X, r.Y-p.Y
	det = qpx*rpy - qpy*rpx

	absSum := absF(qpx*rpy) + absF(qpy*rpx)
	// Relative error bound for two multiplications and a subtraction in
	// IEEE double precision (machine epsilon ~2.22e-16, with headroom for
	// the accumulated rounding of the subtraction itself).
	const epsBound = 3.3306690738754716e-16
	bound = epsBound * absSum
	return det, bound
}

// orient2DExact recomputes the same determinant using Kahan-compensated
// products and summation, trading speed for a result accurate to within a
// few ULPs even when orient2DFast's bound could not certify the sign.
func orient2DExact(p, q, r geom.Coordinate) float64 {
	qpx, qpy := q.X-p.X, q.Y-p.Y
	rpx, rpy := r.X-p.X, r.Y-p.Y

	a, aErr := twoProduct(qpx, rpy)
	b, bErr := twoProduct(qpy, rpx)

	// det = a - b, with both products carrying their rounding error terms.
	sum, sumErr := twoSum(a, -b)
	return sum + (sumErr + aErr - bErr)
}

// twoProduct returns x*y along with the rounding error of that
// multiplication, using Dekker's splitting technique.
func twoProduct(x, y float64) (product, err float64) {
	product = x * y
	const splitter = 134217729.0 // 2^27 + 1
	cx := splitter * x
	bigX := cx - (cx - x)
	smallX := x - bigX
	cy := splitter * y
	bigY := cy - (cy - y)
	smallY := y - bigY
	err = ((bigX*bigY - product) + bigX*smallY + smallX*bigY) + smallX*smallY
	return product, err
}

// twoSum returns x+y along with the rounding error of that addition.
func twoSum(x, y float64) (sum, err float64) {
	sum = x + y
	v := sum - x
	err = (x - (sum - v)) + (y - v)
	return sum, err
}

func signOf(v float64) Orientation {
	switch {
	case v > 0:
		return Left
	case v < 0:
		return Right
	default:
		return Collinear
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
