package holes

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/archgeo/polygonize/internal/geom"
)

// simdEdgeThreshold is the minimum edge count at which batching the
// ray-casting point-in-polygon test pays for its setup cost. Below it,
// geom.Ring.ContainsPoint's plain scalar loop is used directly.
const simdEdgeThreshold = 64

// batchContainsPoint runs the even-odd ray-casting containment test for
// (qx, qy) against the ring described by SoA edge-endpoint arrays, vector
// lane by vector lane.
//
// Each edge contributes an indicator via arithmetic rather than boolean
// masking, since IfThenElse and GreaterEqual are the only predicate tools
// used elsewhere in the pack's SIMD code: d = (yi>=y ? 1 : 0) - (yj>=y ? 1
// : 0) is zero when both endpoints are on the same side of y and +-1 when
// they straddle it, so d*d is 1 exactly on a crossing edge. That crossing
// indicator is then multiplied by a second 0/1 indicator for whether the
// edge's x-intercept lies at or past qx, and every edge's product is
// summed; an odd total means qx,qy is inside.
//
// This uses >= on both sides of the straddle test (the scalar version in
// geom.Ring.ContainsPoint uses a strict, asymmetric comparison), which can
// only disagree with the scalar result for a query point landing exactly
// on a ring vertex's latitude — negligible for the large rings this path
// is reserved for.
func batchContainsPoint[T hwy.Floats](xi, yi, xj, yj []T, qx, qy T) bool {
	n := min(len(xi), len(yi), len(xj), len(yj))
	if n == 0 {
		return false
	}

	vQX := hwy.Set(qx)
	vQY := hwy.Set(qy)
	vZero := hwy.Set(T(0))
	vOne := hwy.Set(T(1))

	total := vZero

	hwy.ProcessWithTail[T](n,
		func(offset int) {
			vYi := hwy.Load(yi[offset:])
			vYj := hwy.Load(yj[offset:])
			vXi := hwy.Load(xi[offset:])
			vXj := hwy.Load(xj[offset:])

			total = hwy.Add(total, edgeContribution(vXi, vYi, vXj, vYj, vQX, vQY, vZero, vOne))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vYi := hwy.MaskLoad(mask, yi[offset:])
			vYj := hwy.MaskLoad(mask, yj[offset:])
			vXi := hwy.MaskLoad(mask, xi[offset:])
			vXj := hwy.MaskLoad(mask, xj[offset:])

			contribution := edgeContribution(vXi, vYi, vXj, vYj, vQX, vQY, vZero, vOne)
			total = hwy.Add(total, hwy.IfThenElse(mask, contribution, vZero))
		},
	)

	crossings := int64(math.Round(float64(hwy.ReduceSum(total))))
	return crossings%2 != 0
}

func edgeContribution[T hwy.Floats](vXi, vYi, vXj, vYj, vQX, vQY, vZero, vOne T) T {
	yiAbove := hwy.IfThenElse(hwy.GreaterEqual(vYi, vQY), vOne, vZero)
	yjAbove := hwy.IfThenElse(hwy.GreaterEqual(vYj, vQY), vOne, vZero)
	straddle := hwy.Sub(yiAbove, yjAbove)
	crossing := hwy.Mul(straddle, straddle)

	// A horizontal edge (yi == yj) never straddles qy, so crossing is
	// always 0 there, but it would make the intercept division below a
	// 0/0. Bias the denominator away from exactly zero whenever the edge
	// isn't crossing; the resulting intercept is garbage but gets
	// multiplied by crossing=0 either way, so it never reaches the sum.
	denom := hwy.Sub(vYj, vYi)
	denom = hwy.Add(denom, hwy.Sub(vOne, crossing))

	t := hwy.Div(hwy.Sub(vQY, vYi), denom)
	xIntersect := hwy.FMA(t, hwy.Sub(vXj, vXi), vXi)

	pastQX := hwy.IfThenElse(hwy.GreaterEqual(xIntersect, vQX), vOne, vZero)
	return hwy.Mul(crossing, pastQX)
}

// ringEdgeArrays unpacks a ring's consecutive vertex pairs into the SoA
// layout batchContainsPoint expects.
func ringEdgeArrays(r geom.Ring) (xi, yi, xj, yj []float64) {
	n := len(r)
	if n < 2 {
		return nil, nil, nil, nil
	}
	xi = make([]float64, n-1)
	yi = make([]float64, n-1)
	xj = make([]float64, n-1)
	yj = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		xi[i], yi[i] = r[i].X, r[i].Y
		xj[i], yj[i] = r[i+1].X, r[i+1].Y
	}
	return xi, yi, xj, yj
}

// containsPoint picks the scalar or SIMD path by edge count.
func containsPoint(r geom.Ring, x, y float64) bool {
	if len(r)-1 < simdEdgeThreshold {
		return r.ContainsPoint(x, y)
	}
	xi, yi, xj, yj := ringEdgeArrays(r)
	return batchContainsPoint(xi, yi, xj, yj, x, y)
}
