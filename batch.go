package ink

import (
	"honnef.co/go/curve"
)

// FitPoints fits a chain of cubic Béziers to a finished sequence of points.
//
// Every point lies within maxError of the curve it was assigned to. Adjacent
// curves share their end points exactly and have opposite tangents there,
// making the chain C1 continuous. Consecutive duplicate points are ignored.
//
// FitPoints returns nil if pts contains fewer than two distinct points,
// including when pts is nil or empty; such input is not treated as misuse.
// It panics if maxError is not a positive number.
func FitPoints(pts []curve.Point, maxError float64) []curve.CubicBez {
	checkTolerance("maximum error", maxError)
	pts = RemoveDuplicates(pts)
	if len(pts) < 2 {
		return nil
	}

	bf := batchFitter{fitter: newFitter(pts, maxError)}
	last := len(pts) - 1
	bf.fitRecursive(0, last, bf.leftTangent(last), bf.rightTangent(0))
	return bf.out
}

// FitPolyline compresses a polyline, such as the raw samples of a stroke,
// into a chain of cubic Béziers. The points are resampled at
// opts.PointSpacing and, if opts.SimplifyTolerance is positive, reduced with
// [Simplify] before they are fit with [FitPoints] using opts.Tolerance.
func FitPolyline(pts []curve.Point, opts Options) []curve.CubicBez {
	pts = RemoveDuplicates(pts)
	if len(pts) < 2 {
		return nil
	}
	if opts.PointSpacing > 0 {
		pts = Linearize(pts, opts.PointSpacing)
	}
	if opts.SimplifyTolerance > 0 {
		pts = Simplify(pts, opts.SimplifyTolerance, false)
	}
	return FitPoints(pts, opts.Tolerance)
}

type batchFitter struct {
	*fitter
	out []curve.CubicBez
}

func (bf *batchFitter) fitRecursive(first, last int, tanL, tanR curve.Vec2) {
	res := bf.fitCurve(first, last, tanL, tanR)
	if res.OK {
		bf.out = append(bf.out, res.Curve)
		return
	}

	split := res.Split
	tanM1 := bf.centerTangent(first, last, split)
	tanM2 := tanM1.Negate()

	// The end tangents may have been estimated from points that now belong
	// to the other half. Mid tangents can suffer from the same problem, but
	// they are shared by both halves and must stay as they are.
	if first == 0 && split < endTangentPoints {
		tanL = bf.leftTangent(split)
	}
	if n := len(bf.pts); last == n-1 && split > n-(endTangentPoints+1) {
		tanR = bf.rightTangent(split)
	}
	tracer().Debugf("fit: splitting [%d, %d] at %d", first, last, split)

	bf.fitRecursive(first, split, tanL, tanM1)
	bf.fitRecursive(split, last, tanM2, tanR)
}
