package ink

import (
	"math"

	"honnef.co/go/curve"
)

const (
	// maxIterations is the number of reparameterization passes after the
	// initial chord length fit.
	maxIterations = 4
	// endTangentPoints is the number of points considered when estimating
	// the tangent at either end of a stroke.
	endTangentPoints = 8
	// midTangentPoints is the number of points considered on each side of a
	// split point when estimating the tangent there.
	midTangentPoints = 4
)

// FitResult is the outcome of fitting a single cubic to a range of points.
type FitResult struct {
	// Curve is the best curve that was found, the one with the smallest
	// maximum error over all refinement passes. It starts at the first point
	// of the range and ends at the last one.
	Curve curve.CubicBez
	// OK reports whether every point of the range is within the tolerance of
	// the curve.
	OK bool
	// Split is the index of the point with the largest error from Curve,
	// where the range should be divided. It is only meaningful if OK is
	// false, and never names the first or last point of the range.
	Split int
}

// fitter holds the point stream of a single fit operation or stroke: the
// points, their cumulative arc lengths and the parameterization of the
// segment that is currently being fit.
type fitter struct {
	pts          []curve.Point
	arclen       []float64
	u            []float64
	squaredError float64
}

func newFitter(pts []curve.Point, tolerance float64) *fitter {
	f := &fitter{
		pts:          pts,
		arclen:       make([]float64, len(pts)),
		squaredError: tolerance * tolerance,
	}
	for i := 1; i < len(pts); i++ {
		f.arclen[i] = f.arclen[i-1] + pts[i].Distance(pts[i-1])
	}
	return f
}

// FitCubic fits a single cubic Bézier to pts.
//
// tanL is the unit tangent leaving the first point, tanR the unit tangent
// leaving the last point, pointing back into the curve. The curve starts and
// ends exactly at the first and last point. With only two points, the
// control points are placed along the tangents at a third of the distance
// between them and the fit always succeeds.
//
// FitCubic panics if pts has fewer than two points or tolerance is not
// positive.
func FitCubic(pts []curve.Point, tanL, tanR curve.Vec2, tolerance float64) FitResult {
	if len(pts) < 2 {
		panic("ink: FitCubic needs at least two points")
	}
	checkTolerance("tolerance", tolerance)
	return newFitter(pts, tolerance).fitCurve(0, len(pts)-1, tanL, tanR)
}

// fitCurve fits a single cubic to pts[first:last+1]. The returned split index
// is absolute.
func (f *fitter) fitCurve(first, last int, tanL, tanR curve.Vec2) FitResult {
	n := last - first + 1
	if n < 2 {
		panic("ink: fitting a curve needs at least two points")
	}
	if n == 2 {
		return FitResult{
			Curve: wuBarsky(f.pts[first], f.pts[last], tanL, tanR),
			OK:    true,
		}
	}

	f.chordLengthParameterize(first, last)
	var c curve.CubicBez
	var best FitResult
	bestErr := math.Inf(1)
	for i := range maxIterations + 1 {
		if i != 0 {
			f.reparameterize(first, last, c)
		}
		c = f.generateBezier(first, last, tanL, tanR)
		err2, split := f.maxSquaredError(first, last, c)
		if err2 < f.squaredError {
			return FitResult{Curve: c, OK: true}
		}
		// Reparameterization doesn't always improve the fit.
		if i == 0 || err2 < bestErr {
			best = FitResult{Curve: c, Split: split}
			bestErr = err2
		}
	}
	return best
}

// chordLengthParameterize assigns each point of the range a parameter
// proportional to its distance along the polyline. The parameters are
// relative to first; u[0] belongs to pts[first].
func (f *fitter) chordLengthParameterize(first, last int) {
	n := last - first + 1
	// Reset the scratch space of the previous fit.
	f.u = f.u[:0]
	start := f.arclen[first]
	total := f.arclen[last] - start
	for i := range n {
		var t float64
		if total > epsilon {
			t = (f.arclen[first+i] - start) / total
		} else {
			t = float64(i) / float64(n-1)
		}
		f.u = append(f.u, t)
	}
	f.u[0] = 0
	f.u[n-1] = 1
}

// reparameterize moves the parameter of every interior point one
// Newton-Raphson step closer to the parameter of its nearest point on c.
// Steps that are numerically unstable or that leave [0, 1] are rejected.
func (f *fitter) reparameterize(first, last int, c curve.CubicBez) {
	d1 := c.Differentiate()
	d2 := d1.Differentiate()
	for i := 1; i < last-first; i++ {
		t := f.u[i]
		diff := c.Eval(t).Sub(f.pts[first+i])
		q1 := curve.Vec2(d1.Eval(t))
		q2 := curve.Vec2(d2.Eval(t))
		num := diff.Dot(q1)
		den := q1.Hypot2() + diff.Dot(q2)
		if math.Abs(den) < epsilon {
			continue
		}
		if nt := t - num/den; nt >= 0 && nt <= 1 {
			f.u[i] = nt
		}
	}
}

// generateBezier finds the lengths of the two tangents that minimize the
// squared distance between each point and the curve evaluated at the point's
// parameter.
func (f *fitter) generateBezier(first, last int, tanL, tanR curve.Vec2) curve.CubicBez {
	p0, p3 := f.pts[first], f.pts[last]

	// C is symmetric, c01 doubles as c10.
	var c00, c01, c11, x0, x1 float64
	for i := 1; i < last-first+1; i++ {
		t := f.u[i]
		mt := 1 - t
		b0 := mt * mt * mt
		b1 := 3 * mt * mt * t
		b2 := 3 * mt * t * t
		b3 := t * t * t

		a0 := tanL.Mul(b1)
		a1 := tanR.Mul(b2)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)

		// The curve with both tangents of length zero.
		base := curve.Vec2(p0).Mul(b0 + b1).Add(curve.Vec2(p3).Mul(b2 + b3))
		v := curve.Vec2(f.pts[first+i]).Sub(base)
		x0 += a0.Dot(v)
		x1 += a1.Dot(v)
	}

	det := c00*c11 - c01*c01
	if math.Abs(det) > epsilon {
		alphaL := (x0*c11 - x1*c01) / det
		alphaR := (c00*x1 - c01*x0) / det
		// Very short or negative tangents produce coincident control points,
		// on which reparameterization divides by zero.
		minAlpha := 1e-6 * p0.Distance(p3)
		if alphaL >= minAlpha && alphaR >= minAlpha {
			return curve.CubicBez{
				P0: p0,
				P1: p0.Translate(tanL.Mul(alphaL)),
				P2: p3.Translate(tanR.Mul(alphaR)),
				P3: p3,
			}
		}
	}
	return wuBarsky(p0, p3, tanL, tanR)
}

// maxSquaredError returns the largest squared distance between a point and
// the curve at that point's parameter, and the absolute index of the point,
// kept away from the ends of the range.
func (f *fitter) maxSquaredError(first, last int, c curve.CubicBez) (float64, int) {
	n := last - first + 1
	split := first + n/2
	var maxErr float64
	for i := 1; i < n; i++ {
		if d := f.pts[first+i].DistanceSquared(c.Eval(f.u[i])); d > maxErr {
			maxErr = d
			split = first + i
		}
	}
	return maxErr, clamp(split, first+1, last-1)
}
