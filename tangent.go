package ink

import (
	"honnef.co/go/curve"
)

// The tangent estimates average the directions from an anchor point towards
// its neighbours, weighting each neighbour by the cube of its closeness to the
// anchor, measured in arc length.

// leftTangent estimates the tangent leaving the first point of the stream,
// looking at no point beyond last.
func (f *fitter) leftTangent(last int) curve.Vec2 {
	pts := f.pts
	total := f.arclen[len(f.arclen)-1]
	p0 := pts[0]
	tan := direction(p0, pts[1])
	sum := tan
	weights := 1.0
	for i := 2; i <= min(endTangentPoints, last-1); i++ {
		ti := 1 - f.arclen[i]/total
		w := ti * ti * ti
		sum = sum.Add(direction(p0, pts[i]).Mul(w))
		weights += w
	}
	// Directions in opposite directions cancel out.
	if v, ok := unit(sum.Mul(1 / weights)); ok {
		tan = v
	}
	return tan
}

// rightTangent estimates the tangent leaving the last point of the stream,
// pointing back into it, looking at no point before first.
func (f *fitter) rightTangent(first int) curve.Vec2 {
	pts := f.pts
	n := len(pts)
	total := f.arclen[n-1]
	p3 := pts[n-1]
	tan := direction(p3, pts[n-2])
	sum := tan
	weights := 1.0
	for i := n - 3; i >= max(n-(endTangentPoints+1), first+1); i-- {
		ti := f.arclen[i] / total
		w := ti * ti * ti
		sum = sum.Add(direction(p3, pts[i]).Mul(w))
		weights += w
	}
	if v, ok := unit(sum.Mul(1 / weights)); ok {
		tan = v
	}
	return tan
}

// centerTangent estimates the tangent at an interior split point. The result
// points towards first; the curve starting at split uses its negation, which
// makes the join C1 continuous.
func (f *fitter) centerTangent(first, last, split int) curve.Vec2 {
	assert(first < split && split < last, "split point must be interior")
	pts := f.pts
	splitLen := f.arclen[split]
	ps := pts[split]

	// Approach from the left.
	firstLen := f.arclen[first]
	partLen := splitLen - firstLen
	var sum curve.Vec2
	var weights float64
	for i := max(first, split-midTangentPoints); i < split; i++ {
		ti := (f.arclen[i] - firstLen) / partLen
		w := ti * ti * ti
		sum = sum.Add(direction(ps, pts[i]).Mul(w))
		weights += w
	}
	tanL, ok := unit(sum)
	if !ok || weights <= epsilon {
		tanL = direction(ps, pts[split-1])
	}

	// Approach from the right, flipped to point the same way as tanL.
	partLen = f.arclen[last] - splitLen
	sum = curve.Vec2{}
	weights = 0
	for i := split + 1; i <= min(last, split+midTangentPoints); i++ {
		ti := 1 - (f.arclen[i]-splitLen)/partLen
		w := ti * ti * ti
		sum = sum.Add(direction(pts[i], ps).Mul(w))
		weights += w
	}
	tanR, ok := unit(sum)
	if !ok || weights <= epsilon {
		tanR = direction(pts[split+1], ps)
	}

	if v, ok := unit(tanL.Add(tanR).Mul(0.5)); ok {
		return v
	}
	// The stroke doubles back on itself at the split.
	return tanL
}

// EstimateTangents returns the unit tangents at either end of a polyline, as
// used by [FitPoints]. left leaves the first point; right leaves the last
// point, pointing back along the polyline. Both are the zero vector if pts
// has fewer than two distinct points.
func EstimateTangents(pts []curve.Point) (left, right curve.Vec2) {
	pts = RemoveDuplicates(pts)
	if len(pts) < 2 {
		return curve.Vec2{}, curve.Vec2{}
	}
	f := newFitter(pts, 1)
	return f.leftTangent(len(pts) - 1), f.rightTangent(0)
}
