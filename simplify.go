package ink

import (
	"fmt"

	"honnef.co/go/curve"
)

// RemoveDuplicates returns pts without points that are equal to their
// predecessor, give or take rounding errors. The result shares its backing
// array with pts if no point had to be removed.
func RemoveDuplicates(pts []curve.Point) []curve.Point {
	for i := 1; i < len(pts); i++ {
		if !pointsClose(pts[i-1], pts[i]) {
			continue
		}
		out := make([]curve.Point, i, len(pts)-1)
		copy(out, pts[:i])
		for _, pt := range pts[i+1:] {
			if !pointsClose(out[len(out)-1], pt) {
				out = append(out, pt)
			}
		}
		return out
	}
	return pts
}

// Linearize resamples a polyline so that consecutive points are spacing
// apart, measured along the polyline. The first point is kept. The last point
// is kept as well, which makes the final distance shorter than spacing,
// unless it coincides with the last resampled point.
//
// Linearize panics if spacing is not a positive number.
func Linearize(pts []curve.Point, spacing float64) []curve.Point {
	checkTolerance("spacing", spacing)
	if len(pts) == 0 {
		return nil
	}

	out := []curve.Point{pts[0]}
	prev := pts[0]
	// carried is the distance walked since the last emitted point.
	var carried float64
	for _, pt := range pts[1:] {
		segLen := prev.Distance(pt)
		if segLen <= epsilon {
			continue
		}
		dir := pt.Sub(prev).Mul(1 / segLen)
		// Distance along this segment to the next emitted point.
		d := spacing - carried
		for d <= segLen {
			out = append(out, prev.Translate(dir.Mul(d)))
			d += spacing
		}
		carried = segLen - (d - spacing)
		prev = pt
	}
	if last := pts[len(pts)-1]; !pointsClose(out[len(out)-1], last) {
		out = append(out, last)
	}
	return out
}

// Simplify reduces the number of points in a polyline while keeping its shape
// within tolerance.
//
// Unless highestQuality is set, points closer than tolerance to the last kept
// point are dropped first, which is fast and removes most of the points of
// densely sampled input. The remaining points are reduced with the
// Douglas-Peucker algorithm. The result is a subsequence of pts that always
// includes its first and last point.
func Simplify(pts []curve.Point, tolerance float64, highestQuality bool) []curve.Point {
	indices := SimplifyIndices(pts, tolerance, highestQuality)
	out := make([]curve.Point, len(indices))
	for i, idx := range indices {
		out[i] = pts[idx]
	}
	return out
}

// SimplifyIndices is like [Simplify] but returns the indices of the points
// that are kept, in increasing order.
func SimplifyIndices(pts []curve.Point, tolerance float64, highestQuality bool) []int {
	if !(tolerance >= 0) {
		panic(fmt.Sprintf("ink: simplification tolerance must not be negative, got %g", tolerance))
	}
	if len(pts) <= 2 {
		out := make([]int, len(pts))
		for i := range out {
			out[i] = i
		}
		return out
	}

	sqTolerance := tolerance * tolerance
	var candidates []int
	if highestQuality {
		candidates = make([]int, len(pts))
		for i := range candidates {
			candidates[i] = i
		}
	} else {
		candidates = radialDistance(pts, sqTolerance)
	}
	return douglasPeucker(pts, candidates, sqTolerance)
}

// radialDistance returns the indices of the points that are further than
// the tolerance from the previously kept point. The last point is always
// kept.
func radialDistance(pts []curve.Point, sqTolerance float64) []int {
	out := []int{0}
	prev := pts[0]
	for i := 1; i < len(pts); i++ {
		if pts[i].DistanceSquared(prev) > sqTolerance {
			out = append(out, i)
			prev = pts[i]
		}
	}
	if last := len(pts) - 1; out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}

// douglasPeucker reduces the candidate points of pts. Ranges are processed
// from an explicit stack instead of by recursion.
func douglasPeucker(pts []curve.Point, candidates []int, sqTolerance float64) []int {
	n := len(candidates)
	if n <= 2 {
		return candidates
	}
	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true
	kept := 2

	stack := []int{0, n - 1}
	for len(stack) > 0 {
		first, last := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		chord := curve.Line{P0: pts[candidates[first]], P1: pts[candidates[last]]}
		maxDist := sqTolerance
		index := -1
		for i := first + 1; i < last; i++ {
			if d, _ := chord.Nearest(pts[candidates[i]], 0); d > maxDist {
				maxDist = d
				index = i
			}
		}
		if index == -1 {
			continue
		}
		keep[index] = true
		kept++
		if index-first > 1 {
			stack = append(stack, first, index)
		}
		if last-index > 1 {
			stack = append(stack, index, last)
		}
	}

	out := make([]int, 0, kept)
	for i, k := range keep {
		if k {
			out = append(out, candidates[i])
		}
	}
	return out
}
