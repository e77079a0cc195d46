package ink

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"

	"honnef.co/go/curve"
)

const (
	// MinSamplesPerCurve is the smallest number of arc length samples per
	// curve that a [Spline] accepts.
	MinSamplesPerCurve = 8
	// MaxSamplesPerCurve is the largest number of arc length samples per
	// curve that a [Spline] accepts.
	MaxSamplesPerCurve = 1024
)

// SamplePos identifies a point on a [Spline] by the index of a curve and a
// parameter on that curve.
type SamplePos struct {
	Index int
	T     float64
}

// Spline is an ordered chain of cubic Béziers that can be sampled by arc
// length.
//
// For every curve, the spline stores the cumulative length of the chain at a
// fixed number of evenly spaced parameters. Converting a fraction of the
// total length into a curve and parameter is a binary search over that table,
// followed by linear interpolation between the two bracketing samples. As a
// result, sampling at evenly spaced fractions yields points that are evenly
// spaced along the chain, which the curves' own parameters do not.
type Spline struct {
	curves          []curve.CubicBez
	arclen          []float64
	samplesPerCurve int
}

// NewSpline returns an empty spline that samples every curve samplesPerCurve
// times. It panics if samplesPerCurve is outside [MinSamplesPerCurve,
// MaxSamplesPerCurve].
func NewSpline(samplesPerCurve int) *Spline {
	if samplesPerCurve < MinSamplesPerCurve || samplesPerCurve > MaxSamplesPerCurve {
		panic(fmt.Sprintf("ink: samples per curve must be in [%d, %d], got %d",
			MinSamplesPerCurve, MaxSamplesPerCurve, samplesPerCurve))
	}
	return &Spline{samplesPerCurve: samplesPerCurve}
}

// NewSplineFromCurves returns a spline containing the given curves. It panics
// under the same conditions as [NewSpline] and [Spline.Add].
func NewSplineFromCurves(curves []curve.CubicBez, samplesPerCurve int) *Spline {
	s := NewSpline(samplesPerCurve)
	s.curves = make([]curve.CubicBez, 0, len(curves))
	s.arclen = make([]float64, 0, len(curves)*samplesPerCurve)
	for _, c := range curves {
		s.Add(c)
	}
	return s
}

// SamplesPerCurve returns the number of arc length samples per curve.
func (s *Spline) SamplesPerCurve() int { return s.samplesPerCurve }

// Len returns the number of curves.
func (s *Spline) Len() int { return len(s.curves) }

// Curve returns the i'th curve.
func (s *Spline) Curve(i int) curve.CubicBez { return s.curves[i] }

// Curves returns an iterator over the spline's curves.
func (s *Spline) Curves() iter.Seq[curve.CubicBez] {
	return slices.Values(s.curves)
}

// Length returns the approximate length of the spline, which is 0 for an
// empty spline.
func (s *Spline) Length() float64 {
	if len(s.arclen) == 0 {
		return 0
	}
	return s.arclen[len(s.arclen)-1]
}

// Add appends a curve. It panics if the curve doesn't start where the last
// curve ends.
func (s *Spline) Add(c curve.CubicBez) {
	if n := len(s.curves); n > 0 && !pointsClose(s.curves[n-1].P3, c.P0) {
		panic(fmt.Sprintf("ink: curve %d starts at %s, but curve %d ends at %s",
			n, c.P0, n-1, s.curves[n-1].P3))
	}
	s.curves = append(s.curves, c)
	for range s.samplesPerCurve {
		s.arclen = append(s.arclen, 0)
	}
	s.updateArcLengths(len(s.curves) - 1)
}

// Update replaces the i'th curve. It panics if i is out of range, or if the
// new curve doesn't connect to the curves before and after it.
func (s *Spline) Update(i int, c curve.CubicBez) {
	if i < 0 || i >= len(s.curves) {
		panic(fmt.Sprintf("ink: curve index %d out of range [0, %d)", i, len(s.curves)))
	}
	if i > 0 && !pointsClose(s.curves[i-1].P3, c.P0) {
		panic(fmt.Sprintf("ink: curve %d starts at %s, but curve %d ends at %s",
			i, c.P0, i-1, s.curves[i-1].P3))
	}
	if i < len(s.curves)-1 && !pointsClose(s.curves[i+1].P0, c.P3) {
		panic(fmt.Sprintf("ink: curve %d ends at %s, but curve %d starts at %s",
			i, c.P3, i+1, s.curves[i+1].P0))
	}
	s.curves[i] = c
	// Every later curve starts at a different distance now.
	for j := i; j < len(s.curves); j++ {
		s.updateArcLengths(j)
	}
}

// Clear removes all curves.
func (s *Spline) Clear() {
	s.curves = s.curves[:0]
	s.arclen = s.arclen[:0]
}

func (s *Spline) updateArcLengths(i int) {
	n := s.samplesPerCurve
	assert(len(s.arclen) >= (i+1)*n, "arc length table is too short")
	c := s.curves[i]
	var length float64
	if i > 0 {
		length = s.arclen[i*n-1]
	}
	prev := c.P0
	for j := range n {
		pt := c.Eval(float64(j+1) / float64(n))
		length += pt.Distance(prev)
		s.arclen[i*n+j] = length
		prev = pt
	}
}

// SamplePosition returns the curve and parameter at fraction u of the
// spline's length. Values of u outside [0, 1] are clamped. It panics if the
// spline is empty or u is NaN.
func (s *Spline) SamplePosition(u float64) SamplePos {
	if len(s.curves) == 0 {
		panic("ink: sampling an empty spline")
	}
	if math.IsNaN(u) {
		panic("ink: sampling a spline at NaN")
	}
	if u <= 0 {
		return SamplePos{Index: 0, T: 0}
	}
	if u >= 1 {
		return SamplePos{Index: len(s.curves) - 1, T: 1}
	}

	target := u * s.Length()
	// The first sample at or beyond the target. The sample before it, or the
	// start of the spline, is at or before the target.
	k := min(sort.SearchFloat64s(s.arclen, target), len(s.arclen)-1)
	var lo float64
	if k > 0 {
		lo = s.arclen[k-1]
	}
	hi := s.arclen[k]

	n := s.samplesPerCurve
	j := k % n
	t0 := float64(j) / float64(n)
	t1 := float64(j+1) / float64(n)
	var frac float64
	if hi-lo > epsilon {
		frac = clamp((target-lo)/(hi-lo), 0, 1)
	}
	return SamplePos{Index: k / n, T: t0 + frac*(t1-t0)}
}

// DistanceAt returns the distance from the start of the spline to pos, as
// approximated by the arc length table. It is the inverse of
// [Spline.SamplePosition].
func (s *Spline) DistanceAt(pos SamplePos) float64 {
	if pos.Index < 0 || pos.Index >= len(s.curves) {
		panic(fmt.Sprintf("ink: curve index %d out of range [0, %d)", pos.Index, len(s.curves)))
	}
	n := s.samplesPerCurve
	t := clamp(pos.T, 0, 1)
	j := clamp(int(t*float64(n)), 0, n-1)
	k := pos.Index*n + j
	var lo float64
	if k > 0 {
		lo = s.arclen[k-1]
	}
	frac := t*float64(n) - float64(j)
	return lo + frac*(s.arclen[k]-lo)
}

// Sample returns the point at fraction u of the spline's length.
func (s *Spline) Sample(u float64) curve.Point {
	pos := s.SamplePosition(u)
	return s.curves[pos.Index].Eval(pos.T)
}

// Tangent returns the unit tangent at fraction u of the spline's length.
func (s *Spline) Tangent(u float64) curve.Vec2 {
	pos := s.SamplePosition(u)
	return cubicTangent(s.curves[pos.Index], pos.T)
}

// PathElements returns the spline as path elements, for consumption by
// renderers.
func (s *Spline) PathElements() iter.Seq[curve.PathElement] {
	return PathElements(s.Curves())
}

// Path returns the spline as a Bézier path.
func (s *Spline) Path() curve.BezPath {
	return Path(s.curves)
}

// BoundingBoxFrom returns the bounding box of the curves from index i onward.
// Combined with the index of a [Delta], it is the region that has to be
// redrawn after a change. It panics if i is out of range.
func (s *Spline) BoundingBoxFrom(i int) curve.Rect {
	if i < 0 || i >= len(s.curves) {
		panic(fmt.Sprintf("ink: curve index %d out of range [0, %d)", i, len(s.curves)))
	}
	bbox := s.curves[i].BoundingBox()
	for _, c := range s.curves[i+1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}
