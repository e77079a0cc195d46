package ink

import (
	"fmt"
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// DeltaKind describes how the curves of a [CurveBuilder] changed.
type DeltaKind int

const (
	// No curve changed.
	NoChange DeltaKind = iota
	// The curve at the delta's index was replaced. It is always the last
	// curve.
	Replaced
	// One or more curves were appended, starting at the delta's index. The
	// curve before the index, if any, was refit as well.
	Added
)

// Delta describes the change caused by adding points to a [CurveBuilder].
type Delta struct {
	Kind DeltaKind
	// Index is the replaced curve, or the first appended one. It is
	// meaningless for NoChange.
	Index int
}

func (d Delta) String() string {
	switch d.Kind {
	case NoChange:
		return "NoChange"
	case Replaced:
		return fmt.Sprintf("Replaced(%d)", d.Index)
	case Added:
		return fmt.Sprintf("Added(%d)", d.Index)
	default:
		return "InvalidDelta"
	}
}

// Changed reports whether any curve changed.
func (d Delta) Changed() bool {
	return d.Kind != NoChange
}

// FirstChanged returns the index of the first curve that differs from before
// the change. Curves from this index onward have to be redrawn. It returns -1
// for NoChange.
func (d Delta) FirstChanged() int {
	switch d.Kind {
	case Replaced:
		return d.Index
	case Added:
		return max(d.Index-1, 0)
	default:
		return -1
	}
}

// merge combines two consecutive deltas into one that covers both.
func (d Delta) merge(o Delta) Delta {
	switch {
	case d.Kind == NoChange:
		return o
	case o.Kind == NoChange:
		return d
	case d.Kind == Added && o.Kind == Added:
		return Delta{Kind: Added, Index: min(d.Index, o.Index)}
	case d.Kind == Added:
		// o replaced the curve that d appended, or one after it.
		return d
	case o.Kind == Added:
		// d replaced the curve that o split.
		return o
	default:
		return Delta{Kind: Replaced, Index: min(d.Index, o.Index)}
	}
}

// CurveBuilder fits curves to a stroke while it is being drawn.
//
// Input points are resampled to be exactly PointDistance apart. Every
// resampled point extends the last curve of the stroke, or, if the extended
// curve no longer fits, splits it in two. Curves before the last two are never
// touched again, which bounds the work per point and keeps the start of a
// stroke from visibly moving while its end is being drawn.
//
// The zero value is not usable; use [NewCurveBuilder].
type CurveBuilder struct {
	fitter
	pointDistance float64
	curves        []curve.CubicBez

	// prev is the last resampled point.
	prev curve.Point
	// first is the index of the first point of the last curve.
	first int
	// tanL is the left tangent of the last curve.
	tanL        curve.Vec2
	totalLength float64
}

// NewCurveBuilder returns a builder that resamples its input every
// pointDistance units and fits curves to within maxError of the resampled
// points. It panics if either argument is not positive.
func NewCurveBuilder(pointDistance, maxError float64) *CurveBuilder {
	checkTolerance("point distance", pointDistance)
	checkTolerance("maximum error", maxError)
	return &CurveBuilder{
		fitter:        fitter{squaredError: maxError * maxError},
		pointDistance: pointDistance,
	}
}

// PointDistance returns the distance between resampled points.
func (b *CurveBuilder) PointDistance() float64 { return b.pointDistance }

// Len returns the number of curves.
func (b *CurveBuilder) Len() int { return len(b.curves) }

// Curve returns the i'th curve.
func (b *CurveBuilder) Curve(i int) curve.CubicBez { return b.curves[i] }

// Curves returns an iterator over the current curves.
func (b *CurveBuilder) Curves() iter.Seq[curve.CubicBez] {
	return slices.Values(b.curves)
}

// Points returns an iterator over the resampled points.
func (b *CurveBuilder) Points() iter.Seq[curve.Point] {
	return slices.Values(b.pts)
}

// Length returns the length of the resampled polyline.
func (b *CurveBuilder) Length() float64 { return b.totalLength }

// Clear resets the builder so that it can be used for a new stroke.
func (b *CurveBuilder) Clear() {
	b.pts = b.pts[:0]
	b.arclen = b.arclen[:0]
	b.u = b.u[:0]
	b.curves = b.curves[:0]
	b.prev = curve.Point{}
	b.first = 0
	b.tanL = curve.Vec2{}
	b.totalLength = 0
}

// AddPoint adds a point to the stroke and reports which curves changed.
//
// The very first point only starts the stroke. Afterwards, points are placed
// every PointDistance units along the line from the last placed point to pt;
// no point is placed until pt is more than PointDistance away from it, in
// which case AddPoint reports NoChange.
func (b *CurveBuilder) AddPoint(pt curve.Point) Delta {
	if len(b.pts) == 0 {
		b.pts = append(b.pts, pt)
		b.arclen = append(b.arclen, 0)
		b.prev = pt
		return Delta{}
	}

	md := b.pointDistance
	remaining := b.prev.Distance(pt)
	if !(remaining > md) {
		return Delta{}
	}
	dir := direction(b.prev, pt)
	var d Delta
	for remaining > md {
		b.prev = b.prev.Translate(dir.Mul(md))
		d = d.merge(b.addInternal(b.prev))
		remaining -= md
	}
	return d
}

func (b *CurveBuilder) addInternal(np curve.Point) Delta {
	last := len(b.pts)
	assert(last != 0, "builder has no starting point")
	b.pts = append(b.pts, np)
	b.totalLength += b.pointDistance
	b.arclen = append(b.arclen, b.totalLength)

	if last == 1 {
		assert(len(b.curves) == 0, "second point with existing curves")
		p0 := b.pts[0]
		b.tanL = direction(p0, np)
		b.curves = append(b.curves, wuBarsky(p0, np, b.tanL, b.tanL.Negate()))
		return Delta{Kind: Added, Index: 0}
	}

	lastCurve := len(b.curves) - 1
	first := b.first

	// The first curve's left tangent improves with every point, until the
	// stroke leaves its estimation window.
	if lastCurve == 0 && last <= endTangentPoints+1 {
		b.tanL = b.leftTangent(last)
	}
	tanL := b.tanL
	tanR := b.rightTangent(first)

	res := b.fitCurve(first, last, tanL, tanR)
	if res.OK {
		b.curves[lastCurve] = res.Curve
		return Delta{Kind: Replaced, Index: lastCurve}
	}

	split := res.Split
	tanM1 := b.centerTangent(first, last, split)
	tanM2 := tanM1.Negate()
	if first == 0 && split < endTangentPoints {
		tanL = b.leftTangent(split)
	}

	// Either half may exceed the tolerance. This is the last chance to fit
	// the left half; the right one will be refit as points arrive.
	b.curves[lastCurve] = b.fitCurve(first, split, tanL, tanM1).Curve
	b.curves = append(b.curves, b.fitCurve(split, last, tanM2, tanR).Curve)
	b.first = split
	b.tanL = tanM2
	tracer().Debugf("builder: split curve %d at point %d", lastCurve, split)
	return Delta{Kind: Added, Index: lastCurve + 1}
}
