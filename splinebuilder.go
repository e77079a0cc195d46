package ink

import (
	"honnef.co/go/curve"
)

// SplineBuilder fits a [Spline] to a stroke while it is being drawn. It feeds
// points to a [CurveBuilder] and applies the reported changes to the spline,
// so that the spline can be sampled by arc length at any time.
type SplineBuilder struct {
	builder *CurveBuilder
	spline  *Spline
}

// NewSplineBuilder returns a spline builder. The arguments have the same
// meaning as those of [NewCurveBuilder] and [NewSpline].
func NewSplineBuilder(pointDistance, maxError float64, samplesPerCurve int) *SplineBuilder {
	return &SplineBuilder{
		builder: NewCurveBuilder(pointDistance, maxError),
		spline:  NewSpline(samplesPerCurve),
	}
}

// Spline returns the spline. It reflects all points added so far and must not
// be modified by the caller.
func (sb *SplineBuilder) Spline() *Spline { return sb.spline }

// Builder returns the underlying curve builder.
func (sb *SplineBuilder) Builder() *CurveBuilder { return sb.builder }

// Add adds a point to the stroke and reports which curves changed, in the
// same way as [CurveBuilder.AddPoint].
func (sb *SplineBuilder) Add(pt curve.Point) Delta {
	d := sb.builder.AddPoint(pt)
	if !d.Changed() {
		return d
	}
	for i := d.FirstChanged(); i < sb.builder.Len(); i++ {
		c := sb.builder.Curve(i)
		if i < sb.spline.Len() {
			sb.spline.Update(i, c)
		} else {
			sb.spline.Add(c)
		}
	}
	assert(sb.spline.Len() == sb.builder.Len(), "spline and builder disagree on the number of curves")
	return d
}

// Clear resets the builder and the spline so that they can be used for a new
// stroke.
func (sb *SplineBuilder) Clear() {
	sb.builder.Clear()
	sb.spline.Clear()
	tracer().Debugf("spline builder: cleared")
}
