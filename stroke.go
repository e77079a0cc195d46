package ink

import (
	"iter"

	"honnef.co/go/curve"
)

// Stroke fits a single pointer stroke, from pointer down to pointer up.
//
// Raw pointer samples are passed through a [LazyBrush], if enabled, and the
// brush positions are fed to a [SplineBuilder]. The raw samples are kept so
// that the finished stroke can be refit in one go with [Stroke.Compress].
type Stroke struct {
	opts   Options
	lazy   *LazyBrush
	sb     *SplineBuilder
	raw    []curve.Point
	last   option[curve.Point]
	active bool
}

// NewStroke returns a stroke configured by opts. It returns an error if opts
// doesn't validate.
func NewStroke(opts Options) (*Stroke, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Stroke{
		opts: opts,
		sb:   NewSplineBuilder(opts.PointSpacing, opts.Tolerance, opts.SamplesPerCurve),
	}
	if opts.Stabilize {
		s.lazy = NewLazyBrush(opts.LazyMultiplier)
	}
	return s, nil
}

func (s *Stroke) Options() Options { return s.opts }

// Active reports whether the stroke has begun and not yet ended.
func (s *Stroke) Active() bool { return s.active }

// Spline returns the spline fit so far.
func (s *Stroke) Spline() *Spline { return s.sb.Spline() }

// Raw returns the raw pointer samples. The slice must not be modified.
func (s *Stroke) Raw() []curve.Point { return s.raw }

// Begin starts the stroke at pt. It panics if the stroke is active.
func (s *Stroke) Begin(pt curve.Point) Delta {
	if s.active {
		panic("ink: Begin called on an active stroke")
	}
	s.sb.Clear()
	s.raw = s.raw[:0]
	s.last.clear()
	s.active = true
	if s.lazy != nil {
		s.lazy.ForceBrush(pt)
	}
	s.record(pt)
	tracer().Debugf("stroke: begin at %s", pt)
	return s.sb.Add(pt)
}

// Move moves the pointer to pt. It panics unless the stroke is active.
func (s *Stroke) Move(pt curve.Point) Delta {
	if !s.active {
		panic("ink: Move called on an inactive stroke")
	}
	if !s.record(pt) {
		return Delta{}
	}
	if s.lazy == nil {
		return s.sb.Add(pt)
	}
	if !s.lazy.Update(pt) {
		return Delta{}
	}
	return s.sb.Add(s.lazy.Brush())
}

// Idle lets the brush catch up with a resting pointer. It is meant to be
// called once per frame while no pointer samples arrive. Without a stabilizer,
// or outside of a stroke, it does nothing.
func (s *Stroke) Idle() Delta {
	if !s.active || s.lazy == nil {
		return Delta{}
	}
	if !s.lazy.Update(s.lazy.Pointer()) {
		return Delta{}
	}
	return s.sb.Add(s.lazy.Brush())
}

// End finishes the stroke at pt. The brush is moved onto the pointer, so the
// stroke extends as far as the input does, give or take the point spacing.
// It panics unless the stroke is active.
func (s *Stroke) End(pt curve.Point) Delta {
	if !s.active {
		panic("ink: End called on an inactive stroke")
	}
	s.record(pt)
	if s.lazy != nil {
		s.lazy.ForceBrush(pt)
	}
	d := s.sb.Add(pt)
	s.active = false
	tracer().Debugf("stroke: end at %s with %d curves, %d raw samples",
		pt, s.sb.Spline().Len(), len(s.raw))
	return d
}

// record appends pt to the raw samples unless it repeats the last one.
func (s *Stroke) record(pt curve.Point) bool {
	if s.last.isSet && s.last.value == pt {
		return false
	}
	s.last.set(pt)
	s.raw = append(s.raw, pt)
	return true
}

// Compress refits the raw samples of the stroke in one go, which usually
// produces fewer curves than were fit while the stroke was being drawn. See
// [FitPolyline].
func (s *Stroke) Compress() []curve.CubicBez {
	return FitPolyline(s.raw, s.opts)
}

// Outline expands the stroke's spline into a fillable outline with the
// stroke's width. See [curve.StrokePath] for the meaning of tolerance.
func (s *Stroke) Outline(tolerance float64) iter.Seq[curve.PathElement] {
	return curve.StrokePath(s.Spline().PathElements(), s.opts.StrokeStyle(), curve.StrokeOpts{}, tolerance)
}
