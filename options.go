package ink

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/npillmayer/schuko"
	"honnef.co/go/curve"
)

// Options configures a [Stroke].
type Options struct {
	// Width of the rendered stroke. It has no influence on fitting.
	Width float64
	// Tolerance is the maximum distance between the resampled input and the
	// fitted curves.
	Tolerance float64
	// PointSpacing is the distance at which input is resampled before
	// fitting.
	PointSpacing float64
	// SimplifyTolerance, if positive, reduces the resampled input with
	// [Simplify] before batch fitting with [FitPolyline].
	SimplifyTolerance float64
	// SamplesPerCurve is the number of arc length samples per curve of the
	// stroke's spline.
	SamplesPerCurve int
	// LazyMultiplier is the damping ratio of the stabilizer.
	LazyMultiplier float64
	// Stabilize enables the stabilizer.
	Stabilize bool
}

var DefaultOptions = Options{
	Width:           2,
	Tolerance:       1,
	PointSpacing:    4,
	SamplesPerCurve: 16,
	LazyMultiplier:  0.2,
	Stabilize:       true,
}

func (o Options) WithWidth(width float64) Options          { o.Width = width; return o }
func (o Options) WithTolerance(tol float64) Options        { o.Tolerance = tol; return o }
func (o Options) WithPointSpacing(spacing float64) Options { o.PointSpacing = spacing; return o }
func (o Options) WithSimplifyTolerance(tol float64) Options {
	o.SimplifyTolerance = tol
	return o
}
func (o Options) WithSamplesPerCurve(n int) Options { o.SamplesPerCurve = n; return o }
func (o Options) WithStabilizer(ratio float64) Options {
	o.Stabilize, o.LazyMultiplier = true, ratio
	return o
}
func (o Options) WithoutStabilizer() Options { o.Stabilize = false; return o }

// StrokeStyle returns the style for expanding the stroke's spline into an
// outline with round joins and caps.
func (o Options) StrokeStyle() curve.Stroke {
	return curve.Stroke{
		Width:      o.Width,
		Join:       curve.RoundJoin,
		MiterLimit: 4,
		StartCap:   curve.RoundCap,
		EndCap:     curve.RoundCap,
	}
}

// Validate reports the first option that has an unusable value.
func (o Options) Validate() error {
	positive := func(name string, v float64) error {
		if !(v > epsilon) || math.IsInf(v, 1) {
			return fmt.Errorf("ink: %s must be a positive, finite number, got %g", name, v)
		}
		return nil
	}
	if err := positive("width", o.Width); err != nil {
		return err
	}
	if err := positive("tolerance", o.Tolerance); err != nil {
		return err
	}
	if err := positive("point spacing", o.PointSpacing); err != nil {
		return err
	}
	if !(o.SimplifyTolerance >= 0) || math.IsInf(o.SimplifyTolerance, 1) {
		return fmt.Errorf("ink: simplification tolerance must not be negative, got %g", o.SimplifyTolerance)
	}
	if o.SamplesPerCurve < MinSamplesPerCurve || o.SamplesPerCurve > MaxSamplesPerCurve {
		return fmt.Errorf("ink: samples per curve must be in [%d, %d], got %d",
			MinSamplesPerCurve, MaxSamplesPerCurve, o.SamplesPerCurve)
	}
	if o.Stabilize && !(o.LazyMultiplier > 0 && o.LazyMultiplier <= 1) {
		return fmt.Errorf("ink: lazy multiplier must be in (0, 1], got %g", o.LazyMultiplier)
	}
	return nil
}

// Configuration keys read by [OptionsFromConfig].
const (
	ConfWidth          = "ink.width"
	ConfTolerance      = "ink.tolerance"
	ConfSpacing        = "ink.spacing"
	ConfSimplify       = "ink.simplify"
	ConfSamples        = "ink.samples"
	ConfLazyMultiplier = "ink.lazy-multiplier"
	ConfStabilize      = "ink.stabilize"
)

// ErrMalformedOption is wrapped by errors for configuration values that
// cannot be parsed.
var ErrMalformedOption = errors.New("malformed value")

// OptionsFromConfig reads options from a configuration. Keys that aren't set
// keep their values from [DefaultOptions]. The result is validated.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	opts := DefaultOptions
	floats := []struct {
		key string
		dst *float64
	}{
		{ConfWidth, &opts.Width},
		{ConfTolerance, &opts.Tolerance},
		{ConfSpacing, &opts.PointSpacing},
		{ConfSimplify, &opts.SimplifyTolerance},
		{ConfLazyMultiplier, &opts.LazyMultiplier},
	}
	for _, f := range floats {
		if !conf.IsSet(f.key) {
			continue
		}
		v, err := strconv.ParseFloat(conf.GetString(f.key), 64)
		if err != nil {
			return Options{}, fmt.Errorf("ink: config key %q: %w: %w", f.key, ErrMalformedOption, err)
		}
		*f.dst = v
	}
	if conf.IsSet(ConfSamples) {
		v, err := strconv.Atoi(conf.GetString(ConfSamples))
		if err != nil {
			return Options{}, fmt.Errorf("ink: config key %q: %w: %w", ConfSamples, ErrMalformedOption, err)
		}
		opts.SamplesPerCurve = v
	}
	if conf.IsSet(ConfStabilize) {
		v, err := strconv.ParseBool(conf.GetString(ConfStabilize))
		if err != nil {
			return Options{}, fmt.Errorf("ink: config key %q: %w: %w", ConfStabilize, ErrMalformedOption, err)
		}
		opts.Stabilize = v
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	tracer().Debugf("options from config: %+v", opts)
	return opts, nil
}
