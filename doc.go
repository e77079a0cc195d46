// Package ink turns freehand pointer input into smooth chains of cubic Béziers.
//
// A stroke arrives as an irregularly sampled stream of 2D points. This package
// fits that stream, as it arrives, with a short sequence of C1-continuous cubic
// Béziers that stay within a configurable distance of the input, and exposes
// the result in a form suitable for constant-speed traversal. All geometry is
// expressed with the primitives of [honnef.co/go/curve].
//
// # Components
//
// The package is made up of the following parts, from the bottom up:
//
//   - Polyline filters: [Linearize] resamples a polyline at a fixed spacing,
//     [Simplify] reduces it with a radial-distance prefilter and
//     Douglas-Peucker, and [RemoveDuplicates] drops repeated samples.
//   - A pursuit stabilizer, [LazyBrush], which lets an emitted brush point lag
//     behind the raw pointer to damp tremor.
//   - A least-squares curve fitter in the style of Schneider's algorithm. See
//     [FitCubic] for fitting a single segment and [FitPoints] for fitting an
//     entire polyline.
//   - [CurveBuilder], the streaming variant of the fitter. It only ever touches
//     the last one or two curves of a stroke and reports what changed as a
//     [Delta].
//   - [Spline], an ordered chain of curves with an arc length table, and
//     [SplineBuilder], which folds the deltas of a CurveBuilder into a Spline.
//   - [Stroke], which wires all of the above together for one pointer stroke,
//     configured by [Options].
//
// # Data flow
//
// Raw pointer samples are optionally stabilized, then resampled at a fixed
// distance and fed to the incremental fitter. Every sample yields a [Delta]
// describing which curves were replaced or appended; the spline applies the
// same change to its arc length table. Renderers consume the spline's curves
// (see [Spline.PathElements]) and can limit their repaint to the suffix named
// by the delta (see [Spline.BoundingBoxFrom]).
//
// When a complete stroke, or any externally supplied polyline, has to be
// compressed after the fact, [FitPoints] and [FitPolyline] are used instead
// of the streaming path.
//
// # Ownership
//
// Nothing in this package is safe for concurrent use, and nothing needs to be.
// Every stroke owns its own builder, spline and stabilizer. Simultaneous
// strokes, such as several touches at once, must use separate instances.
// Abandoning a stroke is done by dropping its values.
//
// # Errors
//
// Misuse, such as fitting with a non-positive tolerance, sampling an empty
// spline or inserting a curve that does not connect to its neighbours, panics.
// Numerically degenerate input is not an error: the fitter falls back to
// simple heuristics instead. Only configuration, which comes from outside the
// program, is reported as an error (see [Options.Validate] and
// [OptionsFromConfig]).
//
// Internal consistency checks are compiled in with the inkdebug build tag.
//
// # Literature
//
//   - [An Algorithm for Automatically Fitting Digitized Curves] by Philip J. Schneider
//   - [A Primer on Bézier Curves]
//   - [Simplify.js] by Vladimir Agafonkin
//
// [An Algorithm for Automatically Fitting Digitized Curves]: https://dl.acm.org/doi/10.5555/90767.90941
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Simplify.js]: https://mourner.github.io/simplify-js/
package ink
