package ink

import (
	"math"

	"golang.org/x/exp/constraints"
	"honnef.co/go/curve"
)

// epsilon is the threshold below which lengths, weights and determinants are
// treated as zero.
const epsilon = 1e-12

// unit returns v scaled to unit length. It returns false if v is too short to
// have a meaningful direction.
func unit(v curve.Vec2) (curve.Vec2, bool) {
	h := v.Hypot()
	if !(h > epsilon) {
		return curve.Vec2{}, false
	}
	return v.Mul(1 / h), true
}

// direction returns the unit vector pointing from a to b, or the zero vector
// if the two points coincide.
func direction(a, b curve.Point) curve.Vec2 {
	v, _ := unit(b.Sub(a))
	return v
}

// pointsClose reports whether two points are equal, give or take rounding
// errors.
func pointsClose(a, b curve.Point) bool {
	return a.DistanceSquared(b) < epsilon
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// wuBarsky constructs the cubic from p0 to p3 whose control points lie along
// the two tangents, at a third of the chord length. It is the fallback for
// every case in which a least-squares fit is impossible or unreliable.
func wuBarsky(p0, p3 curve.Point, tanL, tanR curve.Vec2) curve.CubicBez {
	alpha := p0.Distance(p3) / 3
	return curve.CubicBez{
		P0: p0,
		P1: p0.Translate(tanL.Mul(alpha)),
		P2: p3.Translate(tanR.Mul(alpha)),
		P3: p3,
	}
}

// cubicTangent returns the unit direction of c at t. Where the derivative
// vanishes, because a control point coincides with an endpoint, it uses the
// nearest control point that is distinct.
func cubicTangent(c curve.CubicBez, t float64) curve.Vec2 {
	if d, ok := unit(curve.Vec2(c.Differentiate().Eval(t))); ok {
		return d
	}
	var candidates [3]curve.Vec2
	if t < 0.5 {
		candidates = [3]curve.Vec2{c.P2.Sub(c.P0), c.P3.Sub(c.P0), c.P3.Sub(c.P1)}
	} else {
		candidates = [3]curve.Vec2{c.P3.Sub(c.P1), c.P3.Sub(c.P0), c.P2.Sub(c.P0)}
	}
	for _, v := range candidates {
		if d, ok := unit(v); ok {
			return d
		}
	}
	return curve.Vec2{}
}

func assert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("ink: internal error: " + msg)
	}
}

func checkTolerance(name string, v float64) {
	if !(v > epsilon) || math.IsInf(v, 1) {
		panic("ink: " + name + " must be a positive, finite number")
	}
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}
