package ink

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thereby points and curves, with an absolute
// margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}

func linePoints(n int, spacing float64) []curve.Point {
	pts := make([]curve.Point, n)
	for i := range pts {
		pts[i] = curve.Pt(float64(i)*spacing, 0)
	}
	return pts
}

// cornerPoints returns 10 points along an L with the corner at index 5.
func cornerPoints() []curve.Point {
	var pts []curve.Point
	for i := range 6 {
		pts = append(pts, curve.Pt(float64(i)*10, 0))
	}
	for i := 1; i <= 4; i++ {
		pts = append(pts, curve.Pt(50, float64(i)*10))
	}
	return pts
}

func sinePoints() []curve.Point {
	pts := make([]curve.Point, 100)
	for i := range pts {
		pts[i] = curve.Pt(float64(i)*2, 20*math.Sin(float64(i)*0.15))
	}
	return pts
}

func circlePoints() []curve.Point {
	pts := make([]curve.Point, 60)
	for i := range pts {
		a := float64(i) * 0.1
		pts[i] = curve.Pt(50*math.Cos(a), 50*math.Sin(a))
	}
	return pts
}

func spiralPoints(n int) []curve.Point {
	pts := make([]curve.Point, n)
	for i := range pts {
		a := float64(i) * 0.05
		r := 10 + a*8
		pts[i] = curve.Pt(r*math.Cos(a), r*math.Sin(a))
	}
	return pts
}

// maxDistance returns the largest distance between any of the points and the
// chain of curves.
func maxDistance(curves []curve.CubicBez, pts []curve.Point) float64 {
	var worst float64
	for _, pt := range pts {
		best := math.Inf(1)
		for _, c := range curves {
			d, _ := c.Nearest(pt, 1e-9)
			best = min(best, d)
		}
		worst = max(worst, best)
	}
	return math.Sqrt(worst)
}

// checkChain verifies that consecutive curves share their end points exactly
// and join with matching tangents.
func checkChain(t *testing.T, curves []curve.CubicBez) {
	t.Helper()
	for i := 1; i < len(curves); i++ {
		a, b := curves[i-1], curves[i]
		if a.P3 != b.P0 {
			t.Errorf("curve %d ends at %s, curve %d starts at %s", i-1, a.P3, i, b.P0)
			continue
		}
		in := direction(a.P2, a.P3)
		out := direction(b.P0, b.P1)
		if cross := in.Cross(out); math.Abs(cross) > 1e-9 || in.Dot(out) <= 0 {
			t.Errorf("curves %d and %d join with tangents %s and %s", i-1, i, in, out)
		}
	}
}
