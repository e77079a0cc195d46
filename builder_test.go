package ink

import (
	"fmt"
	"slices"
	"testing"

	"honnef.co/go/curve"
)

func TestDeltaMerge(t *testing.T) {
	tests := []struct {
		a, b, want Delta
	}{
		{Delta{}, Delta{}, Delta{}},
		{Delta{}, Delta{Replaced, 3}, Delta{Replaced, 3}},
		{Delta{Replaced, 3}, Delta{}, Delta{Replaced, 3}},
		{Delta{Replaced, 3}, Delta{Replaced, 3}, Delta{Replaced, 3}},
		{Delta{Replaced, 3}, Delta{Added, 4}, Delta{Added, 4}},
		{Delta{Added, 4}, Delta{Replaced, 4}, Delta{Added, 4}},
		{Delta{Added, 4}, Delta{Added, 5}, Delta{Added, 4}},
		{Delta{Added, 0}, Delta{Replaced, 0}, Delta{Added, 0}},
	}
	for _, tt := range tests {
		if got := tt.a.merge(tt.b); got != tt.want {
			t.Errorf("%s merged with %s: got %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDeltaFirstChanged(t *testing.T) {
	tests := []struct {
		d    Delta
		want int
	}{
		{Delta{}, -1},
		{Delta{Replaced, 2}, 2},
		{Delta{Added, 0}, 0},
		{Delta{Added, 3}, 2},
	}
	for _, tt := range tests {
		if got := tt.d.FirstChanged(); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.d, got, tt.want)
		}
	}
	diff(t, "NoChange", Delta{}.String())
	diff(t, "Added(3)", Delta{Added, 3}.String())
}

func TestCurveBuilderNoChange(t *testing.T) {
	b := NewCurveBuilder(10, 1)
	var got []Delta
	for _, x := range []float64{0, 3, 6, 9, 12, 15, 21} {
		got = append(got, b.AddPoint(curve.Pt(x, 0)))
	}
	want := []Delta{
		{}, {}, {}, {},
		{Added, 0},
		{},
		{Replaced, 0},
	}
	diff(t, want, got)
	diff(t, []curve.Point{curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(20, 0)}, slices.Collect(b.Points()), approx(1e-12))
}

func TestCurveBuilderExactSpacing(t *testing.T) {
	// Points are only placed once the input is further than the point
	// distance away, so the resampled stroke lags behind by one step.
	b := NewCurveBuilder(10, 1)
	var got []Delta
	for i := range 5 {
		got = append(got, b.AddPoint(curve.Pt(float64(i)*10+5, 0)))
	}
	want := []Delta{{}, {}, {Added, 0}, {Replaced, 0}, {Replaced, 0}}
	diff(t, want, got)
	diff(t, 1, b.Len())
	diff(t, curve.Pt(35, 0), b.Curve(0).P3, approx(1e-12))
	diff(t, 30.0, b.Length(), approx(1e-12))
}

func TestCurveBuilderLongJump(t *testing.T) {
	b := NewCurveBuilder(1, 0.5)
	b.AddPoint(curve.Pt(0, 0))
	d := b.AddPoint(curve.Pt(10.5, 0))
	diff(t, Delta{Added, 0}, d)
	diff(t, 11, len(slices.Collect(b.Points())))
	diff(t, 1, b.Len())
}

func TestCurveBuilderStroke(t *testing.T) {
	pts := spiralPoints(200)
	b := NewCurveBuilder(4, 2)
	var prev []curve.CubicBez
	for i, pt := range pts {
		d := b.AddPoint(pt)
		curves := slices.Collect(b.Curves())
		if len(curves) != b.Len() {
			t.Fatalf("point %d: iterator yields %d curves, Len is %d", i, len(curves), b.Len())
		}

		switch d.Kind {
		case NoChange:
			diff(t, prev, curves)
		case Replaced:
			if d.Index != len(curves)-1 || len(curves) != len(prev) {
				t.Errorf("point %d: %s with %d curves, %d before", i, d, len(curves), len(prev))
			}
		case Added:
			if d.Index != len(prev) || len(curves) <= len(prev) {
				t.Errorf("point %d: %s with %d curves, %d before", i, d, len(curves), len(prev))
			}
		}
		// Curves before the first changed one are frozen.
		if d.Changed() {
			diff(t, prev[:d.FirstChanged()], curves[:d.FirstChanged()])
		}
		prev = curves
	}

	if b.Len() < 2 {
		t.Fatalf("got %d curves, expected the spiral to need several", b.Len())
	}
	checkChain(t, prev)
	diff(t, pts[0], prev[0].P0)

	// Resampled points are evenly spaced.
	resampled := slices.Collect(b.Points())
	for i := 1; i < len(resampled); i++ {
		if d := resampled[i-1].Distance(resampled[i]); d < 4-1e-9 || d > 4+1e-9 {
			t.Errorf("points %d and %d are %g apart", i-1, i, d)
		}
	}
	diff(t, float64(len(resampled)-1)*4, b.Length(), approx(1e-9))
}

func TestCurveBuilderClear(t *testing.T) {
	pts := sinePoints()
	fresh := NewCurveBuilder(3, 1)
	reused := NewCurveBuilder(3, 1)
	for _, pt := range spiralPoints(100) {
		reused.AddPoint(pt)
	}
	reused.Clear()
	if reused.Len() != 0 || reused.Length() != 0 {
		t.Fatalf("cleared builder has %d curves of length %g", reused.Len(), reused.Length())
	}
	for _, pt := range pts {
		diff(t, fresh.AddPoint(pt), reused.AddPoint(pt))
	}
	diff(t, slices.Collect(fresh.Curves()), slices.Collect(reused.Curves()))
}

func TestCurveBuilderPanics(t *testing.T) {
	for _, args := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}} {
		mustPanic(t, fmt.Sprintf("NewCurveBuilder(%g, %g)", args[0], args[1]), func() {
			NewCurveBuilder(args[0], args[1])
		})
	}
}

func BenchmarkCurveBuilder(b *testing.B) {
	pts := spiralPoints(1000)
	cb := NewCurveBuilder(2, 1)
	b.ResetTimer()
	for range b.N {
		cb.Clear()
		for _, pt := range pts {
			cb.AddPoint(pt)
		}
	}
}
