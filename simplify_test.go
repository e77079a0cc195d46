package ink

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestSimplifyOutlier(t *testing.T) {
	pts := []curve.Point{
		curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 0),
		curve.Pt(3, 5),
		curve.Pt(4, 0), curve.Pt(5, 0), curve.Pt(6, 0),
	}
	for _, hq := range []bool{false, true} {
		diff(t, []int{0, 2, 3, 4, 6}, SimplifyIndices(pts, 1, hq))
		diff(t, []curve.Point{pts[0], pts[2], pts[3], pts[4], pts[6]}, Simplify(pts, 1, hq))
	}
}

func TestSimplifyRadial(t *testing.T) {
	pts := make([]curve.Point, 50)
	for i := range pts {
		pts[i] = curve.Pt(float64(i)*0.1, 0)
	}
	// Every point is within the tolerance of its predecessor, but only the
	// ends survive either way.
	diff(t, []int{0, 49}, SimplifyIndices(pts, 1, false))
	diff(t, []int{0, 49}, SimplifyIndices(pts, 1, true))
}

func TestSimplifySubsequence(t *testing.T) {
	inputs := [][]curve.Point{sinePoints(), circlePoints(), spiralPoints(300), cornerPoints()}
	for _, pts := range inputs {
		for _, tol := range []float64{0, 0.5, 2, 10} {
			for _, hq := range []bool{false, true} {
				indices := SimplifyIndices(pts, tol, hq)
				if indices[0] != 0 || indices[len(indices)-1] != len(pts)-1 {
					t.Errorf("tolerance %g: first and last points weren't kept: %v", tol, indices)
				}
				for i := 1; i < len(indices); i++ {
					if indices[i] <= indices[i-1] {
						t.Fatalf("tolerance %g: indices aren't increasing: %v", tol, indices)
					}
				}
				if tol == 0 && hq && len(indices) < 3 {
					t.Errorf("zero tolerance dropped all interior points of a curved line")
				}
			}
		}
	}
}

func TestSimplifyShortInput(t *testing.T) {
	diff(t, []int{}, SimplifyIndices(nil, 1, false))
	diff(t, []int{0}, SimplifyIndices([]curve.Point{curve.Pt(1, 1)}, 1, false))
	diff(t, []int{0, 1}, SimplifyIndices([]curve.Point{curve.Pt(1, 1), curve.Pt(1, 1)}, 1, true))
	mustPanic(t, "Simplify with negative tolerance", func() {
		Simplify(linePoints(5, 1), -1, false)
	})
}

func TestLinearize(t *testing.T) {
	pts := []curve.Point{curve.Pt(0, 0), curve.Pt(10, 0), curve.Pt(10, 10)}
	want := []curve.Point{
		curve.Pt(0, 0), curve.Pt(3, 0), curve.Pt(6, 0), curve.Pt(9, 0),
		curve.Pt(10, 2), curve.Pt(10, 5), curve.Pt(10, 8),
		curve.Pt(10, 10),
	}
	diff(t, want, Linearize(pts, 3), approx(1e-9))

	// The last point isn't repeated when it falls on the spacing.
	diff(t, linePoints(3, 3), Linearize([]curve.Point{curve.Pt(0, 0), curve.Pt(6, 0)}, 3), approx(1e-9))

	// Repeated input points don't contribute.
	pts = []curve.Point{curve.Pt(0, 0), curve.Pt(0, 0), curve.Pt(2, 0), curve.Pt(2, 0), curve.Pt(4, 0)}
	diff(t, linePoints(5, 1), Linearize(pts, 1), approx(1e-9))

	if out := Linearize(nil, 1); out != nil {
		t.Errorf("got %v for nil input", out)
	}
	diff(t, []curve.Point{curve.Pt(1, 1)}, Linearize([]curve.Point{curve.Pt(1, 1)}, 1))
	mustPanic(t, "Linearize with zero spacing", func() { Linearize(linePoints(3, 1), 0) })
}

func TestLinearizeSpacing(t *testing.T) {
	pts := sinePoints()
	const spacing = 2.5
	out := Linearize(pts, spacing)
	if out[0] != pts[0] || out[len(out)-1] != pts[len(pts)-1] {
		t.Errorf("end points weren't kept")
	}
	// Consecutive points are at most spacing apart, and exactly spacing
	// apart along a straight run.
	for i := 1; i < len(out); i++ {
		if d := out[i-1].Distance(out[i]); d > spacing+1e-9 || d == 0 {
			t.Errorf("points %d and %d are %g apart", i-1, i, d)
		}
	}
	var length float64
	for i := 1; i < len(pts); i++ {
		length += pts[i-1].Distance(pts[i])
	}
	if want := int(math.Floor(length/spacing)) + 1; len(out) != want && len(out) != want+1 {
		t.Errorf("got %d points for a polyline of length %g, want %d or %d", len(out), length, want, want+1)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	pts := []curve.Point{
		curve.Pt(0, 0), curve.Pt(0, 0),
		curve.Pt(1, 0), curve.Pt(1, 1e-9), curve.Pt(1, 0),
		curve.Pt(2, 0),
		curve.Pt(0, 0),
	}
	diff(t, []curve.Point{curve.Pt(0, 0), curve.Pt(1, 0), curve.Pt(2, 0), curve.Pt(0, 0)}, RemoveDuplicates(pts))

	unique := linePoints(4, 1)
	if out := RemoveDuplicates(unique); &out[0] != &unique[0] || len(out) != len(unique) {
		t.Errorf("input without duplicates was copied")
	}
	if out := RemoveDuplicates(nil); out != nil {
		t.Errorf("got %v for nil input", out)
	}
}
