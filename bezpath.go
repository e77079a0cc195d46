package ink

import (
	"iter"
	"slices"

	"honnef.co/go/curve"
)

// PathElements converts a chain of cubics into path elements. A new subpath
// is started wherever a curve doesn't begin at the end of its predecessor.
func PathElements(seq iter.Seq[curve.CubicBez]) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		var last option[curve.Point]
		for c := range seq {
			if !last.isSet || !pointsClose(last.value, c.P0) {
				if !yield(curve.MoveTo(c.P0)) {
					return
				}
			}
			if !yield(curve.CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
			last.set(c.P3)
		}
	}
}

// Path converts a chain of cubics into a Bézier path, as described for
// [PathElements].
func Path(curves []curve.CubicBez) curve.BezPath {
	p := make(curve.BezPath, 0, len(curves)+1)
	for el := range PathElements(slices.Values(curves)) {
		p.Push(el)
	}
	return p
}
