package ink

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

const (
	// minBrushMove is the shortest distance the brush moves. Shorter moves
	// are dropped to keep the brush from creeping towards the pointer.
	minBrushMove = 0.1
	// idleCatchUp multiplies the ratio while the pointer rests, so that the
	// brush reaches the pointer within a few updates.
	idleCatchUp = 4
)

// LazyBrush stabilizes pointer input by letting a brush follow the pointer
// at a fraction of the distance between them. Tremor of the pointer is damped
// accordingly, at the cost of the brush lagging behind.
//
// Coordinates are in a y-down space, with the origin in the top left corner.
type LazyBrush struct {
	pointer curve.Point
	brush   curve.Point
	ratio   float64
	angle   float64
}

// NewLazyBrush returns a stabilizer that moves the brush by ratio times its
// distance to the pointer on every update. It panics unless 0 < ratio ≤ 1.
func NewLazyBrush(ratio float64) *LazyBrush {
	lb := &LazyBrush{}
	lb.SetRatio(ratio)
	return lb
}

// SetRatio changes the damping ratio. It panics unless 0 < ratio ≤ 1.
func (lb *LazyBrush) SetRatio(ratio float64) {
	if !(ratio > 0 && ratio <= 1) {
		panic(fmt.Sprintf("ink: lazy brush ratio must be in (0, 1], got %g", ratio))
	}
	lb.ratio = ratio
}

func (lb *LazyBrush) Ratio() float64       { return lb.ratio }
func (lb *LazyBrush) Brush() curve.Point   { return lb.brush }
func (lb *LazyBrush) Pointer() curve.Point { return lb.pointer }

// Angle returns the direction of the last brush movement in radians,
// counterclockwise from the positive x axis as seen on screen.
func (lb *LazyBrush) Angle() float64 { return lb.angle }

// ForceBrush moves both the pointer and the brush to pt.
func (lb *LazyBrush) ForceBrush(pt curve.Point) {
	lb.pointer = pt
	lb.brush = pt
}

// Update moves the pointer to pt and the brush towards it, and reports
// whether the brush moved. If the pointer didn't move, the brush catches up
// faster. The brush never overshoots the pointer.
func (lb *LazyBrush) Update(pt curve.Point) bool {
	lazy := lb.ratio
	if pt == lb.pointer {
		lazy *= idleCatchUp
	}
	lb.pointer = pt

	dist := lb.brush.Distance(pt)
	lazy *= dist
	if lazy < minBrushMove {
		return false
	}

	// y grows downwards, angles grow counterclockwise on screen.
	d := pt.Sub(lb.brush)
	lb.angle = math.Atan2(-d.Y, d.X)
	if lazy >= dist {
		lb.brush = pt
		return true
	}
	lb.brush = lb.brush.Translate(curve.Vec(math.Cos(lb.angle), -math.Sin(lb.angle)).Mul(lazy))
	return true
}
