package collision

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs/component"
)

// ClampAxis returns the correction that brings the span [lo, hi] back inside
// [lower, upper]. A span wider than the limits is centred in them.
func ClampAxis(lo, hi, lower, upper float64) (float64, bool) {
	over := hi - upper
	under := lower - lo
	switch {
	case over > 0 && under > 0:
		return (lo+hi)/2 - (lower+upper)/2, true
	case over > 0:
		return over, true
	case under > 0:
		return -under, true
	}
	return 0, false
}

// Clamp keeps bb inside bound. Each crossed edge yields a correction on its
// own axis that leaves the box flush with that edge; the boundary never
// moves, so the mover absorbs all of it. The returned Collidee uses the same
// shape as pairwise collisions so consumers need only one format.
func Clamp(name string, bb component.BoundingBox, bound component.Boundary) (component.Collidee, bool) {
	var out component.Collidee
	out.Horizontal, _ = ClampHorizontal(name, bb, bound)
	out.Vertical, _ = ClampVertical(name, bb, bound)
	return out, !out.Empty()
}

// ClampHorizontal is Clamp restricted to the left and right edges.
func ClampHorizontal(name string, bb component.BoundingBox, bound component.Boundary) (*component.CollideeDetails, bool) {
	corr, ok := ClampAxis(bb.Left(), bb.Right(), bound.Left, bound.Right)
	if !ok {
		return nil, false
	}
	return &component.CollideeDetails{Name: name, BoundingBox: boundaryBox(bound), Correction: corr}, true
}

// ClampVertical is Clamp restricted to the top and bottom edges.
func ClampVertical(name string, bb component.BoundingBox, bound component.Boundary) (*component.CollideeDetails, bool) {
	corr, ok := ClampAxis(bb.Top(), bb.Bottom(), bound.Top, bound.Bottom)
	if !ok {
		return nil, false
	}
	return &component.CollideeDetails{Name: name, BoundingBox: boundaryBox(bound), Correction: corr}, true
}

// ClampTo applies Clamp and folds the result into c.
func ClampTo(c *component.Collidee, name string, bb component.BoundingBox, bound component.Boundary, opts Options) bool {
	if c == nil {
		return false
	}
	res, ok := Clamp(name, bb, bound)
	if ok {
		c.Merge(res, opts.Policy)
	}
	return ok
}

func boundaryBox(b component.Boundary) component.BoundingBox {
	centre := cp.Vector{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2}
	return component.BoundingBox{
		Position:    centre,
		OldPosition: centre,
		HalfSize:    cp.Vector{X: (b.Right - b.Left) / 2, Y: (b.Bottom - b.Top) / 2},
	}
}
