package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs/component"
)

// Overlapped reports, per axis, whether a and b were already overlapping at
// their start-of-tick positions.
func Overlapped(a, b component.BoundingBox) (x, y bool) {
	x = math.Abs(a.OldPosition.X-b.OldPosition.X) < a.HalfSize.X+b.HalfSize.X
	y = math.Abs(a.OldPosition.Y-b.OldPosition.Y) < a.HalfSize.Y+b.HalfSize.Y
	return x, y
}

// MinSafeDistance is the centre distance at which a and b just touch.
func MinSafeDistance(a, b component.BoundingBox) cp.Vector {
	return cp.Vector{X: a.HalfSize.X + b.HalfSize.X, Y: a.HalfSize.Y + b.HalfSize.Y}
}

// Penetration is the current-position overlap per axis. Positive components
// mean the boxes interpenetrate by that much.
func Penetration(a, b component.BoundingBox) cp.Vector {
	safe := MinSafeDistance(a, b)
	return cp.Vector{
		X: safe.X - math.Abs(a.Position.X-b.Position.X),
		Y: safe.Y - math.Abs(a.Position.Y-b.Position.Y),
	}
}

// Intersecting reports whether a and b interpenetrate at current positions.
func Intersecting(a, b component.BoundingBox) bool {
	p := Penetration(a, b)
	return p.X > 0 && p.Y > 0
}
