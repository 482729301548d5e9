package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs/component"
)

// SelectAxis picks the axis to resolve on. If the pair already overlapped on
// exactly one axis at the start of the tick, the other axis is the one that
// changed, so that one is resolved. If neither axis overlapped, the axis with
// the shallower penetration wins, ties going horizontal. Vertical is the
// fallback, including when both axes already overlapped.
func SelectAxis(xOverlapped, yOverlapped bool, overlap cp.Vector) component.Axis {
	if !xOverlapped && yOverlapped {
		return component.AxisHorizontal
	}
	if !xOverlapped && !yOverlapped && math.Abs(overlap.X) <= math.Abs(overlap.Y) {
		return component.AxisHorizontal
	}
	return component.AxisVertical
}
