package collision

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs/component"
)

const defaultEpsilon = 1e-9

// Options tunes how corrections are computed and stored.
type Options struct {
	// ZeroSpeedRatio is the share of the overlap the mover absorbs when it
	// and the obstacle have the same velocity on the resolved axis.
	ZeroSpeedRatio float64
	// Epsilon is the closing speed, relative to the faster of the two (or 1
	// when both are slower than that), below which they are treated as equal.
	Epsilon float64
	// Policy decides how a second hit on an already filled slot is stored.
	Policy component.SlotPolicy
}

func DefaultOptions() Options {
	return Options{ZeroSpeedRatio: 1, Epsilon: defaultEpsilon, Policy: component.SlotLargest}
}

func (o Options) epsilon() float64 {
	if o.Epsilon > 0 {
		return o.Epsilon
	}
	return defaultEpsilon
}

// SpeedRatio is the share of the closing speed on one axis contributed by the
// mover: va / |va - vb|. Equal speeds fall back to opts.ZeroSpeedRatio.
func SpeedRatio(va, vb float64, opts Options) float64 {
	sum := math.Abs(va - vb)
	if opts.tied(va, vb) {
		return opts.ZeroSpeedRatio
	}
	ratio := va / sum
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return opts.ZeroSpeedRatio
	}
	return ratio
}

// axisRatio is SpeedRatio, except that with no closing speed the velocity
// carries no direction, so the fallback share is signed to push the mover
// away from the obstacle's centre.
func axisRatio(va, vb, pa, pb float64, opts Options) float64 {
	if !opts.tied(va, vb) {
		return SpeedRatio(va, vb, opts)
	}
	return away(pa, pb) * opts.ZeroSpeedRatio
}

// tied reports whether va and vb are too close for their difference to be
// divided by.
func (o Options) tied(va, vb float64) bool {
	scale := max(math.Abs(va), math.Abs(vb), 1)
	return !(math.Abs(va-vb) > o.epsilon()*scale)
}

// away is the sign of a correction that pushes a mover at pa away from an
// obstacle at pb.
func away(pa, pb float64) float64 {
	if pa > pb {
		return -1
	}
	return 1
}

// limit keeps a correction within the penetration depth so a near tie in
// speed cannot move the mover further than the overlap. A non-finite value
// becomes the whole depth, pushed away from the obstacle.
func limit(correction, depth, pa, pb float64) float64 {
	depth = math.Abs(depth)
	if math.IsNaN(correction) {
		return away(pa, pb) * depth
	}
	if math.Abs(correction) > depth {
		return math.Copysign(depth, correction)
	}
	return correction
}

// Resolve computes the collision outcome of mover a against obstacle b. It
// always commits to exactly one axis and does not check that the boxes
// actually intersect; use Detect for that.
func Resolve(name string, a, b component.BoundingBox, va, vb cp.Vector, opts Options) (component.Axis, component.CollideeDetails) {
	overlap := Penetration(a, b)
	xOverlapped, yOverlapped := Overlapped(a, b)
	axis := SelectAxis(xOverlapped, yOverlapped, overlap)

	var correction float64
	if axis == component.AxisHorizontal {
		ratio := axisRatio(va.X, vb.X, a.Position.X, b.Position.X, opts)
		correction = limit(overlap.X*ratio, overlap.X, a.Position.X, b.Position.X)
	} else {
		ratio := axisRatio(va.Y, vb.Y, a.Position.Y, b.Position.Y, opts)
		correction = limit(overlap.Y*ratio, overlap.Y, a.Position.Y, b.Position.Y)
	}

	return axis, component.CollideeDetails{
		Name:        name,
		Velocity:    vb,
		BoundingBox: b,
		Correction:  correction,
	}
}

// Detect resolves a against b and stores the outcome on c. Pairs that do not
// interpenetrate at their current positions leave c untouched. It reports
// whether a collision was found.
func Detect(c *component.Collidee, name string, a, b component.BoundingBox, va, vb cp.Vector, opts Options) bool {
	if c == nil || !Intersecting(a, b) {
		return false
	}
	axis, details := Resolve(name, a, b, va, vb, opts)
	c.Set(axis, details, opts.Policy)
	return true
}
