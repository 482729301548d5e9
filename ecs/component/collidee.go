package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Axis names the single axis a collision is resolved on.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// SlotPolicy decides what happens when a second collision lands on an axis
// slot that is already filled this tick.
type SlotPolicy int

const (
	// SlotLargest keeps whichever correction has the larger magnitude.
	SlotLargest SlotPolicy = iota
	// SlotLastWrite overwrites unconditionally.
	SlotLastWrite
)

// CollideeDetails describes what a mover hit on one axis. BoundingBox is a
// copy taken at detection time.
type CollideeDetails struct {
	// Entity is the raw handle of what was hit, 0 when unknown.
	Entity      uint64
	Name        string
	Velocity    cp.Vector
	BoundingBox BoundingBox
	Correction  float64
}

// Collidee is a mover's collision outcome for the current tick. Subtracting
// Correction from the position on the matching axis removes the overlap.
type Collidee struct {
	Horizontal *CollideeDetails
	Vertical   *CollideeDetails
}

var CollideeComponent = NewComponent[Collidee]()

// Clear empties both axis slots.
func (c *Collidee) Clear() {
	c.Horizontal = nil
	c.Vertical = nil
}

func (c Collidee) Empty() bool {
	return c.Horizontal == nil && c.Vertical == nil
}

// Slot returns the details stored for axis, if any.
func (c Collidee) Slot(axis Axis) *CollideeDetails {
	if axis == AxisHorizontal {
		return c.Horizontal
	}
	return c.Vertical
}

// Set stores details on axis according to policy and reports whether the
// slot changed.
func (c *Collidee) Set(axis Axis, details CollideeDetails, policy SlotPolicy) bool {
	slot := &c.Vertical
	if axis == AxisHorizontal {
		slot = &c.Horizontal
	}
	if *slot != nil && policy == SlotLargest && math.Abs((*slot).Correction) >= math.Abs(details.Correction) {
		return false
	}
	d := details
	*slot = &d
	return true
}

// Merge folds every populated slot of other into c.
func (c *Collidee) Merge(other Collidee, policy SlotPolicy) {
	if other.Horizontal != nil {
		c.Set(AxisHorizontal, *other.Horizontal, policy)
	}
	if other.Vertical != nil {
		c.Set(AxisVertical, *other.Vertical, policy)
	}
}
