package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrDegenerateBoundingBox = errors.New("component: bounding box half size must be positive")

// BoundingBox is an entity's axis-aligned footprint. Position is the centre;
// OldPosition is the centre as of the start of the current tick, before
// motion integration. Y grows downward.
type BoundingBox struct {
	Position    cp.Vector
	OldPosition cp.Vector
	HalfSize    cp.Vector
}

var BoundingBoxComponent = NewComponent[BoundingBox]()

// NewBoundingBox builds a box of the given full size centred on (x, y), with
// OldPosition equal to Position.
func NewBoundingBox(x, y, width, height float64) (BoundingBox, error) {
	half := cp.Vector{X: width / 2, Y: height / 2}
	if !(half.X > 0) || !(half.Y > 0) || math.IsInf(half.X, 0) || math.IsInf(half.Y, 0) {
		return BoundingBox{}, fmt.Errorf("%w: got %vx%v", ErrDegenerateBoundingBox, width, height)
	}
	pos := cp.Vector{X: x, Y: y}
	return BoundingBox{Position: pos, OldPosition: pos, HalfSize: half}, nil
}

func (b BoundingBox) Left() float64   { return b.Position.X - b.HalfSize.X }
func (b BoundingBox) Right() float64  { return b.Position.X + b.HalfSize.X }
func (b BoundingBox) Top() float64    { return b.Position.Y - b.HalfSize.Y }
func (b BoundingBox) Bottom() float64 { return b.Position.Y + b.HalfSize.Y }

// SetPosition moves the box without touching OldPosition.
func (b *BoundingBox) SetPosition(x, y float64) {
	b.Position = cp.Vector{X: x, Y: y}
}

// Settle records the current position as the start-of-tick position.
func (b *BoundingBox) Settle() {
	b.OldPosition = b.Position
}

// IsOverlappingWith reports whether the two boxes interpenetrate at their
// current positions. Touching edges do not count.
func (b BoundingBox) IsOverlappingWith(other BoundingBox) bool {
	return math.Abs(b.Position.X-other.Position.X) < b.HalfSize.X+other.HalfSize.X &&
		math.Abs(b.Position.Y-other.Position.Y) < b.HalfSize.Y+other.HalfSize.Y
}
