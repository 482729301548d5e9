package component

import (
	"errors"
	"fmt"
)

var ErrInvalidBoundary = errors.New("component: boundary edges out of order")

// Boundary is a static axis-aligned limit such as the level edges or the
// walkable span of a platform. Top is numerically smaller than Bottom.
type Boundary struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

var BoundaryComponent = NewComponent[Boundary]()

func NewBoundary(left, right, top, bottom float64) (Boundary, error) {
	b := Boundary{Left: left, Right: right, Top: top, Bottom: bottom}
	if err := b.Validate(); err != nil {
		return Boundary{}, err
	}
	return b, nil
}

func (b Boundary) Validate() error {
	if !(b.Left < b.Right) || !(b.Top < b.Bottom) {
		return fmt.Errorf("%w: left=%v right=%v top=%v bottom=%v", ErrInvalidBoundary, b.Left, b.Right, b.Top, b.Bottom)
	}
	return nil
}

func (b Boundary) Width() float64  { return b.Right - b.Left }
func (b Boundary) Height() float64 { return b.Bottom - b.Top }

// Contains reports whether bb lies entirely within b. Edges flush with the
// boundary count as inside.
func (b Boundary) Contains(bb BoundingBox) bool {
	return bb.Left() >= b.Left && bb.Right() <= b.Right && bb.Top() >= b.Top && bb.Bottom() <= b.Bottom
}
