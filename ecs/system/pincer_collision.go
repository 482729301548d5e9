package system

import (
	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

// PincerCollisionSystem keeps pincers on the platform they patrol and turns
// them around when they bump into something sideways.
type PincerCollisionSystem struct {
	Policy component.SlotPolicy
}

func NewPincerCollisionSystem(policy component.SlotPolicy) *PincerCollisionSystem {
	return &PincerCollisionSystem{Policy: policy}
}

func (s *PincerCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PincerComponent.Kind(),
		component.MotionComponent.Kind(),
		component.BoundingBoxComponent.Kind(),
		component.CollideeComponent.Kind(),
	)
	for _, e := range entities {
		p, okP := ecs.Get(w, e, component.PincerComponent.Kind())
		m, okM := ecs.Get(w, e, component.MotionComponent.Kind())
		bb, okB := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
		rec, okR := ecs.Get(w, e, component.CollideeComponent.Kind())
		if !okP || !okM || !okB || !okR {
			continue
		}

		if p.Platform.Validate() == nil {
			next := *bb
			next.Position = bb.OldPosition.Add(m.Velocity)
			if d, ok := collision.ClampHorizontal("platform edge", next, p.Platform); ok {
				rec.Set(component.AxisHorizontal, *d, s.Policy)
			}
		}

		if react(component.KindPincer, rec) != reactTurn {
			continue
		}
		// The correction points the way the pincer was heading.
		if dir := -common.Sign(rec.Horizontal.Correction); dir != 0 {
			p.Direction = dir
		} else {
			p.Direction = -p.Direction
		}
		w.Events().PushCollision(ecs.CollisionEvent{
			Entity: e,
			Other:  ecs.Entity(rec.Horizontal.Entity),
			Kind:   ecs.CollisionEventPincerTurn,
		})
	}
}
