package system

import (
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

// MotionSystem integrates every kinematic mover: it moves the box by its
// velocity, backs it out by the corrections the collision pass recorded and
// settles the result as next tick's starting position.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.BoundingBoxComponent.Kind(), func(e ecs.Entity, m *component.Motion, bb *component.BoundingBox) {
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Dynamic() {
			return
		}

		wasGrounded := m.Grounded
		pos := bb.OldPosition.Add(m.Velocity)
		m.Grounded = false

		if rec, ok := ecs.Get(w, e, component.CollideeComponent.Kind()); ok {
			if h := rec.Horizontal; h != nil {
				pos.X -= h.Correction
				if m.Velocity.X*h.Correction > 0 {
					m.Velocity.X = 0
				}
			}
			if v := rec.Vertical; v != nil {
				pos.Y -= v.Correction
				if m.Velocity.Y*v.Correction > 0 {
					m.Velocity.Y = 0
				}
				// A positive vertical correction pushed the mover up and out
				// of something below it.
				if v.Correction > 0 {
					m.Grounded = true
				}
			}
		}

		if m.Grounded && !wasGrounded {
			w.Events().PushCollision(ecs.CollisionEvent{Entity: e, Kind: ecs.CollisionEventGrounded})
		}

		bb.SetPosition(pos.X, pos.Y)
		bb.Settle()
	})
}
