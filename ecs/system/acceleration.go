package system

import (
	"log"
	"math"

	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/milk9111/marinescroller/ecs/entity"
)

// AccelerationSystem turns input and patrol state into this tick's velocity
// intent. It runs before collision so detection sees the intended move.
type AccelerationSystem struct {
	Gravity float64
}

func NewAccelerationSystem(gravity float64) *AccelerationSystem {
	return &AccelerationSystem{Gravity: gravity}
}

func (s *AccelerationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.MarineComponent.Kind(), component.MotionComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, marine *component.Marine, m *component.Motion, in *component.Input) {
		s.accelerateMarine(w, e, marine, m, in)
	})

	ecs.ForEach2(w, component.PincerComponent.Kind(), component.MotionComponent.Kind(), func(e ecs.Entity, p *component.Pincer, m *component.Motion) {
		if p.Direction == 0 {
			p.Direction = -1
		}
		m.Velocity.X = p.Direction * p.Speed
		s.fall(m)
	})
}

func (s *AccelerationSystem) accelerateMarine(w *ecs.World, e ecs.Entity, marine *component.Marine, m *component.Motion, in *component.Input) {
	switch {
	case in.Right && !in.Left:
		m.Velocity.X = math.Min(m.Velocity.X+marine.Acceleration, marine.MaxSpeed)
		marine.Facing = 1
	case in.Left && !in.Right:
		m.Velocity.X = math.Max(m.Velocity.X-marine.Acceleration, -marine.MaxSpeed)
		marine.Facing = -1
	default:
		m.Velocity.X = common.Approach(m.Velocity.X, 0, marine.Acceleration)
	}

	if in.Jump && m.Grounded {
		m.Velocity.Y = -marine.JumpSpeed
		m.Grounded = false
	}
	s.fall(m)

	marine.HasShot = false
	if marine.Cooldown > 0 {
		marine.Cooldown--
	}
	if !in.Shoot || marine.Cooldown > 0 {
		return
	}

	bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
	if !ok {
		return
	}
	x := bb.Position.X + marine.Facing*bb.HalfSize.X
	if _, err := entity.NewBullet(w, e, x, bb.Position.Y, marine.Facing); err != nil {
		log.Printf("AccelerationSystem: spawn bullet: %v", err)
		return
	}
	marine.HasShot = true
	marine.Cooldown = marine.ShootCooldown
}

func (s *AccelerationSystem) fall(m *component.Motion) {
	g := s.Gravity
	if g == 0 {
		g = common.Gravity
	}
	m.Velocity.Y = math.Min(m.Velocity.Y+g, common.MaxFallSpeed)
}
