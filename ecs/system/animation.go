package system

import (
	"math"

	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

const moveThreshold = 0.1

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		next := anim.Current
		switch {
		case ecs.Has(w, e, component.MarineComponent.Kind()):
			next = marineAnimation(w, e)
		case ecs.Has(w, e, component.PincerComponent.Kind()):
			next = pincerAnimation(w, e)
		}

		if next != anim.Current && anim.Has(next) {
			anim.Current = next
			anim.Frame = 0
			return
		}
		anim.Frame++
	})
}

func marineAnimation(w *ecs.World, e ecs.Entity) component.AnimationID {
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		return component.AnimationIdle
	}
	if marine, ok := ecs.Get(w, e, component.MarineComponent.Kind()); ok && marine.HasShot {
		return component.AnimationShoot
	}
	if !m.Grounded {
		return component.AnimationJump
	}
	if math.Abs(m.Velocity.X) > moveThreshold {
		return component.AnimationMove
	}
	return component.AnimationIdle
}

func pincerAnimation(w *ecs.World, e ecs.Entity) component.AnimationID {
	if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && math.Abs(m.Velocity.X) > moveThreshold {
		return component.AnimationWalk
	}
	return component.AnimationIdle
}
