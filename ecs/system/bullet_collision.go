package system

import (
	"log"

	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/milk9111/marinescroller/ecs/entity"
)

// BulletCollisionSystem consumes the records of bullets. A bullet that hit
// anything is removed; hitting a pincer costs it health, leaving the level
// just removes the bullet.
type BulletCollisionSystem struct{}

func NewBulletCollisionSystem() *BulletCollisionSystem {
	return &BulletCollisionSystem{}
}

func (s *BulletCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.BulletComponent.Kind(), component.CollideeComponent.Kind(), component.BoundingBoxComponent.Kind(), func(e ecs.Entity, b *component.Bullet, rec *component.Collidee, bb *component.BoundingBox) {
		if react(component.KindBullet, rec) != reactHit {
			return
		}

		hit := rec.Horizontal
		if hit == nil {
			hit = rec.Vertical
		}
		other := ecs.Entity(hit.Entity)
		pos := bb.OldPosition

		if entityKind(w, other) == component.KindBoundary {
			w.Events().PushCollision(ecs.CollisionEvent{Entity: e, Other: other, Kind: ecs.CollisionEventOutOfBounds})
			ecs.DestroyEntity(w, e)
			return
		}

		w.Events().PushCollision(ecs.CollisionEvent{Entity: e, Other: other, Kind: ecs.CollisionEventBulletHit})
		ecs.DestroyEntity(w, e)

		if _, err := entity.NewBulletImpactAt(w, pos.X, pos.Y); err != nil {
			log.Printf("BulletCollisionSystem: spawn impact: %v", err)
		}

		if p, ok := ecs.Get(w, other, component.PincerComponent.Kind()); ok {
			s.damage(w, other, p, b.Damage)
		}
	})
}

func (s *BulletCollisionSystem) damage(w *ecs.World, e ecs.Entity, p *component.Pincer, amount int) {
	p.Health -= amount
	if p.Health > 0 {
		return
	}

	x, y := 0.0, 0.0
	if bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind()); ok {
		x, y = bb.Position.X, bb.Position.Y
	}
	ecs.DestroyEntity(w, e)
	if _, err := entity.NewExplosionAt(w, x, y); err != nil {
		log.Printf("BulletCollisionSystem: spawn explosion: %v", err)
	}
}
