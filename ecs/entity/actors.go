package entity

import (
	"fmt"

	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/milk9111/marinescroller/levels"
)

func NewMarineAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "marine.yaml", x, y)
}

// NewPincerAt spawns a pincer that patrols the given platform.
func NewPincerAt(w *ecs.World, x, y float64, platform component.Boundary) (ecs.Entity, error) {
	if err := platform.Validate(); err != nil {
		return 0, fmt.Errorf("pincer: platform: %w", err)
	}
	e, err := buildAt(w, "pincer.yaml", x, y)
	if err != nil {
		return 0, err
	}
	p, _ := ecs.Get(w, e, component.PincerComponent.Kind())
	p.Platform = platform
	return e, nil
}

// NewBullet fires a bullet from (x, y) travelling in direction dir (-1 or 1).
func NewBullet(w *ecs.World, owner ecs.Entity, x, y, dir float64) (ecs.Entity, error) {
	e, err := buildAt(w, "bullet.yaml", x, y)
	if err != nil {
		return 0, err
	}
	b, _ := ecs.Get(w, e, component.BulletComponent.Kind())
	b.Owner = uint64(owner)
	if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && dir < 0 {
		m.Velocity.X = -m.Velocity.X
	}
	return e, nil
}

// NewPlatform spawns a static solid occupying p.
func NewPlatform(w *ecs.World, p levels.Platform) (ecs.Entity, error) {
	return buildSized(w, "platform.yaml", p.Name, p.X, p.Y, p.Width, p.Height)
}

// NewCrateAt spawns a loose crate driven by the physics space.
func NewCrateAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildAt(w, "crate.yaml", x, y)
}

func NewBulletImpactAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildEffect(w, "bullet_impact.yaml", x, y)
}

func NewExplosionAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	return buildEffect(w, "explosion.yaml", x, y)
}

// NewBoundary spawns the static limit entity for a level or region.
func NewBoundary(w *ecs.World, name string, b component.Boundary) (ecs.Entity, error) {
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("boundary %q: %w", name, err)
	}
	e, err := BuildEntity(w, "boundary.yaml")
	if err != nil {
		return 0, err
	}
	bound := b
	if err := ecs.Add(w, e, component.BoundaryComponent.Kind(), &bound); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("boundary %q: %w", name, err)
	}
	if name != "" {
		if err := SetEntityName(w, e, name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

func buildAt(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityPosition(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: %w", prefab, err)
	}
	return e, nil
}

func buildSized(w *ecs.World, prefab, name string, x, y, width, height float64) (ecs.Entity, error) {
	e, err := buildAt(w, prefab, x, y)
	if err != nil {
		return 0, err
	}
	if err := SetEntitySize(w, e, width, height); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: %w", prefab, err)
	}
	if name != "" {
		if err := SetEntityName(w, e, name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}

func buildEffect(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: effect has no transform", prefab)
	}
	t.X, t.Y = x, y
	return e, nil
}
