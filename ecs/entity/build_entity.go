package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/milk9111/marinescroller/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"kind":          addKind,
	"name":          addName,
	"transform":     addTransform,
	"bounding_box":  addBoundingBox,
	"collider":      addCollider,
	"collidee":      addCollidee,
	"motion":        addMotion,
	"input":         addInput,
	"marine":        addMarine,
	"pincer":        addPincer,
	"bullet":        addBullet,
	"bullet_impact": addBulletImpact,
	"explosion":     addExplosion,
	"physics_body":  addPhysicsBody,
	"animation":     addAnimation,
	"camera":        addCamera,
	"ttl":           addTTL,
}

var componentBuildOrder = []string{
	"kind",
	"name",
	"transform",
	"bounding_box",
	"collider",
	"collidee",
	"motion",
	"input",
	"marine",
	"pincer",
	"bullet",
	"bullet_impact",
	"explosion",
	"physics_body",
	"animation",
	"camera",
	"ttl",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

// SetEntityPosition places an entity's bounding box centre at (x, y) and
// settles it there so the first tick does not see a phantom move.
func SetEntityPosition(w *ecs.World, e ecs.Entity, x, y float64) error {
	bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
	if !ok {
		return fmt.Errorf("set position: entity %v has no bounding box", e)
	}
	bb.SetPosition(x, y)
	bb.Settle()
	return nil
}

// SetEntitySize replaces an entity's bounding box extent, keeping its centre.
func SetEntitySize(w *ecs.World, e ecs.Entity, width, height float64) error {
	bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
	if !ok {
		return fmt.Errorf("set size: entity %v has no bounding box", e)
	}
	sized, err := component.NewBoundingBox(bb.Position.X, bb.Position.Y, width, height)
	if err != nil {
		return fmt.Errorf("set size: %w", err)
	}
	*bb = sized
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Width = width
		body.Height = height
	}
	return nil
}

// SetEntityName overrides the display name used in collision records.
func SetEntityName(w *ecs.World, e ecs.Entity, name string) error {
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name})
}

func addKind(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	name, ok := raw.(string)
	if !ok {
		return fmt.Errorf("kind must be a string, got %T", raw)
	}
	for k := component.KindNone; k <= component.KindBoundary; k++ {
		if k.String() == name {
			kind := k
			return ecs.Add(w, e, component.KindComponent.Kind(), &kind)
		}
	}
	return fmt.Errorf("unknown kind %q", name)
}

func addName(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.NameComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode name spec: %w", err)
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Value})
}

func addTransform(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})
}

func addBoundingBox(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BoundingBoxComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bounding box spec: %w", err)
	}
	bb, err := component.NewBoundingBox(spec.X, spec.Y, spec.Width, spec.Height)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.BoundingBoxComponent.Kind(), &bb)
}

func addCollider(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{})
}

func addCollidee(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CollideeComponent.Kind(), &component.Collidee{})
}

func addMotion(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MotionComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode motion spec: %w", err)
	}
	return ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
		Velocity: cp.Vector{X: spec.VelocityX, Y: spec.VelocityY},
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addMarine(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MarineComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode marine spec: %w", err)
	}
	return ecs.Add(w, e, component.MarineComponent.Kind(), &component.Marine{
		MaxSpeed:      spec.MaxSpeed,
		Acceleration:  spec.Acceleration,
		JumpSpeed:     spec.JumpSpeed,
		ShootCooldown: spec.ShootCooldown,
		Facing:        1,
	})
}

func addPincer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PincerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode pincer spec: %w", err)
	}
	if spec.Health <= 0 {
		spec.Health = 1
	}
	return ecs.Add(w, e, component.PincerComponent.Kind(), &component.Pincer{
		Speed:     spec.Speed,
		Health:    spec.Health,
		Direction: -1,
	})
}

func addBullet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.BulletComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode bullet spec: %w", err)
	}
	if spec.Damage <= 0 {
		spec.Damage = 1
	}
	if err := ecs.Add(w, e, component.BulletComponent.Kind(), &component.Bullet{Damage: spec.Damage}); err != nil {
		return err
	}
	if spec.Speed != 0 {
		if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
			m.Velocity.X = spec.Speed
		}
	}
	return nil
}

func addBulletImpact(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.BulletImpactComponent.Kind(), &component.BulletImpact{})
}

func addExplosion(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{})
}

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.PhysicsBodyComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}

	width, height := spec.Width, spec.Height
	if bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind()); ok {
		if width == 0 {
			width = bb.HalfSize.X * 2
		}
		if height == 0 {
			height = bb.HalfSize.Y * 2
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("physics body needs a size or a bounding box")
	}
	if !spec.Static && spec.Mass == 0 {
		spec.Mass = 1
	}

	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    width,
		Height:   height,
		Mass:     spec.Mass,
		Friction: spec.Friction,
		Static:   spec.Static,
	})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	types := make([]component.AnimationID, 0, len(spec.Types))
	for _, t := range spec.Types {
		types = append(types, component.AnimationID(t))
	}
	anim := component.Animation{Current: component.AnimationID(spec.Current), Types: types}
	if anim.Current != "" && !anim.Has(anim.Current) {
		return fmt.Errorf("animation %q not in types %v", anim.Current, spec.Types)
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &anim)
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		TargetName: spec.TargetName,
		Width:      spec.Width,
		Height:     spec.Height,
		Smoothness: spec.Smoothness,
	})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), component.NewTTL(spec.Frames))
}
