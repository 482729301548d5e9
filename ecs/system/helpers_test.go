package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

type boxSpec struct {
	kind   component.Kind
	name   string
	x, y   float64
	w, h   float64
	vel    cp.Vector
	mover  bool
	static bool
}

func spawn(t *testing.T, w *ecs.World, s boxSpec) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	bb, err := component.NewBoundingBox(s.x, s.y, s.w, s.h)
	require.NoError(t, err)
	kind := s.kind
	require.NoError(t, ecs.Add(w, e, component.KindComponent.Kind(), &kind))
	require.NoError(t, ecs.Add(w, e, component.BoundingBoxComponent.Kind(), &bb))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{}))
	if s.name != "" {
		require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: s.name}))
	}
	if s.mover {
		require.NoError(t, ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{Velocity: s.vel}))
		require.NoError(t, ecs.Add(w, e, component.CollideeComponent.Kind(), &component.Collidee{}))
	}
	return e
}

func spawnBoundary(t *testing.T, w *ecs.World, name string, left, right, top, bottom float64) ecs.Entity {
	t.Helper()
	b, err := component.NewBoundary(left, right, top, bottom)
	require.NoError(t, err)
	e := ecs.CreateEntity(w)
	kind := component.KindBoundary
	require.NoError(t, ecs.Add(w, e, component.KindComponent.Kind(), &kind))
	require.NoError(t, ecs.Add(w, e, component.BoundaryComponent.Kind(), &b))
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	return e
}

func record(t *testing.T, w *ecs.World, e ecs.Entity) *component.Collidee {
	t.Helper()
	rec, ok := ecs.Get(w, e, component.CollideeComponent.Kind())
	require.True(t, ok)
	return rec
}

func boxOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.BoundingBox {
	t.Helper()
	bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
	require.True(t, ok)
	return bb
}

func motionOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Motion {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	require.True(t, ok)
	return m
}

func newCollision(policy component.SlotPolicy) *CollisionSystem {
	opts := collision.DefaultOptions()
	opts.Policy = policy
	return NewCollisionSystem(opts, 0)
}
