package system

import (
	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update moves the camera's top-left corner toward the view centred on its
// target, then keeps the view inside the level boundary.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByName(w, camComp.TargetName)
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.BoundingBoxComponent.Kind())
	if !ok {
		return
	}

	viewW, viewH := camComp.Width, camComp.Height
	if viewW <= 0 || viewH <= 0 {
		viewW, viewH = common.ScreenWidth, common.ScreenHeight
	}

	x := target.Position.X - viewW/2
	y := target.Position.Y - viewH/2
	if camComp.Smoothness > 0 && camComp.Smoothness < 1 {
		x = common.Lerp(camTransform.X, x, camComp.Smoothness)
		y = common.Lerp(camTransform.Y, y, camComp.Smoothness)
	}

	if bound, ok := levelBoundary(w); ok {
		x = common.Clamp(x, bound.Left, bound.Right-viewW)
		y = common.Clamp(y, bound.Top, bound.Bottom-viewH)
	}

	camTransform.X = x
	camTransform.Y = y
}

func findEntityByName(w *ecs.World, name string) ecs.Entity {
	for _, e := range w.Query(component.NameComponent.Kind()) {
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && n.Value == name {
			return e
		}
	}
	return 0
}

// levelBoundary returns the boundary of the first boundary-kind entity.
func levelBoundary(w *ecs.World) (component.Boundary, bool) {
	for _, e := range w.Query(component.BoundaryComponent.Kind(), component.KindComponent.Kind()) {
		if entityKind(w, e) != component.KindBoundary {
			continue
		}
		if b, ok := ecs.Get(w, e, component.BoundaryComponent.Kind()); ok {
			return *b, true
		}
	}
	return component.Boundary{}, false
}
