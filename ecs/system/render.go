package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"golang.org/x/image/colornames"
)

var kindColors = map[component.Kind]color.RGBA{
	component.KindMarine:   colornames.Steelblue,
	component.KindPincer:   colornames.Crimson,
	component.KindBullet:   colornames.Gold,
	component.KindPlatform: colornames.Slategray,
}

var (
	impactColor    = colornames.Orange
	explosionColor = colornames.Orangered
)

// RenderSystem draws every box as a flat rectangle in its kind's colour,
// plus the short-lived effects, offset by the camera.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	camX, camY := cameraOffset(w, r.camEntity)

	entities := w.Query(component.BoundingBoxComponent.Kind(), component.KindComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ki, kj := entityKind(w, entities[i]), entityKind(w, entities[j])
		if (ki == component.KindPlatform) != (kj == component.KindPlatform) {
			return ki == component.KindPlatform
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
		if !ok {
			continue
		}
		clr, ok := kindColors[entityKind(w, e)]
		if !ok {
			continue
		}
		vector.DrawFilledRect(
			screen,
			float32(bb.Left()-camX),
			float32(bb.Top()-camY),
			float32(bb.HalfSize.X*2),
			float32(bb.HalfSize.Y*2),
			clr,
			false,
		)
	}

	drawEffects(w, screen, component.BulletImpactComponent.Kind(), 4, impactColor, camX, camY)
	drawEffects(w, screen, component.ExplosionComponent.Kind(), 20, explosionColor, camX, camY)
}

func drawEffects[T any](w *ecs.World, screen *ebiten.Image, kind component.ComponentKind[T], radius float32, clr color.RGBA, camX, camY float64) {
	for _, e := range w.Query(kind, component.TransformComponent.Kind()) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		r, c := radius, clr
		if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
			// grow and fade over the effect's lifetime
			p := ttl.Progress()
			r *= float32(1 + p)
			c = fade(c, 1-p)
		}
		vector.DrawFilledCircle(screen, float32(t.X-camX), float32(t.Y-camY), r, c, true)
	}
}

// fade scales a premultiplied colour toward transparent.
func fade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

func cameraOffset(w *ecs.World, cam ecs.Entity) (float64, float64) {
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		return t.X, t.Y
	}
	return 0, 0
}
