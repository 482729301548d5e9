package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	debugArrow          = 8
)

var (
	debugOutlineColor    = cp.FColor{R: 0.9, G: 0.9, B: 0.9, A: 0.8}
	debugStaticColor     = cp.FColor{R: 0.5, G: 0.5, B: 0.6, A: 0.5}
	debugDynamicColor    = cp.FColor{R: 1, G: 0.8, B: 0.2, A: 0.6}
	debugBoxColor        = cp.FColor{R: 0.2, G: 0.6, B: 1, A: 0.9}
	debugHorizontalColor = cp.FColor{R: 1, G: 0.3, B: 0.3, A: 1}
	debugVerticalColor   = cp.FColor{R: 0.3, G: 1, B: 0.3, A: 1}
)

// DebugSystem overlays the physics space and this tick's collision records.
type DebugSystem struct {
	Physics *PhysicsSystem
	Enabled bool
}

func NewDebugSystem(physics *PhysicsSystem, enabled bool) *DebugSystem {
	return &DebugSystem{Physics: physics, Enabled: enabled}
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || !d.Enabled {
		return
	}
	DrawPhysicsDebug(d.Physics.Space(), w, screen)
	DrawCollisionDebug(w, screen)
}

func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	camX, camY := debugCameraTransform(w)
	cp.DrawSpace(space, &spaceDrawer{screen: screen, camX: camX, camY: camY})
}

// DrawCollisionDebug outlines every mover and draws each populated record
// slot as a line from the mover toward the obstacle it was pushed out of.
func DrawCollisionDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	camX, camY := debugCameraTransform(w)
	d := &spaceDrawer{screen: screen, camX: camX, camY: camY}

	hits := 0
	ecs.ForEach2(w, component.CollideeComponent.Kind(), component.BoundingBoxComponent.Kind(), func(e ecs.Entity, rec *component.Collidee, bb *component.BoundingBox) {
		d.drawBox(bb, debugBoxColor)

		if h := rec.Horizontal; h != nil {
			hits++
			end := bb.Position.Add(cp.Vector{X: common.Sign(h.Correction) * (bb.HalfSize.X + debugArrow)})
			d.drawLine(bb.Position, end, debugHorizontalColor)
		}
		if v := rec.Vertical; v != nil {
			hits++
			end := bb.Position.Add(cp.Vector{Y: common.Sign(v.Correction) * (bb.HalfSize.Y + debugArrow)})
			d.drawLine(bb.Position, end, debugVerticalColor)
		}
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Collisions: %d\nTPS: %0.1f", hits, ebiten.ActualTPS()), 10, 10)
}

// spaceDrawer adapts cp.DrawSpace to ebiten, in world units offset by the
// camera.
type spaceDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, _ cp.FColor, _ interface{}) {
	d.drawPolygon(circlePoints(pos, radius), outline)
	d.drawLine(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), outline)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.drawLine(a, b, fill)
}

// DrawFatSegment draws the level walls added by PhysicsSystem.
func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, _ cp.FColor, _ interface{}) {
	ax, ay := d.toScreen(a)
	bx, by := d.toScreen(b)
	width := float32(max(2*radius, 1))
	vector.StrokeLine(d.screen, ax, ay, bx, by, width, toNRGBA(outline), false)
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	if count > 0 {
		d.drawPolygon(verts[:count], outline)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.toScreen(pos)
	vector.DrawFilledCircle(d.screen, x, y, float32(size/2), toNRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return debugOutlineColor
}

// ShapeColor separates crates the physics engine moves from static level
// geometry.
func (d *spaceDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if body := shape.Body(); body != nil && body.GetType() == cp.BODY_DYNAMIC {
		return debugDynamicColor
	}
	return debugStaticColor
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return debugOutlineColor
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return debugHorizontalColor
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func (d *spaceDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	ax, ay := d.toScreen(a)
	bx, by := d.toScreen(b)
	vector.StrokeLine(d.screen, ax, ay, bx, by, 1, toNRGBA(c), false)
}

func (d *spaceDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i, a := range verts {
		d.drawLine(a, verts[(i+1)%len(verts)], c)
	}
}

func (d *spaceDrawer) drawBox(bb *component.BoundingBox, c cp.FColor) {
	d.drawPolygon([]cp.Vector{
		{X: bb.Left(), Y: bb.Top()},
		{X: bb.Right(), Y: bb.Top()},
		{X: bb.Right(), Y: bb.Bottom()},
		{X: bb.Left(), Y: bb.Bottom()},
	}, c)
}

func (d *spaceDrawer) toScreen(v cp.Vector) (float32, float32) {
	return float32(v.X - d.camX), float32(v.Y - d.camY)
}

func circlePoints(center cp.Vector, radius float64) []cp.Vector {
	if radius <= 0 {
		return nil
	}
	points := make([]cp.Vector, debugCircleSegments)
	for i := range points {
		t := 2 * math.Pi * float64(i) / debugCircleSegments
		points[i] = center.Add(cp.ForAngle(t).Mult(radius))
	}
	return points
}

func toNRGBA(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(common.Clamp(float64(v), 0, 1) * 255)
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func debugCameraTransform(w *ecs.World) (float64, float64) {
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	return cameraOffset(w, camEntity)
}
