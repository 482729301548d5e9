package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/common"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

// PhysicsSystem owns the Chipmunk space for loose props such as crates.
// Kinematic movers (marine, pincers, bullets) never enter the space; the
// collision system reads dynamic bodies' velocity from here so movers see
// a falling crate as a moving obstacle.
type PhysicsSystem struct {
	space   *cp.Space
	gravity float64

	entities map[ecs.Entity]*bodyInfo
	bounds   map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	if gravity == 0 {
		gravity = common.Gravity
	}
	ps := &PhysicsSystem{
		gravity:  gravity,
		entities: make(map[ecs.Entity]*bodyInfo),
		bounds:   make(map[ecs.Entity]*bodyInfo),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: ps.gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity retunes the space, used when collision.yaml is reloaded.
func (ps *PhysicsSystem) SetGravity(g float64) {
	if ps == nil {
		return
	}
	ps.gravity = g
	if ps.space != nil {
		ps.space.SetGravity(cp.Vector{X: 0, Y: g})
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = ps.newSpace()
	}

	ps.syncEntities(w)
	ps.syncBoundaries(w)
	ps.settleBoxes(w)

	ps.space.Step(1.0)

	ps.syncBoxes(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.BoundingBoxComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
		if !ok {
			continue
		}

		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil {
				bodyComp.Body = info.body
				if len(info.shapes) > 0 {
					bodyComp.Shape = info.shapes[0]
				}
			}
			continue
		}

		info := ps.createBodyInfo(*bb, *bodyComp)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func (ps *PhysicsSystem) createBodyInfo(bb component.BoundingBox, bodyComp component.PhysicsBody) *bodyInfo {
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = bb.HalfSize.X*2, bb.HalfSize.Y*2
	}

	if bodyComp.Static {
		box := cp.BB{L: bb.Position.X - width/2, B: bb.Position.Y - height/2, R: bb.Position.X + width/2, T: bb.Position.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, box, 0)
		shape.SetFriction(bodyComp.Friction)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(bb.Position)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
}

// syncBoundaries walls each Boundary entity in with static segments so
// dynamic props stay inside the level like everything else.
func (ps *PhysicsSystem) syncBoundaries(w *ecs.World) {
	for _, e := range w.Query(component.BoundaryComponent.Kind()) {
		if _, exists := ps.bounds[e]; exists {
			continue
		}
		b, ok := ecs.Get(w, e, component.BoundaryComponent.Kind())
		if !ok || b.Validate() != nil {
			continue
		}

		segments := []struct {
			a cp.Vector
			b cp.Vector
		}{
			{a: cp.Vector{X: b.Left, Y: b.Top}, b: cp.Vector{X: b.Right, Y: b.Top}},
			{a: cp.Vector{X: b.Left, Y: b.Bottom}, b: cp.Vector{X: b.Right, Y: b.Bottom}},
			{a: cp.Vector{X: b.Left, Y: b.Top}, b: cp.Vector{X: b.Left, Y: b.Bottom}},
			{a: cp.Vector{X: b.Right, Y: b.Top}, b: cp.Vector{X: b.Right, Y: b.Bottom}},
		}

		info := &bodyInfo{static: true, body: ps.space.StaticBody}
		for _, seg := range segments {
			shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1)
			shape.SetFriction(0.8)
			ps.space.AddShape(shape)
			info.shapes = append(info.shapes, shape)
		}
		ps.bounds[e] = info
	}
}

// settleBoxes records the pre-step position of every dynamic body so the
// collision pass sees where it came from.
func (ps *PhysicsSystem) settleBoxes(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.BoundingBoxComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, bb *component.BoundingBox) {
		if !body.Dynamic() {
			return
		}
		bb.SetPosition(body.Body.Position().X, body.Body.Position().Y)
		bb.Settle()
	})
}

func (ps *PhysicsSystem) syncBoxes(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.BoundingBoxComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, bb *component.BoundingBox) {
		if !body.Dynamic() {
			return
		}
		pos := body.Body.Position()
		bb.SetPosition(pos.X, pos.Y)
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.entities, e)
	}
	for e, info := range ps.bounds {
		if w.IsAlive(e) && ecs.Has(w, e, component.BoundaryComponent.Kind()) {
			continue
		}
		ps.removeInfo(info)
		delete(ps.bounds, e)
	}
}

func (ps *PhysicsSystem) removeInfo(info *bodyInfo) {
	for _, shape := range info.shapes {
		if shape != nil {
			ps.space.RemoveShape(shape)
		}
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
}

// Reset drops every body, used when a level is reloaded.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	log.Printf("PhysicsSystem: reset (%d bodies, %d boundaries)", len(ps.entities), len(ps.bounds))
	ps.space = ps.newSpace()
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.bounds = make(map[ecs.Entity]*bodyInfo)
}

// velocityOf is the obstacle velocity the collision core sees: a dynamic
// body's simulated velocity, otherwise the kinematic intent, otherwise zero.
func velocityOf(w *ecs.World, e ecs.Entity) cp.Vector {
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Dynamic() {
		return body.Body.Velocity()
	}
	if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
		return m.Velocity
	}
	return cp.Vector{}
}
