package system

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/marinescroller/collision"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
	"golang.org/x/sync/errgroup"
)

// CollisionSystem fills every mover's Collidee record for the tick. It never
// moves anything; MotionSystem applies the corrections afterwards.
type CollisionSystem struct {
	Options collision.Options
	// ParallelThreshold is the mover count from which detection is split
	// across goroutines. Zero or less means always serial.
	ParallelThreshold int
	Debug             bool
}

func NewCollisionSystem(opts collision.Options, parallelThreshold int) *CollisionSystem {
	return &CollisionSystem{Options: opts, ParallelThreshold: parallelThreshold}
}

// collisionBody is the read-only view of a collider used during one pass.
type collisionBody struct {
	entity   ecs.Entity
	name     string
	kind     component.Kind
	box      component.BoundingBox
	velocity cp.Vector
}

type collisionMover struct {
	collisionBody
	record *component.Collidee
}

type collisionBound struct {
	entity ecs.Entity
	name   string
	bound  component.Boundary
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.CollideeComponent.Kind(), func(e ecs.Entity, rec *component.Collidee) {
		rec.Clear()
	})

	bodies, movers := snapshotColliders(w)
	bounds := snapshotBoundaries(w)
	if len(movers) == 0 {
		return
	}

	var err error
	if s.ParallelThreshold > 0 && len(movers) >= s.ParallelThreshold {
		err = s.detectParallel(movers, bodies, bounds)
	} else {
		err = s.detectAll(movers, bodies, bounds)
	}
	if err != nil {
		log.Printf("CollisionSystem: %v", err)
	}
}

// detectAll runs every mover in movers, carrying on past failures so one bad
// mover does not leave the rest without records.
func (s *CollisionSystem) detectAll(movers []collisionMover, bodies []collisionBody, bounds []collisionBound) error {
	var errs []error
	for i := range movers {
		if err := s.detect(&movers[i], bodies, bounds); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// detectParallel splits movers into contiguous chunks. Each mover's record
// is written by exactly one goroutine and the snapshots are never mutated.
func (s *CollisionSystem) detectParallel(movers []collisionMover, bodies []collisionBody, bounds []collisionBound) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(movers) {
		workers = len(movers)
	}
	chunk := (len(movers) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(movers); start += chunk {
		part := movers[start:min(start+chunk, len(movers))]
		g.Go(func() error {
			return s.detectAll(part, bodies, bounds)
		})
	}
	return g.Wait()
}

var errNoRecord = errors.New("mover has no collision record")

func (s *CollisionSystem) detect(m *collisionMover, bodies []collisionBody, bounds []collisionBound) error {
	if m.record == nil {
		return fmt.Errorf("%s (%v): %w", m.name, m.entity, errNoRecord)
	}
	for _, o := range bodies {
		if o.entity == m.entity || !blocks(m.kind, o.kind) {
			continue
		}
		if !collision.Intersecting(m.box, o.box) {
			continue
		}
		axis, details := collision.Resolve(o.name, m.box, o.box, m.velocity, o.velocity, s.Options)
		details.Entity = uint64(o.entity)
		m.record.Set(axis, details, s.Options.Policy)
		if s.Debug {
			log.Printf("CollisionSystem: %s hit %s on %s axis, correction=%.3f", m.name, o.name, axis, details.Correction)
		}
	}

	for _, b := range bounds {
		res, ok := collision.Clamp(b.name, m.box, b.bound)
		if !ok {
			continue
		}
		if res.Horizontal != nil {
			res.Horizontal.Entity = uint64(b.entity)
		}
		if res.Vertical != nil {
			res.Vertical.Entity = uint64(b.entity)
		}
		m.record.Merge(res, s.Options.Policy)
		if s.Debug {
			log.Printf("CollisionSystem: %s clamped by %s", m.name, b.name)
		}
	}
	return nil
}

// snapshotColliders builds the per-pass view of every collider. Kinematic
// boxes are projected to where their intent would take them; dynamic props
// already hold their stepped position.
func snapshotColliders(w *ecs.World) ([]collisionBody, []collisionMover) {
	entities := w.Query(component.ColliderComponent.Kind(), component.BoundingBoxComponent.Kind())
	bodies := make([]collisionBody, 0, len(entities))
	var movers []collisionMover

	for _, e := range entities {
		bb, ok := ecs.Get(w, e, component.BoundingBoxComponent.Kind())
		if !ok {
			continue
		}
		body := collisionBody{
			entity:   e,
			name:     entityName(w, e),
			kind:     entityKind(w, e),
			box:      *bb,
			velocity: velocityOf(w, e),
		}
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); !ok || !pb.Dynamic() {
			body.box.Position = bb.OldPosition.Add(body.velocity)
		}
		bodies = append(bodies, body)

		if !ecs.Has(w, e, component.MotionComponent.Kind()) {
			continue
		}
		if rec, ok := ecs.Get(w, e, component.CollideeComponent.Kind()); ok {
			movers = append(movers, collisionMover{collisionBody: body, record: rec})
		}
	}
	return bodies, movers
}

func snapshotBoundaries(w *ecs.World) []collisionBound {
	var out []collisionBound
	ecs.ForEach(w, component.BoundaryComponent.Kind(), func(e ecs.Entity, b *component.Boundary) {
		if b.Validate() != nil {
			return
		}
		out = append(out, collisionBound{entity: e, name: entityName(w, e), bound: *b})
	})
	return out
}

func entityName(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && n.Value != "" {
		return n.Value
	}
	return entityKind(w, e).String()
}

func entityKind(w *ecs.World, e ecs.Entity) component.Kind {
	if k, ok := ecs.Get(w, e, component.KindComponent.Kind()); ok {
		return *k
	}
	return component.KindNone
}
