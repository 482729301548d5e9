package ecs

import "github.com/hajimehoshi/ebiten/v2"

// System advances the world by one fixed tick.
type System interface {
	Update(w *World)
}

// Drawer is implemented by systems that also paint the world each frame.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// Scheduler runs systems in the fixed order they were registered in. The
// order is the collision pipeline: every system sees the writes of the ones
// before it within the same tick.
type Scheduler struct {
	systems []System
	drawers []Drawer
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(sys System) {
	if sys == nil {
		return
	}
	s.systems = append(s.systems, sys)
	if d, ok := sys.(Drawer); ok {
		s.drawers = append(s.drawers, d)
	}
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
	w.Events().flush()
	s.ticks++
}

func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, d := range s.drawers {
		d.Draw(w, screen)
	}
}

// Ticks is the number of completed Update calls.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
