package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/marinescroller/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if got := len(Entities(w)); got != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, got)
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for a live entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should be dead after DestroyEntity")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("destroying twice should report false")
			}
			if got := len(Entities(w)); got != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, got)
			}
		})
	}
}

func TestReusedSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused.generation() == old.generation() {
		t.Fatalf("reused slot kept generation %d", old.generation())
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, reused, kind) {
		t.Fatalf("components must not survive into a reused slot")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not reach components")
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	kind := component.NewComponentKind[int]()

	if err := Add(w, e, kind, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, kind, intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentTable(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	names := component.NewComponent[component.Name]()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "get_returns_stored_pointer",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				again, _ := Get(w, e1, ints.Kind())
				if *again != 11 {
					t.Fatalf("mutation through pointer lost, got %d", *again)
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "has_on_two_entities",
			setup: func() error {
				if err := Add(w, e1, names.Kind(), &component.Name{Value: "Marine"}); err != nil {
					return err
				}
				return Add(w, e2, names.Kind(), &component.Name{Value: "Pincer"})
			},
			check: func(t *testing.T) {
				if !Has(w, e1, names.Kind()) || !Has(w, e2, names.Kind()) {
					t.Fatalf("expected both entities to have a name")
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 has no int")
				}
			},
			teardown: func() bool { return Remove(w, e1, names.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	var ents []Entity
	for i := 0; i < 5; i++ {
		ents = append(ents, CreateEntity(w))
	}
	// Added out of order to check the result is sorted by slot.
	for _, i := range []int{4, 0, 2, 3} {
		if err := Add(w, ents[i], ka, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	for _, i := range []int{2, 4, 3} {
		s := "x"
		if err := Add(w, ents[i], kb, &s); err != nil {
			t.Fatal(err)
		}
	}
	DestroyEntity(w, ents[3])

	got := w.Query(ka, kb)
	if len(got) != 2 || got[0] != ents[2] || got[1] != ents[4] {
		t.Fatalf("expected [%v %v], got %v", ents[2], ents[4], got)
	}

	first, ok := w.First(ka)
	if !ok || first != ents[0] {
		t.Fatalf("expected First to return %v, got %v ok=%v", ents[0], first, ok)
	}

	if got := w.Query(component.NewComponentKind[float64]()); got != nil {
		t.Fatalf("unknown kind should match nothing, got %v", got)
	}
}

func TestForEachSkipsEntitiesDestroyedMidPass(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for i, e := range []Entity{e1, e2, e3} {
		if err := Add(w, e, kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	var seen []Entity
	ForEach(w, kind, func(e Entity, _ *int) {
		seen = append(seen, e)
		if e == e1 {
			DestroyEntity(w, e2)
		}
	})
	if len(seen) != 2 || seen[0] != e1 || seen[1] != e3 {
		t.Fatalf("expected [%v %v], got %v", e1, e3, seen)
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	all := CreateEntity(w)
	three := CreateEntity(w)
	one := CreateEntity(w)
	for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
		if err := Add(w, all, k, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}
	for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
		if err := Add(w, three, k, intPtr(2)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, one, ka, intPtr(3)); err != nil {
		t.Fatal(err)
	}

	count2 := 0
	ForEach2(w, ka, kb, func(Entity, *int, *int) { count2++ })
	if count2 != 2 {
		t.Fatalf("ForEach2: expected 2, got %d", count2)
	}

	var res3 []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, _, _, _ *int) { res3 = append(res3, e) })
	if len(res3) != 2 {
		t.Fatalf("ForEach3: expected 2, got %v", res3)
	}

	var res4 []Entity
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res4 = append(res4, e) })
	if len(res4) != 1 || res4[0].id() != all.id() {
		t.Fatalf("ForEach4: expected only %v, got %v", all, res4)
	}
}

type recordingSystem struct {
	name  string
	order *[]string
}

func (s recordingSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	w.Events().PushCollision(CollisionEvent{Kind: CollisionEventGrounded})
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen int
	sched := NewScheduler(
		recordingSystem{name: "a", order: &order},
		nil,
		recordingSystem{name: "b", order: &order},
	)
	sched.Add(systemFunc(func(w *World) { seen = len(w.Events().Collisions()) }))

	sched.Update(w)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen != 2 {
		t.Fatalf("later systems should see earlier events, saw %d", seen)
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("events should be flushed after the tick, got %v", got)
	}
	if len(sched.Systems()) != 3 {
		t.Fatalf("nil systems must be dropped, got %d", len(sched.Systems()))
	}
	if sched.Ticks() != 1 {
		t.Fatalf("expected 1 tick, got %d", sched.Ticks())
	}
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.PushCollision(CollisionEvent{Entity: 1, Kind: CollisionEventGrounded})
	q.PushCollision(CollisionEvent{Entity: 2, Other: 3, Kind: CollisionEventBulletHit})

	peek := q.Collisions()
	peek[0].Kind = CollisionEventOutOfBounds
	if q.Collisions()[0].Kind != CollisionEventGrounded {
		t.Fatalf("Collisions must return a copy")
	}

	got := q.Drain()
	if len(got) != 2 || got[1].Other != 3 {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Collisions() != nil {
		t.Fatalf("queue should be empty after Drain")
	}

	var nilQueue *EventQueue
	nilQueue.PushCollision(CollisionEvent{})
	if nilQueue.Drain() != nil {
		t.Fatalf("nil queue must stay empty")
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
