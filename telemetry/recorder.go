package telemetry

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/milk9111/marinescroller/ecs"
	"github.com/milk9111/marinescroller/ecs/component"
)

// CollisionRecord is one populated record slot in one tick.
type CollisionRecord struct {
	Tick           int     `csv:"tick"`
	Entity         uint64  `csv:"entity"`
	Mover          string  `csv:"mover"`
	Axis           string  `csv:"axis"`
	Obstacle       string  `csv:"obstacle"`
	ObstacleEntity uint64  `csv:"obstacle_entity"`
	Correction     float64 `csv:"correction"`
	VelocityX      float64 `csv:"obstacle_velocity_x"`
	VelocityY      float64 `csv:"obstacle_velocity_y"`
}

// Recorder appends every tick's collision records to a CSV trace. It runs
// as the last system so it sees the records the motion system consumed and
// the events raised during the tick.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	tick          int
	headerWritten bool
	events        map[ecs.CollisionEventKind]int
}

func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out, events: make(map[ecs.CollisionEventKind]int)}
}

// Create opens path for writing, creating parent directories. Returns nil
// if path is empty (tracing disabled).
func Create(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace: %w", err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

func (r *Recorder) Update(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	r.tick++
	if err := r.Write(Snapshot(w, r.tick)); err != nil {
		log.Printf("Recorder: %v", err)
	}
	for _, evt := range w.Events().Collisions() {
		r.events[evt.Kind]++
	}
}

// EventCounts returns how many collision events of each kind were seen.
func (r *Recorder) EventCounts() map[ecs.CollisionEventKind]int {
	if r == nil {
		return nil
	}
	return maps.Clone(r.events)
}

// Write appends records, emitting the header on the first non-empty write.
func (r *Recorder) Write(records []CollisionRecord) error {
	if r == nil || len(records) == 0 {
		return nil
	}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing collisions: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return fmt.Errorf("writing collisions: %w", err)
	}
	return nil
}

// Close logs the event totals and closes the trace file if Create opened it.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	log.Printf("Recorder: %d ticks, grounded=%d bullet_hit=%d pincer_turn=%d out_of_bounds=%d",
		r.tick,
		r.events[ecs.CollisionEventGrounded],
		r.events[ecs.CollisionEventBulletHit],
		r.events[ecs.CollisionEventPincerTurn],
		r.events[ecs.CollisionEventOutOfBounds],
	)
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Snapshot flattens every populated Collidee slot in w into records.
func Snapshot(w *ecs.World, tick int) []CollisionRecord {
	var out []CollisionRecord
	ecs.ForEach(w, component.CollideeComponent.Kind(), func(e ecs.Entity, rec *component.Collidee) {
		name := ""
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
			name = n.Value
		}
		for _, axis := range []component.Axis{component.AxisHorizontal, component.AxisVertical} {
			d := rec.Slot(axis)
			if d == nil {
				continue
			}
			out = append(out, CollisionRecord{
				Tick:           tick,
				Entity:         uint64(e),
				Mover:          name,
				Axis:           axis.String(),
				Obstacle:       d.Name,
				ObstacleEntity: d.Entity,
				Correction:     d.Correction,
				VelocityX:      d.Velocity.X,
				VelocityY:      d.Velocity.Y,
			})
		}
	})
	return out
}
