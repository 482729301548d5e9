package ecs

// CollisionEventKind names a state change caused by a collision reaction.
type CollisionEventKind string

const (
	CollisionEventGrounded    CollisionEventKind = "grounded"
	CollisionEventBulletHit   CollisionEventKind = "bullet_hit"
	CollisionEventPincerTurn  CollisionEventKind = "pincer_turn"
	CollisionEventOutOfBounds CollisionEventKind = "out_of_bounds"
)

// CollisionEvent is pushed by the reaction systems. Other is zero when the
// event has no second party, e.g. landing.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
}

// EventQueue holds the events raised during the current tick. The scheduler
// empties it after the last system so nothing leaks into the next tick.
type EventQueue struct {
	collisions []CollisionEvent
}

func (q *EventQueue) PushCollision(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.collisions = append(q.collisions, evt)
}

// Collisions returns a copy of this tick's events in push order.
func (q *EventQueue) Collisions() []CollisionEvent {
	if q == nil || len(q.collisions) == 0 {
		return nil
	}
	return append([]CollisionEvent(nil), q.collisions...)
}

// Drain returns this tick's events and empties the queue.
func (q *EventQueue) Drain() []CollisionEvent {
	if q == nil || len(q.collisions) == 0 {
		return nil
	}
	out := q.collisions
	q.collisions = nil
	return out
}

func (q *EventQueue) flush() {
	if q != nil {
		q.collisions = q.collisions[:0]
	}
}
