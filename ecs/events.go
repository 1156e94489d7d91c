package ecs

// EventKind names something that happened during a frame.
type EventKind string

const (
	EventCoinCollected     EventKind = "coin_collected"
	EventJumpCoinCollected EventKind = "jump_coin_collected"
	EventEnemyStomped      EventKind = "enemy_stomped"
	EventEnemyShot         EventKind = "enemy_shot"
	EventPlayerDied        EventKind = "player_died"
	EventGravityFlipped    EventKind = "gravity_flipped"
	EventProjectileFired   EventKind = "projectile_fired"
	EventDoubleJump        EventKind = "double_jump"
)

// Event is a gameplay event emitted by a system. Value carries the score or
// count attached to it, if any.
type Event struct {
	Kind   EventKind
	Entity Entity
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
