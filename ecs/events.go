package ecs

import "github.com/jakecoffman/cp"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventCollision = "collision"

// CollisionEvent is emitted by the physics step for every new contact. Normal
// points from A toward B.
type CollisionEvent struct {
	A      Entity
	B      Entity
	Normal cp.Vector
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

// Drain returns the events of the given type and keeps the rest queued.
func (q *EventQueue) Drain(eventType string) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out, rest []Event
	for _, evt := range q.items {
		if evt.Type == eventType {
			out = append(out, evt)
		} else {
			rest = append(rest, evt)
		}
	}
	q.items = rest
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
