package bough

import "sync"

// eventQueue is the FIFO of pending events. Producers may push from any
// goroutine; the driver's tick is the only consumer.
type eventQueue struct {
	mu    sync.Mutex
	items []Event
	spare []Event
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

// takeAll removes and returns every queued event. Events pushed after the
// call wait for the next takeAll. The returned slice is only valid until the
// following takeAll.
func (q *eventQueue) takeAll() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	clear(q.spare)
	q.items = q.spare[:0]
	q.spare = out
	return out
}

func (q *eventQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
