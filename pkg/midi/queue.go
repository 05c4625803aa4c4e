package midi

import (
	"sort"
	"sync"
)

// EventQueue keeps events ordered by sample offset. Events sharing an
// offset keep the order they were added in.
type EventQueue struct {
	events []Event
	mu     sync.RWMutex
	sorted bool
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]Event, 0, 128),
		sorted: true,
	}
}

func (q *EventQueue) Add(event Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, event)
	q.sorted = false
}

func (q *EventQueue) AddMultiple(events []Event) {
	if len(events) == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, events...)
	q.sorted = false
}

// Drain appends to dst every event with offset < endSample, removes them
// from the queue and returns the extended slice. Passing a reused dst keeps
// the per-block dispatch free of allocations once it has grown.
func (q *EventQueue) Drain(dst []Event, endSample int64) []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.sorted {
		q.sortEvents()
	}

	n := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].SampleOffset() >= endSample
	})
	if n == 0 {
		return dst
	}
	dst = append(dst, q.events[:n]...)
	copy(q.events, q.events[n:])
	for i := len(q.events) - n; i < len(q.events); i++ {
		q.events[i] = nil
	}
	q.events = q.events[:len(q.events)-n]
	return dst
}

func (q *EventQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = q.events[:0]
	q.sorted = true
}

func (q *EventQueue) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.events)
}

func (q *EventQueue) sortEvents() {
	sort.SliceStable(q.events, func(i, j int) bool {
		return q.events[i].SampleOffset() < q.events[j].SampleOffset()
	})
	q.sorted = true
}
