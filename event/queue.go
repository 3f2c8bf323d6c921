package event

import (
	"sync/atomic"

	"github.com/lixenwraith/snowhop/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for state machine triggers
// Producers are the input poller and UI callbacks, the consumer is the session tick.
// When full, the oldest pending trigger is dropped.
type EventQueue struct {
	slots [parameter.EventQueueSize]GameEvent
	ready [parameter.EventQueueSize]atomic.Bool // Slot fully written
	head  atomic.Uint64                         // Next slot to read
	tail  atomic.Uint64                         // Next slot to claim
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot with CAS, writes it, then marks it ready
func (q *EventQueue) Push(ev GameEvent) {
	for {
		t := q.tail.Load()
		if !q.tail.CompareAndSwap(t, t+1) {
			continue
		}
		idx := t & parameter.EventBufferMask
		q.slots[idx] = ev
		q.ready[idx].Store(true)

		// Drop oldest on overflow
		if h := q.head.Load(); t+1-h > parameter.EventQueueSize {
			q.head.CompareAndSwap(h, t+1-parameter.EventQueueSize)
		}
		return
	}
}

// Drain appends pending triggers to dst in FIFO order and returns it
// Stops early at a slot whose producer has not finished writing
func (q *EventQueue) Drain(dst []GameEvent) []GameEvent {
	h := q.head.Load()
	t := q.tail.Load()
	if t-h > parameter.EventQueueSize {
		h = t - parameter.EventQueueSize
	}
	for ; h < t; h++ {
		idx := h & parameter.EventBufferMask
		if !q.ready[idx].Load() {
			break
		}
		dst = append(dst, q.slots[idx])
		q.ready[idx].Store(false)
	}
	q.head.Store(h)
	return dst
}

// Len returns the approximate pending count
func (q *EventQueue) Len() int {
	h := q.head.Load()
	t := q.tail.Load()
	if t <= h {
		return 0
	}
	if n := t - h; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}
