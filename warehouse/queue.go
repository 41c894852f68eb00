// Implements the bounded FIFO handoff between producer and consumer.
// MonitorQueue is the reference implementation: one mutex plus two
// condition variables ("not full" for producers, "not empty" for
// consumers), with every wait wrapped in a predicate re-check loop.

package warehouse

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrShutdown is returned by Enqueue and Dequeue once the queue has been
// shut down and, for Dequeue, no buffered orders remain.
var ErrShutdown = errors.New("order queue is shut down")

// OrderQueue is the handoff surface between the producer and the
// consumer. Enqueue blocks while the buffer is full and Dequeue blocks
// while it is empty; neither ever polls. Shutdown releases every blocked
// caller.
//
// The fulfilled count lives on the queue rather than on the consumer so
// that all state read from more than one goroutine sits behind a single
// synchronization guard.
type OrderQueue interface {
	// Enqueue appends o at the tail, blocking while the buffer is at
	// capacity. It returns ErrShutdown once the queue is shut down; the
	// order was not stored in that case.
	Enqueue(o Order) error

	// Dequeue removes and returns the head order, blocking while the
	// buffer is empty. After Shutdown it keeps returning buffered orders
	// until none remain, then returns ErrShutdown.
	Dequeue() (Order, error)

	// Shutdown marks the queue closed and wakes every blocked caller.
	// Calling it more than once has no further effect.
	Shutdown()

	// RecordFulfilled increments the fulfilled-order count and returns
	// the new value.
	RecordFulfilled() int

	// Fulfilled returns the number of orders recorded as fulfilled.
	Fulfilled() int

	// Len returns the number of currently buffered orders.
	Len() int

	// Cap returns the fixed buffer capacity.
	Cap() int
}

// Queue implementation names accepted by NewQueue.
const (
	QueueMonitor = "monitor"
	QueueChannel = "channel"
)

var validQueueKinds = map[string]bool{
	QueueMonitor: true,
	QueueChannel: true,
}

// IsValidQueueKind reports whether name selects a queue implementation.
func IsValidQueueKind(name string) bool {
	return validQueueKinds[name]
}

// NewQueue creates an OrderQueue implementation by name. The empty
// string selects the monitor queue. Panics on an unrecognized name;
// callers validate user input with IsValidQueueKind first.
func NewQueue(name string, capacity int) OrderQueue {
	switch name {
	case "", QueueMonitor:
		return NewMonitorQueue(capacity)
	case QueueChannel:
		return NewChannelQueue(capacity)
	default:
		panic(fmt.Sprintf("unknown queue kind: %s", name))
	}
}

// MonitorQueue implements OrderQueue with a mutex and two condition
// variables. Producers wait on notFull, consumers wait on notEmpty, and
// each side signals the opposite condition after mutating the buffer, so
// a blocked caller is woken exactly when its predicate can have changed.
// Every field is guarded by mu; there are no reads outside the lock.
type MonitorQueue struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf       []Order
	capacity  int
	closed    bool
	fulfilled int
}

// NewMonitorQueue creates a MonitorQueue with the given fixed capacity.
// Panics if capacity is not positive.
func NewMonitorQueue(capacity int) *MonitorQueue {
	if capacity <= 0 {
		panic(fmt.Sprintf("queue capacity must be positive, got %d", capacity))
	}
	q := &MonitorQueue{
		buf:      make([]Order, 0, capacity),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends o at the tail, suspending while the buffer is full.
// The full-buffer predicate is re-checked after every wake: condition
// variable waits can wake spuriously, and another producer may have
// claimed the freed slot first.
func (q *MonitorQueue) Enqueue(o Order) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.buf) == q.capacity && !q.closed {
		logrus.Debugf("queue full (%d/%d), producer waiting", len(q.buf), q.capacity)
		q.notFull.Wait()
	}
	if q.closed {
		return ErrShutdown
	}

	q.buf = append(q.buf, o)
	q.notEmpty.Signal()
	return nil
}

// Dequeue removes and returns the head order, suspending while the
// buffer is empty. Orders still buffered at shutdown are drained before
// ErrShutdown is reported, mirroring receive-after-close on a channel.
func (q *MonitorQueue) Dequeue() (Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.buf) == 0 && !q.closed {
		logrus.Debugf("queue empty, consumer waiting")
		q.notEmpty.Wait()
	}
	if len(q.buf) == 0 {
		return Order{}, ErrShutdown
	}

	o := q.buf[0]
	q.buf = q.buf[1:]
	q.notFull.Signal()
	return o, nil
}

// Shutdown marks the queue closed and broadcasts on both conditions so
// that every suspended caller re-checks its predicate and unwinds.
// Subsequent calls are no-ops.
func (q *MonitorQueue) Shutdown() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// RecordFulfilled increments the fulfilled-order count under the queue
// lock and returns the new value.
func (q *MonitorQueue) RecordFulfilled() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.fulfilled++
	return q.fulfilled
}

// Fulfilled returns the number of orders recorded as fulfilled.
func (q *MonitorQueue) Fulfilled() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.fulfilled
}

// Len returns the number of currently buffered orders.
func (q *MonitorQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Cap returns the fixed buffer capacity.
func (q *MonitorQueue) Cap() int {
	return q.capacity
}
