// ChannelQueue is the channel-native rendition of the bounded blocking
// handoff: a buffered channel carries the orders and a closed done
// channel stands in for the monitor's closed flag. Blocking and waking
// are handled by the runtime, so there is no polling here either.

package warehouse

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ChannelQueue implements OrderQueue on a buffered channel.
type ChannelQueue struct {
	ch       chan Order
	done     chan struct{}
	shutdown sync.Once

	fulfilled atomic.Int64
}

// NewChannelQueue creates a ChannelQueue with the given fixed capacity.
// Panics if capacity is not positive.
func NewChannelQueue(capacity int) *ChannelQueue {
	if capacity <= 0 {
		panic(fmt.Sprintf("queue capacity must be positive, got %d", capacity))
	}
	return &ChannelQueue{
		ch:   make(chan Order, capacity),
		done: make(chan struct{}),
	}
}

// Enqueue sends o into the buffer, blocking while it is full.
func (q *ChannelQueue) Enqueue(o Order) error {
	// An enqueue arriving after shutdown must fail even when buffer
	// space is free, so check done before offering the send.
	select {
	case <-q.done:
		return ErrShutdown
	default:
	}

	select {
	case q.ch <- o:
		return nil
	case <-q.done:
		return ErrShutdown
	}
}

// Dequeue receives the head order, blocking while the buffer is empty.
// Buffered orders are still delivered after Shutdown; ErrShutdown is
// returned only once the buffer has drained.
func (q *ChannelQueue) Dequeue() (Order, error) {
	select {
	case o := <-q.ch:
		return o, nil
	default:
	}

	select {
	case o := <-q.ch:
		return o, nil
	case <-q.done:
		// Both arms can be ready at once and select picks randomly, so
		// re-try the receive to preserve drain-before-fail semantics.
		select {
		case o := <-q.ch:
			return o, nil
		default:
			return Order{}, ErrShutdown
		}
	}
}

// Shutdown closes the done channel, releasing every blocked caller.
// Subsequent calls are no-ops.
func (q *ChannelQueue) Shutdown() {
	q.shutdown.Do(func() {
		close(q.done)
	})
}

// RecordFulfilled increments the fulfilled-order count and returns the
// new value.
func (q *ChannelQueue) RecordFulfilled() int {
	return int(q.fulfilled.Add(1))
}

// Fulfilled returns the number of orders recorded as fulfilled.
func (q *ChannelQueue) Fulfilled() int {
	return int(q.fulfilled.Load())
}

// Len returns the number of currently buffered orders. The value is
// approximate while both loops are running and exact once they stop.
func (q *ChannelQueue) Len() int {
	return len(q.ch)
}

// Cap returns the fixed buffer capacity.
func (q *ChannelQueue) Cap() int {
	return cap(q.ch)
}
