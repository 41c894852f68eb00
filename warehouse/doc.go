// Package warehouse provides the bounded producer/consumer core of the
// order fulfillment simulator.
//
// # Reading Guide
//
// Start with these three files to understand the handoff:
//   - order.go: the immutable Order value that crosses the queue
//   - queue.go: the OrderQueue interface and MonitorQueue, the mutex plus
//     two-condition-variable implementation
//   - sim.go: run orchestration joining one producer and one consumer
//     over a shared queue
//
// # Architecture
//
// A run is two goroutines and one queue. The producer enqueues a
// pre-generated batch of orders and blocks whenever the buffer is at
// capacity; the consumer dequeues in FIFO order, sleeps for the modeled
// fulfillment time, and shuts the queue down once its target count is
// reached. Shutdown releases whichever side is still blocked, so both
// loops always unwind and the run joins cleanly.
//
// Two queue implementations share the OrderQueue contract:
//   - MonitorQueue: explicit monitor discipline with sync.Cond wait
//     loops, the default
//   - ChannelQueue: buffered channel plus a done channel, the
//     channel-native rendition of the same semantics
//
// Order generation lives in the workload sub-package; the fulfillment
// time model is the FulfillmentModel interface with LinearModel as the
// stock implementation.
package warehouse
