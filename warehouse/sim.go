// Wires one producer and one consumer to a shared queue and runs both
// loops to completion.

package warehouse

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// SimConfig groups the knobs for one run.
type SimConfig struct {
	QueueKind string           // "monitor" (default) or "channel"
	Capacity  int              // bounded buffer size, must be positive
	Target    int              // orders to fulfill before normal shutdown; 0 means all of Orders
	Orders    []Order          // pre-generated workload, enqueued in slice order
	Model     FulfillmentModel // nil fulfills instantly
	Gap       time.Duration    // optional spacing between enqueues
}

// Simulation owns the queue and both loop drivers for a single run.
type Simulation struct {
	Queue   OrderQueue
	Journal *Journal

	producer *Producer
	consumer *Consumer
	elapsed  time.Duration
}

// NewSimulation builds a ready-to-run Simulation from cfg. Panics when
// the target exceeds the available orders, since the consumer could
// never reach it.
func NewSimulation(cfg SimConfig) *Simulation {
	target := cfg.Target
	if target == 0 {
		target = len(cfg.Orders)
	}
	if target > len(cfg.Orders) {
		panic(fmt.Sprintf("target of %d orders exceeds the %d generated", target, len(cfg.Orders)))
	}

	q := NewQueue(cfg.QueueKind, cfg.Capacity)
	j := NewJournal()
	return &Simulation{
		Queue:    q,
		Journal:  j,
		producer: &Producer{Queue: q, Orders: cfg.Orders, Gap: cfg.Gap},
		consumer: &Consumer{Queue: q, Target: target, Model: cfg.Model, Journal: j},
	}
}

// Run executes the producer and consumer loops, one goroutine each, and
// joins both before returning. A producer ErrShutdown after the consumer
// reached its target is the normal unwinding of backpressure, not a
// failure; any other error is returned.
func (s *Simulation) Run() error {
	start := time.Now()

	var (
		wg      sync.WaitGroup
		prodErr error
		consErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		prodErr = s.producer.Run()
	}()
	go func() {
		defer wg.Done()
		consErr = s.consumer.Run()
	}()
	wg.Wait()
	s.elapsed = time.Since(start)

	if consErr != nil {
		return consErr
	}
	if prodErr != nil && !errors.Is(prodErr, ErrShutdown) {
		return prodErr
	}
	logrus.Infof("run complete: %d orders fulfilled in %v", s.Queue.Fulfilled(), s.elapsed.Round(time.Millisecond))
	return nil
}

// Metrics derives the final metrics snapshot. Call it after Run returns.
func (s *Simulation) Metrics() *Metrics {
	return CollectMetrics(s.producer.Produced(), s.Queue.Fulfilled(), s.Journal, s.elapsed)
}
