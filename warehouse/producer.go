// The producer side of a run: feeds pre-generated orders into the queue
// from a single goroutine, paced only by Enqueue backpressure unless a
// gap is configured.

package warehouse

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Producer enqueues a fixed batch of orders in slice order. Exactly one
// goroutine runs it.
type Producer struct {
	Queue  OrderQueue
	Orders []Order

	// Gap optionally spaces enqueues out. Zero means the producer is
	// paced by queue backpressure alone.
	Gap time.Duration

	produced int
}

// Run enqueues every order in sequence. It returns nil once all orders
// are accepted, or the Enqueue error that stopped the loop; ErrShutdown
// here means the consumer finished before the batch was exhausted.
func (p *Producer) Run() error {
	for _, o := range p.Orders {
		if err := p.Queue.Enqueue(o); err != nil {
			logrus.Warnf("producer stopping after %d orders: %v", p.produced, err)
			return err
		}
		p.produced++
		logrus.Infof("producer added %v - size: %d", o, p.Queue.Len())

		if p.Gap > 0 {
			time.Sleep(p.Gap)
		}
	}
	logrus.Infof("producer done: %d orders enqueued", p.produced)
	return nil
}

// Produced returns how many orders were accepted by the queue. Read it
// after Run returns.
func (p *Producer) Produced() int {
	return p.produced
}
