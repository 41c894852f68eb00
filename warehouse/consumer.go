// The consumer side of a run: drains the queue in FIFO order, sleeps for
// the modeled fulfillment time, and shuts the queue down once the target
// count is reached.

package warehouse

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Consumer dequeues and fulfills orders until Target orders are done.
// Exactly one goroutine runs it.
type Consumer struct {
	Queue  OrderQueue
	Target int

	// Model estimates per-order fulfillment time. Nil fulfills
	// instantly.
	Model FulfillmentModel

	// Journal, when set, receives one record per fulfilled order.
	Journal *Journal
}

// Run processes orders until the target count is fulfilled, then shuts
// the queue down and returns nil. If Dequeue fails first, the error is
// returned and nothing further is processed.
func (c *Consumer) Run() error {
	for {
		o, err := c.Queue.Dequeue()
		if err != nil {
			logrus.Warnf("consumer stopping: %v", err)
			return err
		}

		var took time.Duration
		if c.Model != nil {
			took = c.Model.FulfillmentTime(o)
		}
		logrus.Infof("consumer fulfilling %v, expected to take %v", o, took)
		if took > 0 {
			time.Sleep(took)
		}

		filled := c.Queue.RecordFulfilled()
		if c.Journal != nil {
			c.Journal.Record(Fulfillment{Order: o, FulfilledAt: time.Now(), Took: took})
		}
		logrus.Infof("consumer fulfilled %v - total filled: %d", o, filled)

		if filled >= c.Target {
			logrus.Infof("consumer reached target of %d orders, shutting down", c.Target)
			c.Queue.Shutdown()
			return nil
		}
	}
}
