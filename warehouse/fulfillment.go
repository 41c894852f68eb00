// Models how long fulfilling one order takes. The durations feed
// time.Sleep in the consumer loop to simulate picking and packing work.

package warehouse

import "time"

// FulfillmentModel estimates the time to fulfill a single order.
type FulfillmentModel interface {
	FulfillmentTime(o Order) time.Duration
}

// LinearModel computes fulfillment time from two coefficients:
// Base + Quantity*PerUnit. The zero value fulfills instantly, which is
// what most tests use.
type LinearModel struct {
	Base    time.Duration // fixed cost per order
	PerUnit time.Duration // incremental cost per quantity unit
}

// FulfillmentTime returns Base + o.Quantity*PerUnit.
func (m LinearModel) FulfillmentTime(o Order) time.Duration {
	return m.Base + time.Duration(o.Quantity)*m.PerUnit
}

// DefaultModel returns the stock timings: 100ms per order plus 20ms per
// quantity unit.
func DefaultModel() LinearModel {
	return LinearModel{
		Base:    100 * time.Millisecond,
		PerUnit: 20 * time.Millisecond,
	}
}
