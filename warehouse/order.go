// Defines the Order value that moves through the queue. Orders are
// immutable once created: every field is set by the generator and the
// value is copied across the queue boundary, so producer and consumer
// never share mutable state.

package warehouse

import "fmt"

// Order is one unit of work handed from the producer to the consumer.
type Order struct {
	ID       int64  // unique, monotonically increasing sequence number
	Kind     string // catalog label, for example "sneakers"
	Quantity int    // non-negative unit count; drives the fulfillment time model
}

// String formats the order for log lines and error messages.
func (o Order) String() string {
	return fmt.Sprintf("order %d (%s x%d)", o.ID, o.Kind, o.Quantity)
}
