package warehouse

import "time"

// Fulfillment records one completed order.
type Fulfillment struct {
	Order       Order
	FulfilledAt time.Time     // wall-clock completion instant
	Took        time.Duration // simulated fulfillment duration
}

// Journal is the append-only record of fulfilled orders, in completion
// order. Only the consumer goroutine appends, and readers inspect it
// after the run's goroutines are joined, so no locking is needed.
type Journal struct {
	records []Fulfillment
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{records: make([]Fulfillment, 0)}
}

// Record appends one fulfillment.
func (j *Journal) Record(f Fulfillment) {
	j.records = append(j.records, f)
}

// Records returns the journal contents for iteration. The returned
// slice is the journal's internal storage; callers must not modify it.
func (j *Journal) Records() []Fulfillment {
	return j.records
}

// Len returns the number of recorded fulfillments.
func (j *Journal) Len() int {
	return len(j.records)
}
