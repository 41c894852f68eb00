// Aggregates statistics about one completed run for final reporting.

package warehouse

import (
	"fmt"
	"sort"
	"time"
)

// Metrics summarizes a finished run.
type Metrics struct {
	Produced      int            // orders accepted by the queue
	Fulfilled     int            // orders fulfilled by the consumer
	TotalUnits    int            // sum of fulfilled quantities
	PerKind       map[string]int // fulfilled order count per catalog kind
	SimulatedWork time.Duration  // sum of simulated fulfillment durations
	Elapsed       time.Duration  // wall-clock run duration
}

// CollectMetrics derives Metrics from the finished run's artifacts.
func CollectMetrics(produced, fulfilled int, j *Journal, elapsed time.Duration) *Metrics {
	m := &Metrics{
		Produced:  produced,
		Fulfilled: fulfilled,
		PerKind:   make(map[string]int),
		Elapsed:   elapsed,
	}
	if j == nil {
		return m
	}
	for _, f := range j.Records() {
		m.PerKind[f.Order.Kind]++
		m.TotalUnits += f.Order.Quantity
		m.SimulatedWork += f.Took
	}
	return m
}

// Print displays the aggregated metrics at the end of the run.
func (m *Metrics) Print() {
	fmt.Println("=== Fulfillment Metrics ===")
	fmt.Printf("Orders Produced     : %d\n", m.Produced)
	fmt.Printf("Orders Fulfilled    : %d\n", m.Fulfilled)
	fmt.Printf("Units Shipped       : %d\n", m.TotalUnits)

	kinds := make([]string, 0, len(m.PerKind))
	for kind := range m.PerKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("  %-18s: %d\n", kind, m.PerKind[kind])
	}

	if m.Fulfilled > 0 {
		avg := m.SimulatedWork / time.Duration(m.Fulfilled)
		fmt.Printf("Avg Simulated Work  : %v\n", avg)
	}
	fmt.Printf("Wall Clock          : %v\n", m.Elapsed.Round(time.Millisecond))
	if m.Elapsed > 0 {
		rate := float64(m.Fulfilled) / m.Elapsed.Seconds()
		fmt.Printf("Throughput          : %.2f orders/sec\n", rate)
	}
}
