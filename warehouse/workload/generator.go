// Generates deterministic order batches from a WorkloadSpec: kinds are
// sampled by normalized weight, quantities uniformly from the configured
// range, and IDs run sequentially in arrival order.

package workload

import (
	"fmt"
	"math/rand"

	"github.com/JayArr001/warehouse-sim/warehouse"
)

// Generator produces orders from a validated WorkloadSpec. Output is
// deterministic for a given spec and seed.
type Generator struct {
	spec *WorkloadSpec
	rng  *rand.Rand
	cum  []float64 // cumulative kind weights, normalized to sum to 1
	next int64     // last assigned order ID
}

// NewGenerator validates spec and prepares a seeded generator.
func NewGenerator(spec *WorkloadSpec) (*Generator, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	return &Generator{
		spec: spec,
		rng:  rand.New(rand.NewSource(spec.Seed)),
		cum:  cumulativeWeights(spec.Kinds),
	}, nil
}

// Generate produces the next n orders in arrival sequence. IDs start at
// 1 and continue across calls.
func (g *Generator) Generate(n int) []warehouse.Order {
	orders := make([]warehouse.Order, 0, n)
	for i := 0; i < n; i++ {
		g.next++
		orders = append(orders, warehouse.Order{
			ID:       g.next,
			Kind:     g.sampleKind(),
			Quantity: g.sampleQuantity(),
		})
	}
	return orders
}

// GenerateOrders validates spec, seeds a fresh generator, and produces
// n orders with IDs 1..n.
func GenerateOrders(spec *WorkloadSpec, n int) ([]warehouse.Order, error) {
	g, err := NewGenerator(spec)
	if err != nil {
		return nil, err
	}
	return g.Generate(n), nil
}

// sampleKind draws a catalog name by inverting the cumulative weight
// distribution.
func (g *Generator) sampleKind() string {
	u := g.rng.Float64()
	for i, c := range g.cum {
		if u < c {
			return g.spec.Kinds[i].Name
		}
	}
	// Float round-off can leave the final cumulative value below 1.
	return g.spec.Kinds[len(g.spec.Kinds)-1].Name
}

// sampleQuantity draws uniformly from the configured inclusive range,
// falling back to the default range when the spec omits the block.
func (g *Generator) sampleQuantity() int {
	lo, hi := g.spec.Quantity.Min, g.spec.Quantity.Max
	if lo == 0 && hi == 0 {
		lo, hi = defaultQuantityMin, defaultQuantityMax
	}
	if hi == lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

func cumulativeWeights(kinds []KindSpec) []float64 {
	total := 0.0
	for _, k := range kinds {
		total += k.Weight
	}
	cum := make([]float64, len(kinds))
	running := 0.0
	for i, k := range kinds {
		running += k.Weight / total
		cum[i] = running
	}
	return cum
}
