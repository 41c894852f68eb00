package workload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleConfigs_WinterCatalog verifies that the shipped
// examples/workload.yaml loads, validates, and generates orders.
func TestExampleConfigs_WinterCatalog(t *testing.T) {
	// GIVEN the workload.yaml example config
	path := filepath.Join("..", "..", "examples", "workload.yaml")
	spec, err := LoadWorkloadSpec(path)
	require.NoError(t, err, "failed to load workload.yaml")

	// THEN validation passes
	require.NoError(t, spec.Validate(), "validation failed")

	// THEN the catalog matches the file
	require.Len(t, spec.Kinds, 3, "expected 3 kinds")
	assert.Equal(t, "boots", spec.Kinds[0].Name)
	assert.Equal(t, 3.0, spec.Kinds[0].Weight)
	assert.Equal(t, int64(7), spec.Seed)
	assert.Equal(t, 5, spec.Quantity.Min)
	assert.Equal(t, 40, spec.Quantity.Max)

	// THEN generation works and respects the quantity bounds
	orders, err := GenerateOrders(spec, 50)
	require.NoError(t, err)
	require.Len(t, orders, 50)
	for _, o := range orders {
		assert.GreaterOrEqual(t, o.Quantity, 5)
		assert.LessOrEqual(t, o.Quantity, 40)
	}

	// THEN boots dominate, matching the 3.0 weight
	boots := 0
	for _, o := range orders {
		if o.Kind == "boots" {
			boots++
		}
	}
	assert.Greater(t, boots, 15, "boots should dominate a 3:0.5:1.5 weighting")
}
