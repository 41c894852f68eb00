// Package testutil provides shared test infrastructure for warehouse-sim.
// It consolidates the golden scenario dataset types and assertion helpers
// used by end-to-end tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase represents a single scenario from the golden dataset.
// Each scenario pins a one-kind catalog with a fixed quantity, so the
// expected aggregates are exact rather than sampled.
type GoldenTestCase struct {
	Name             string        `json:"name"`
	Queue            string        `json:"queue"`
	Capacity         int           `json:"capacity"`
	Orders           int           `json:"orders"`
	Seed             int64         `json:"seed"`
	Kind             string        `json:"kind"`
	Quantity         int           `json:"quantity"`
	BaseLatencyMs    float64       `json:"base_latency_ms"`
	PerUnitLatencyMs float64       `json:"per_unit_latency_ms"`
	Metrics          GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected metrics from a golden scenario.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Produced   int `json:"produced"`
	Fulfilled  int `json:"fulfilled"`
	TotalUnits int `json:"total_units"`

	// Deterministic floating-point metrics (sum of modeled durations)
	SimulatedWorkMs float64 `json:"simulated_work_ms"`

	// Note: wall_clock and throughput are wall-time derived and NOT deterministic, so not tested
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: warehouse/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from warehouse/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
