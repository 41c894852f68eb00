package workload

import (
	"testing"
	"time"

	"github.com/JayArr001/warehouse-sim/warehouse"
	"github.com/JayArr001/warehouse-sim/warehouse/internal/testutil"
)

// goldenSpec builds the one-kind fixed-quantity catalog a golden scenario
// pins down.
func goldenSpec(tc testutil.GoldenTestCase) *WorkloadSpec {
	return &WorkloadSpec{
		Seed:     tc.Seed,
		Kinds:    []KindSpec{{Name: tc.Kind, Weight: 1}},
		Quantity: QuantitySpec{Min: tc.Quantity, Max: tc.Quantity},
	}
}

func goldenModel(tc testutil.GoldenTestCase) warehouse.LinearModel {
	return warehouse.LinearModel{
		Base:    time.Duration(tc.BaseLatencyMs * float64(time.Millisecond)),
		PerUnit: time.Duration(tc.PerUnitLatencyMs * float64(time.Millisecond)),
	}
}

func runGoldenScenario(t *testing.T, tc testutil.GoldenTestCase) *warehouse.Simulation {
	t.Helper()

	orders, err := GenerateOrders(goldenSpec(tc), tc.Orders)
	if err != nil {
		t.Fatalf("GenerateOrders: %v", err)
	}

	s := warehouse.NewSimulation(warehouse.SimConfig{
		QueueKind: tc.Queue,
		Capacity:  tc.Capacity,
		Orders:    orders,
		Model:     goldenModel(tc),
	})
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s
}

// TestGoldenScenarios_EndToEndMetrics verifies:
// GIVEN the golden scenario dataset
// WHEN each scenario runs end to end, generation through fulfillment
// THEN the reported metrics match the pinned expected values
func TestGoldenScenarios_EndToEndMetrics(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset contains no test cases")
	}

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			s := runGoldenScenario(t, tc)
			m := s.Metrics()

			if m.Produced != tc.Metrics.Produced {
				t.Errorf("produced: got %d, want %d", m.Produced, tc.Metrics.Produced)
			}
			if m.Fulfilled != tc.Metrics.Fulfilled {
				t.Errorf("fulfilled: got %d, want %d", m.Fulfilled, tc.Metrics.Fulfilled)
			}
			if m.TotalUnits != tc.Metrics.TotalUnits {
				t.Errorf("total_units: got %d, want %d", m.TotalUnits, tc.Metrics.TotalUnits)
			}
			if got := m.PerKind[tc.Kind]; got != tc.Metrics.Fulfilled {
				t.Errorf("per_kind[%s]: got %d, want %d", tc.Kind, got, tc.Metrics.Fulfilled)
			}

			const relTol = 1e-9
			workMs := float64(m.SimulatedWork) / float64(time.Millisecond)
			testutil.AssertFloat64Equal(t, "simulated_work_ms", tc.Metrics.SimulatedWorkMs, workMs, relTol)
		})
	}
}

// TestGoldenScenarios_Invariants verifies conservation and ordering laws
// alongside the golden comparisons. Golden tests answer "did the output
// change?" but not "is the output correct?"; these checks verify the laws
// directly.
func TestGoldenScenarios_Invariants(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset contains no test cases")
	}

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			s := runGoldenScenario(t, tc)

			// Order conservation: every produced order is fulfilled
			// exactly once and the queue drains completely.
			m := s.Metrics()
			if m.Produced != tc.Orders {
				t.Errorf("conservation: produced %d, want %d", m.Produced, tc.Orders)
			}
			if m.Fulfilled != m.Produced {
				t.Errorf("conservation: fulfilled %d, produced %d", m.Fulfilled, m.Produced)
			}
			if got := s.Queue.Len(); got != 0 {
				t.Errorf("conservation: %d orders left in queue after run", got)
			}

			// FIFO: the journal holds IDs 1..n in ascending order.
			recs := s.Journal.Records()
			if len(recs) != tc.Orders {
				t.Fatalf("journal holds %d records, want %d", len(recs), tc.Orders)
			}
			for i, rec := range recs {
				if rec.Order.ID != int64(i+1) {
					t.Fatalf("journal record %d has ID %d, want %d", i, rec.Order.ID, i+1)
				}
			}

			// Causality: each recorded duration equals the modeled
			// fulfillment time of its order.
			model := goldenModel(tc)
			for _, rec := range recs {
				if want := model.FulfillmentTime(rec.Order); rec.Took != want {
					t.Errorf("record for %v took %v, want %v", rec.Order, rec.Took, want)
				}
			}
		})
	}
}
