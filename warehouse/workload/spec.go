package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level order-generation configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Seed     int64        `yaml:"seed"`
	Kinds    []KindSpec   `yaml:"kinds"`
	Quantity QuantitySpec `yaml:"quantity,omitempty"` // zero value selects the default 0..99 range
}

// KindSpec is one catalog entry with its relative sampling weight.
type KindSpec struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// QuantitySpec bounds the uniform per-order quantity draw, inclusive.
type QuantitySpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default quantity range applied when the spec omits the quantity block.
const (
	defaultQuantityMin = 0
	defaultQuantityMax = 99
)

// DefaultWorkloadSpec returns the stock three-kind shoe catalog with
// equal weights and quantities drawn uniformly from [0, 99].
func DefaultWorkloadSpec() *WorkloadSpec {
	return &WorkloadSpec{
		Seed: 42,
		Kinds: []KindSpec{
			{Name: "hiking", Weight: 1},
			{Name: "sneakers", Weight: 1},
			{Name: "running", Weight: 1},
		},
		Quantity: QuantitySpec{Min: defaultQuantityMin, Max: defaultQuantityMax},
	}
}

// LoadWorkloadSpec reads and parses a YAML order-generation file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *WorkloadSpec) Validate() error {
	if len(s.Kinds) == 0 {
		return fmt.Errorf("at least one order kind required")
	}
	seen := make(map[string]bool, len(s.Kinds))
	for i, k := range s.Kinds {
		if err := validateKind(&k, i); err != nil {
			return err
		}
		if seen[k.Name] {
			return fmt.Errorf("kinds[%d]: duplicate kind %q", i, k.Name)
		}
		seen[k.Name] = true
	}
	if s.Quantity.Min < 0 {
		return fmt.Errorf("quantity.min must be non-negative, got %d", s.Quantity.Min)
	}
	if s.Quantity.Max < s.Quantity.Min {
		return fmt.Errorf("quantity.max must be >= quantity.min, got min=%d max=%d", s.Quantity.Min, s.Quantity.Max)
	}
	return nil
}

func validateKind(k *KindSpec, idx int) error {
	prefix := fmt.Sprintf("kinds[%d]", idx)
	if k.Name == "" {
		return fmt.Errorf("%s: name must not be empty", prefix)
	}
	if math.IsNaN(k.Weight) || math.IsInf(k.Weight, 0) {
		return fmt.Errorf("%s: weight must be a finite number, got %f", prefix, k.Weight)
	}
	if k.Weight <= 0 {
		return fmt.Errorf("%s: weight must be positive, got %f", prefix, k.Weight)
	}
	return nil
}
