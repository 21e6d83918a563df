package bench

import (
	"fmt"
	"math"

	"github.com/san-kum/neutronperf/internal/series"
)

// Measurement holds one benchmark campaign: problem sizes (number of
// simulated neutrons) with the wall-clock time each implementation took
// at that size. Sizes, CPUTimes and GPUTimes are parallel sequences.
type Measurement struct {
	Name     string
	CPULabel string
	GPULabel string
	Sizes    series.Series
	CPUTimes series.Series
	GPUTimes series.Series
}

// Result holds the derived throughput (neutrons per second) for both
// implementations. Immutable after Throughput returns it.
type Result struct {
	Sizes    series.Series
	CPUSpeed series.Series
	GPUSpeed series.Series
}

func (r *Result) Len() int {
	return len(r.Sizes)
}

// Speedup returns the per-size GPU/CPU throughput ratio.
func (r *Result) Speedup() series.Series {
	return r.GPUSpeed.Div(r.CPUSpeed)
}

// Validate checks the measurement invariants: equal lengths, at least one
// sample, finite positive values, strictly increasing sizes. Length
// mismatch is reported before any per-element check so it always
// surfaces first.
func (m *Measurement) Validate() error {
	if len(m.Sizes) == 0 {
		return ErrEmpty
	}
	if len(m.CPUTimes) != len(m.Sizes) {
		return fmt.Errorf("%w: %d sizes vs %d cpu times", ErrLengthMismatch, len(m.Sizes), len(m.CPUTimes))
	}
	if len(m.GPUTimes) != len(m.Sizes) {
		return fmt.Errorf("%w: %d sizes vs %d gpu times", ErrLengthMismatch, len(m.Sizes), len(m.GPUTimes))
	}

	fields := []struct {
		name string
		s    series.Series
	}{
		{"sizes", m.Sizes},
		{"cpu_times", m.CPUTimes},
		{"gpu_times", m.GPUTimes},
	}
	for _, f := range fields {
		for i, v := range f.s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &MeasurementError{Field: f.name, Index: i, Wrapped: ErrInvalidValue}
			}
			if v == 0 && f.name != "sizes" {
				return &MeasurementError{Field: f.name, Index: i, Wrapped: ErrZeroTime}
			}
			if v <= 0 {
				return &MeasurementError{Field: f.name, Index: i, Wrapped: ErrNonPositive}
			}
		}
	}

	if !m.Sizes.StrictlyIncreasing() {
		return ErrNotIncreasing
	}
	return nil
}

// Throughput validates the measurement and derives both throughput
// series by element-wise division. The input sequences are not mutated;
// calling Throughput again yields bit-identical results.
func (m *Measurement) Throughput() (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Result{
		Sizes:    m.Sizes.Clone(),
		CPUSpeed: m.Sizes.Div(m.CPUTimes),
		GPUSpeed: m.Sizes.Div(m.GPUTimes),
	}, nil
}
