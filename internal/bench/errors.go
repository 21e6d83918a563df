package bench

import (
	"errors"
	"fmt"
)

// Domain errors for measurement validation.
var (
	// ErrEmpty indicates a measurement with no samples.
	ErrEmpty = errors.New("bench: empty measurement")

	// ErrLengthMismatch indicates size and time sequences of differing
	// lengths, which breaks the per-index correspondence.
	ErrLengthMismatch = errors.New("bench: sequence length mismatch")

	// ErrZeroTime indicates a zero time entry; throughput would be undefined.
	ErrZeroTime = errors.New("bench: zero time entry (throughput undefined)")

	// ErrNonPositive indicates a negative or zero value where only
	// positive measurements make sense.
	ErrNonPositive = errors.New("bench: non-positive measurement value")

	// ErrNotIncreasing indicates problem sizes that are not strictly increasing.
	ErrNotIncreasing = errors.New("bench: problem sizes not strictly increasing")

	// ErrInvalidValue indicates a NaN or Inf in an input sequence.
	ErrInvalidValue = errors.New("bench: invalid value (NaN or Inf detected)")

	// ErrUnknownPreset indicates a preset name with no built-in dataset.
	ErrUnknownPreset = errors.New("bench: unknown preset")
)

// MeasurementError wraps a validation error with the offending field and index.
type MeasurementError struct {
	Field   string
	Index   int
	Wrapped error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("%s[%d]: %v", e.Field, e.Index, e.Wrapped)
}

func (e *MeasurementError) Unwrap() error {
	return e.Wrapped
}
