package epicycle

import (
	"errors"
	"fmt"
)

// Domain errors for epicycle operations.
var (
	// ErrConfiguration indicates a missing or invalid coefficient source,
	// resolution or order.
	ErrConfiguration = errors.New("epicycle: invalid configuration")

	// ErrNumericAnomaly indicates a non-finite value in the coefficients or
	// the reconstructed signal.
	ErrNumericAnomaly = errors.New("epicycle: numeric anomaly (NaN or Inf detected)")

	// ErrSequenceComplete indicates a bounded sequence has no frames left.
	ErrSequenceComplete = errors.New("epicycle: sequence complete")

	// ErrInvalidTransition indicates a state machine transition that is not
	// allowed from the current status.
	ErrInvalidTransition = errors.New("epicycle: invalid state transition")
)

// ConfigurationError wraps ErrConfiguration with the offending field.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NumericAnomalyError wraps ErrNumericAnomaly with the frame and coefficient
// index where the value went non-finite. Frame is -1 for coefficient checks.
type NumericAnomalyError struct {
	Frame int
	Index int
	Value complex128
}

func (e *NumericAnomalyError) Error() string {
	if e.Frame < 0 {
		return fmt.Sprintf("coefficient %d (%v): %s", e.Index, e.Value, ErrNumericAnomaly)
	}
	return fmt.Sprintf("frame %d, pointer %d (%v): %s", e.Frame, e.Index, e.Value, ErrNumericAnomaly)
}

func (e *NumericAnomalyError) Unwrap() error {
	return ErrNumericAnomaly
}
