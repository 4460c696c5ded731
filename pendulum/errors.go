package pendulum

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a configuration that cannot be simulated.
	ErrInvalidParameter = errors.New("pendulum: invalid parameter")

	// ErrIntegrationFailure reports that the solver could not produce a trajectory.
	ErrIntegrationFailure = errors.New("pendulum: integration failure")

	// ErrNonFinite indicates a NaN or Inf in a derivative or solution.
	ErrNonFinite = errors.New("non-finite value")

	// ErrStepTooSmall indicates the adaptive step fell below the minimum.
	ErrStepTooSmall = errors.New("step size underflow")

	// ErrTooManySteps indicates the step budget ran out before the last sample.
	ErrTooManySteps = errors.New("step budget exhausted")
)

// IntegrationError carries the solver position at which integration stopped.
// It matches ErrIntegrationFailure and unwraps to the cause.
type IntegrationError struct {
	Step  int
	Time  float64
	State []float64
	Err   error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%v at step %d (t=%.6g, y=%v): %v", ErrIntegrationFailure, e.Step, e.Time, e.State, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

func (e *IntegrationError) Is(target error) bool { return target == ErrIntegrationFailure }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}
