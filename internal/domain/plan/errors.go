package plan

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when the notification body is not a JSON object.
var ErrMalformedInput = errors.New("malformed notification")

// ErrAmountOutOfRange is returned when the leading integer of a price does not fit in minor units.
var ErrAmountOutOfRange = errors.New("price amount out of range")

// ValidationError describes a notification field that cannot be synced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type Step string

const (
	StepCreateProduct Step = "create product"
	StepCreatePrice   Step = "create price"
)

// StepError marks which processor call failed. ProductID is set when the
// product was already created, i.e. the product is left orphaned.
type StepError struct {
	Step      Step
	ProductID string
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// FaultMessage returns the text a caller sees for a failed sync:
// the processor's own message for processor faults, the error text otherwise.
func FaultMessage(err error) string {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.Err.Error()
	}
	return err.Error()
}
