package models

import "github.com/pkg/errors"

type StepStatus string

const (
	StepStatusToPlan          StepStatus = "TO_PLAN"
	StepStatusPlanned         StepStatus = "PLANNED"
	StepStatusCanceled        StepStatus = "CANCELED"
	StepStatusWaitingFeedback StepStatus = "WAITING_FEEDBACK"
	StepStatusValidated       StepStatus = "VALIDATED"
	StepStatusFailed          StepStatus = "FAILED"
)

var validStepStatuses = map[StepStatus]struct{}{
	StepStatusToPlan:          {},
	StepStatusPlanned:         {},
	StepStatusCanceled:        {},
	StepStatusWaitingFeedback: {},
	StepStatusValidated:       {},
	StepStatusFailed:          {},
}

func (s StepStatus) IsValid() bool {
	_, ok := validStepStatuses[s]
	return ok
}

// IsTerminal reports whether the status closes a step in normal flow.
// A transition may still reset a terminal step back to TO_PLAN when the
// stage is re-entered.
func (s StepStatus) IsTerminal() bool {
	return s == StepStatusValidated || s == StepStatusFailed
}

func (s StepStatus) Validate() error {
	if !s.IsValid() {
		return errors.Errorf("unknown step status: %s", string(s))
	}
	return nil
}
