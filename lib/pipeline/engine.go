package pipeline

import (
	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"
)

// CurrentStep derives the current stage of a project from its steps, ordered
// by scheduled date ascending. A stage is in progress until its step is
// validated: the first non-VALIDATED step wins. When every step is validated
// the pipeline is complete and the last step stays visible on the board.
// Returns nil for an empty list.
func CurrentStep(steps []dbmodels.InterviewStep) *dbmodels.InterviewStep {
	if len(steps) == 0 {
		return nil
	}
	for idx := range steps {
		if steps[idx].Status != models.StepStatusValidated {
			return &steps[idx]
		}
	}
	return &steps[len(steps)-1]
}

// NextStepChange computes the write for the "to" side of a transition.
// When the project already has a step with the target title, the step is
// reset to TO_PLAN (re-entering a failed or canceled stage) and the notes
// are overwritten when supplied; updMap holds the update and created is nil.
// Otherwise created holds a fresh TO_PLAN step record and updMap is nil.
func NextStepChange(existing *dbmodels.InterviewStep, projectID, title, notes string) (created *dbmodels.InterviewStep, updMap map[string]interface{}) {
	if existing != nil {
		updMap = map[string]interface{}{
			"status": models.StepStatusToPlan,
		}
		if notes != "" {
			updMap["notes"] = notes
		}
		return nil, updMap
	}
	return &dbmodels.InterviewStep{
		ProjectID: projectID,
		Title:     title,
		Status:    models.StepStatusToPlan,
		Notes:     notes,
	}, nil
}
