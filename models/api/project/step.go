package projectapimodels

import (
	"time"

	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type StepView struct {
	ID        string            `json:"id"`
	ProjectID string            `json:"project_id"`
	Title     string            `json:"title"`
	Date      *time.Time        `json:"date,omitempty"`
	Status    models.StepStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
}

func StepConvert(rec dbmodels.InterviewStep) StepView {
	return StepView{
		ID:        rec.ID,
		ProjectID: rec.ProjectID,
		Title:     rec.Title,
		Date:      rec.Date,
		Status:    rec.Status,
		Notes:     rec.Notes,
	}
}

type TransitionRequest struct {
	FromStepTitle string `json:"from_step_title"`
	ToStepTitle   string `json:"to_step_title"`
	Notes         string `json:"notes"`
}

func (r TransitionRequest) Validate() error {
	if r.FromStepTitle == "" {
		return errors.New("from step title is required")
	}
	if r.ToStepTitle == "" {
		return errors.New("to step title is required")
	}
	return nil
}

type ScheduleRequest struct {
	Date time.Time `json:"date"`
}

func (r ScheduleRequest) Validate() error {
	if r.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

type StatusRequest struct {
	Status models.StepStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	return r.Status.Validate()
}
