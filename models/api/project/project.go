package projectapimodels

import (
	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ProjectData struct {
	Role        string          `json:"role"` // e.g. "Lead Dev Go"
	Description string          `json:"description"`
	DailyRate   int             `json:"daily_rate"` // TJM
	WorkMode    models.WorkMode `json:"work_mode"`
	TechStack   []string        `json:"tech_stack"`
	ClientID    string          `json:"client_id"`
	SourceID    string          `json:"source_id"`
}

func (p ProjectData) Validate() error {
	if p.Role == "" {
		return errors.New("project role is required")
	}
	if p.DailyRate < 0 {
		return errors.New("daily rate cannot be negative")
	}
	if p.WorkMode != "" && !p.WorkMode.IsValid() {
		return errors.New("unknown work mode")
	}
	return nil
}

type ProjectView struct {
	ID          string               `json:"id"`
	Role        string               `json:"role"`
	Description string               `json:"description"`
	DailyRate   int                  `json:"daily_rate"`
	WorkMode    models.WorkMode      `json:"work_mode"`
	TechStack   []string             `json:"tech_stack"`
	Status      models.ProjectStatus `json:"status"`
	ClientID    string               `json:"client_id,omitempty"`
	ClientName  string               `json:"client_name,omitempty"`
	SourceID    string               `json:"source_id,omitempty"`
	SourceName  string               `json:"source_name,omitempty"`
	Steps       []StepView           `json:"steps,omitempty"`
}

func ProjectConvert(rec dbmodels.Project) ProjectView {
	view := ProjectView{
		ID:          rec.ID,
		Role:        rec.Role,
		Description: rec.Description,
		DailyRate:   rec.DailyRate,
		WorkMode:    rec.WorkMode,
		TechStack:   rec.TechStack,
		Status:      rec.Status,
		ClientID:    rec.ClientID,
		SourceID:    rec.SourceID,
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.CompanyName
	}
	if rec.Source != nil {
		view.SourceName = rec.Source.Name
	}
	for _, step := range rec.Steps {
		view.Steps = append(view.Steps, StepConvert(step))
	}
	return view
}
