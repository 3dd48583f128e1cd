package kanbanapimodels

import (
	"time"

	"freelance-tracker-backend/models"
)

// Board is a request-scoped view, never persisted. StageOrder is the
// authoritative column order; Columns always holds every configured stage,
// including empty ones.
type Board struct {
	StageOrder []string          `json:"stage_order"`
	Columns    map[string][]Card `json:"columns"`
}

type Card struct {
	ProjectID  string `json:"project_id"`
	Role       string `json:"role"`
	DailyRate  int    `json:"daily_rate"`
	ClientName string `json:"client_name,omitempty"`
	WorkMode   models.WorkMode `json:"work_mode"`
	TechStack  []string        `json:"tech_stack"`

	StepTitle  string            `json:"step_title"`
	StepStatus models.StepStatus `json:"step_status"`
	StepDate   *time.Time        `json:"step_date,omitempty"`
	StepNotes  string            `json:"step_notes,omitempty"`

	StepsTotal     int `json:"steps_total"`
	StepsValidated int `json:"steps_validated"`
	StepsFailed    int `json:"steps_failed"`
}
