package kanban

import (
	"freelance-tracker-backend/db"
	"freelance-tracker-backend/lib/pipeline"
	projectstore "freelance-tracker-backend/lib/project/store"
	stepstore "freelance-tracker-backend/lib/project/step-store"
	"freelance-tracker-backend/models"
	kanbanapimodels "freelance-tracker-backend/models/api/kanban"
	dbmodels "freelance-tracker-backend/models/db"
)

type Provider interface {
	BuildBoard(freelanceID string) (kanbanapimodels.Board, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		projectStore: projectstore.NewInstance(db.DB),
		stepStore:    stepstore.NewInstance(db.DB),
	}
}

type impl struct {
	projectStore projectstore.Provider
	stepStore    stepstore.Provider
}

// BuildBoard fetches every project of the freelance with its date-ordered
// steps and groups the cards by derived current stage.
func (i impl) BuildBoard(freelanceID string) (kanbanapimodels.Board, error) {
	projects, err := i.projectStore.ListByFreelance(freelanceID)
	if err != nil {
		return kanbanapimodels.Board{}, err
	}
	for idx := range projects {
		steps, err := i.stepStore.ListByProjectOrderedByDate(projects[idx].ID)
		if err != nil {
			return kanbanapimodels.Board{}, err
		}
		projects[idx].Steps = steps
	}
	return AssembleBoard(pipeline.Stages(), projects), nil
}

// AssembleBoard groups projects into columns keyed by the title of their
// current step. Every stage of the sequence gets a column even when empty; a
// project whose current step title is outside the sequence produces no card.
// Projects without steps produce no card either.
func AssembleBoard(stages []string, projects []dbmodels.Project) kanbanapimodels.Board {
	board := kanbanapimodels.Board{
		StageOrder: stages,
		Columns:    make(map[string][]kanbanapimodels.Card, len(stages)),
	}
	for _, stage := range stages {
		board.Columns[stage] = []kanbanapimodels.Card{}
	}
	for _, project := range projects {
		current := pipeline.CurrentStep(project.Steps)
		if current == nil {
			continue
		}
		if _, ok := board.Columns[current.Title]; !ok {
			// title does not match any configured stage, the card is
			// dropped from the board
			continue
		}
		board.Columns[current.Title] = append(board.Columns[current.Title], buildCard(project, *current))
	}
	return board
}

func buildCard(project dbmodels.Project, current dbmodels.InterviewStep) kanbanapimodels.Card {
	card := kanbanapimodels.Card{
		ProjectID:  project.ID,
		Role:       project.Role,
		DailyRate:  project.DailyRate,
		WorkMode:   project.WorkMode,
		TechStack:  project.TechStack,
		StepTitle:  current.Title,
		StepStatus: current.Status,
		StepDate:   current.Date,
		StepNotes:  current.Notes,
		StepsTotal: len(project.Steps),
	}
	if project.Client != nil {
		card.ClientName = project.Client.CompanyName
	}
	for _, step := range project.Steps {
		switch step.Status {
		case models.StepStatusValidated:
			card.StepsValidated++
		case models.StepStatusFailed:
			card.StepsFailed++
		}
	}
	return card
}
