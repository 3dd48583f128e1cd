package kanban

import (
	"testing"
	"time"

	"freelance-tracker-backend/lib/pipeline"
	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/stretchr/testify/require"
)

func project(id, role string, steps ...dbmodels.InterviewStep) dbmodels.Project {
	return dbmodels.Project{
		BaseModel: dbmodels.BaseModel{ID: id},
		Role:      role,
		DailyRate: 600,
		Steps:     steps,
	}
}

func step(title string, status models.StepStatus) dbmodels.InterviewStep {
	return dbmodels.InterviewStep{
		Title:  title,
		Status: status,
	}
}

func TestAssembleBoard(t *testing.T) {
	t.Run(`empty board still has every column`, func(t *testing.T) {
		board := AssembleBoard(pipeline.Stages(), nil)
		require.Equal(t, pipeline.Stages(), board.StageOrder)
		require.Len(t, board.Columns, len(pipeline.Stages()))
		for _, stage := range board.StageOrder {
			require.NotNil(t, board.Columns[stage])
			require.Empty(t, board.Columns[stage])
		}
	})

	t.Run(`projects are grouped by current stage`, func(t *testing.T) {
		projects := []dbmodels.Project{
			project("p1", "Lead Dev Go",
				step(pipeline.StagePriseDeContact, models.StepStatusValidated),
				step(pipeline.StageEntretienCommercial, models.StepStatusPlanned),
			),
			project("p2", "Architecte Cloud",
				step(pipeline.StagePriseDeContact, models.StepStatusToPlan),
			),
			project("p3", "Dev Backend",
				step(pipeline.StagePriseDeContact, models.StepStatusValidated),
				step(pipeline.StageEntretienCommercial, models.StepStatusValidated),
			),
		}
		board := AssembleBoard(pipeline.Stages(), projects)
		require.Len(t, board.Columns[pipeline.StagePriseDeContact], 1)
		require.Len(t, board.Columns[pipeline.StageEntretienCommercial], 2)
		require.Equal(t, "p2", board.Columns[pipeline.StagePriseDeContact][0].ProjectID)
	})

	t.Run(`project without steps produces no card`, func(t *testing.T) {
		board := AssembleBoard(pipeline.Stages(), []dbmodels.Project{
			project("p1", "Lead Dev Go"),
		})
		for _, stage := range board.StageOrder {
			require.Empty(t, board.Columns[stage])
		}
	})

	t.Run(`current step outside the sequence drops the card`, func(t *testing.T) {
		board := AssembleBoard(pipeline.Stages(), []dbmodels.Project{
			project("p1", "Lead Dev Go",
				step("Onboarding", models.StepStatusToPlan),
			),
		})
		for _, stage := range board.StageOrder {
			require.Empty(t, board.Columns[stage])
		}
		require.NotContains(t, board.Columns, "Onboarding")
	})

	t.Run(`card carries project and step data`, func(t *testing.T) {
		date := time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC)
		current := step(pipeline.StageTestTechnique, models.StepStatusPlanned)
		current.Date = &date
		current.Notes = "live coding"
		proj := project("p1", "Lead Dev Go",
			step(pipeline.StagePriseDeContact, models.StepStatusValidated),
			step(pipeline.StageEntretienCommercial, models.StepStatusFailed),
			current,
		)
		proj.WorkMode = models.WorkModeRemote
		proj.TechStack = []string{"go", "postgres"}
		proj.Client = &dbmodels.Client{CompanyName: "Acme"}

		board := AssembleBoard(pipeline.Stages(), []dbmodels.Project{proj})
		cards := board.Columns[pipeline.StageEntretienCommercial]
		require.Len(t, cards, 1)
		card := cards[0]
		require.Equal(t, "p1", card.ProjectID)
		require.Equal(t, "Lead Dev Go", card.Role)
		require.Equal(t, 600, card.DailyRate)
		require.Equal(t, "Acme", card.ClientName)
		require.Equal(t, models.WorkModeRemote, card.WorkMode)
		require.Equal(t, []string{"go", "postgres"}, []string(card.TechStack))
		require.Equal(t, pipeline.StageEntretienCommercial, card.StepTitle)
		require.Equal(t, models.StepStatusFailed, card.StepStatus)
		require.Equal(t, 3, card.StepsTotal)
		require.Equal(t, 1, card.StepsValidated)
		require.Equal(t, 1, card.StepsFailed)
	})
}
