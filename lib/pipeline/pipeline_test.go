package pipeline

import (
	"testing"

	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/stretchr/testify/require"
)

func step(title string, status models.StepStatus) dbmodels.InterviewStep {
	return dbmodels.InterviewStep{
		Title:  title,
		Status: status,
	}
}

func TestCurrentStep(t *testing.T) {
	t.Run(`no steps gives no current stage`, func(t *testing.T) {
		require.Nil(t, CurrentStep(nil))
		require.Nil(t, CurrentStep([]dbmodels.InterviewStep{}))
	})

	t.Run(`first non validated step wins`, func(t *testing.T) {
		steps := []dbmodels.InterviewStep{
			step(StagePriseDeContact, models.StepStatusValidated),
			step(StageEntretienCommercial, models.StepStatusPlanned),
			step(StageTestTechnique, models.StepStatusToPlan),
		}
		current := CurrentStep(steps)
		require.NotNil(t, current)
		require.Equal(t, StageEntretienCommercial, current.Title)
	})

	t.Run(`failed step holds the stage`, func(t *testing.T) {
		steps := []dbmodels.InterviewStep{
			step(StagePriseDeContact, models.StepStatusValidated),
			step(StageTestTechnique, models.StepStatusFailed),
			step(StageEntretienManager, models.StepStatusToPlan),
		}
		current := CurrentStep(steps)
		require.NotNil(t, current)
		require.Equal(t, StageTestTechnique, current.Title)
	})

	t.Run(`all validated keeps the last step visible`, func(t *testing.T) {
		steps := []dbmodels.InterviewStep{
			step(StagePriseDeContact, models.StepStatusValidated),
			step(StageEntretienCommercial, models.StepStatusValidated),
			step(StageValidation, models.StepStatusValidated),
		}
		current := CurrentStep(steps)
		require.NotNil(t, current)
		require.Equal(t, StageValidation, current.Title)
	})

	t.Run(`single pending step is the current one`, func(t *testing.T) {
		steps := []dbmodels.InterviewStep{
			step(StagePriseDeContact, models.StepStatusToPlan),
		}
		current := CurrentStep(steps)
		require.NotNil(t, current)
		require.Equal(t, StagePriseDeContact, current.Title)
	})
}

func TestNextStepChange(t *testing.T) {
	t.Run(`new stage creates a fresh step`, func(t *testing.T) {
		created, updMap := NextStepChange(nil, "project-1", StageTestTechnique, "coding exercise sent")
		require.Nil(t, updMap)
		require.NotNil(t, created)
		require.Equal(t, "project-1", created.ProjectID)
		require.Equal(t, StageTestTechnique, created.Title)
		require.Equal(t, models.StepStatusToPlan, created.Status)
		require.Equal(t, "coding exercise sent", created.Notes)
	})

	t.Run(`existing stage is reset to plan`, func(t *testing.T) {
		existing := step(StageTestTechnique, models.StepStatusFailed)
		created, updMap := NextStepChange(&existing, "project-1", StageTestTechnique, "")
		require.Nil(t, created)
		require.Equal(t, map[string]interface{}{
			"status": models.StepStatusToPlan,
		}, updMap)
	})

	t.Run(`reset overwrites notes when supplied`, func(t *testing.T) {
		existing := step(StageTestTechnique, models.StepStatusCanceled)
		created, updMap := NextStepChange(&existing, "project-1", StageTestTechnique, "second attempt")
		require.Nil(t, created)
		require.Equal(t, map[string]interface{}{
			"status": models.StepStatusToPlan,
			"notes":  "second attempt",
		}, updMap)
	})
}

func TestStages(t *testing.T) {
	t.Run(`sequence order is fixed`, func(t *testing.T) {
		expected := []string{
			StagePriseDeContact,
			StageEntretienCommercial,
			StagePositionnement,
			StageTestTechnique,
			StageEntretienTechnique,
			StageEntretienManager,
			StageValidation,
		}
		require.Equal(t, expected, Stages())
	})

	t.Run(`callers cannot mutate the sequence`, func(t *testing.T) {
		seq := Stages()
		seq[0] = "Autre"
		require.Equal(t, StagePriseDeContact, Stages()[0])
	})

	t.Run(`stage matching is exact`, func(t *testing.T) {
		require.True(t, IsKnownStage(StageEntretienTechnique))
		require.False(t, IsKnownStage("entretien technique"))
		require.False(t, IsKnownStage("Onboarding"))
		require.False(t, IsKnownStage(""))
	})
}

func TestStepStatus(t *testing.T) {
	t.Run(`known statuses are valid`, func(t *testing.T) {
		for _, status := range []models.StepStatus{
			models.StepStatusToPlan,
			models.StepStatusPlanned,
			models.StepStatusCanceled,
			models.StepStatusWaitingFeedback,
			models.StepStatusValidated,
			models.StepStatusFailed,
		} {
			require.True(t, status.IsValid())
		}
	})

	t.Run(`only validated and failed close a step`, func(t *testing.T) {
		require.True(t, models.StepStatusValidated.IsTerminal())
		require.True(t, models.StepStatusFailed.IsTerminal())
		require.False(t, models.StepStatusCanceled.IsTerminal())
		require.False(t, models.StepStatusWaitingFeedback.IsTerminal())
	})

	t.Run(`unknown status is rejected`, func(t *testing.T) {
		require.False(t, models.StepStatus("DONE").IsValid())
		require.Error(t, models.StepStatus("DONE").Validate())
	})
}
