package pipeline

import (
	"fmt"
	"time"

	"freelance-tracker-backend/db"
	projectstore "freelance-tracker-backend/lib/project/store"
	stepstore "freelance-tracker-backend/lib/project/step-store"
	"freelance-tracker-backend/lib/smtp"
	usersstore "freelance-tracker-backend/lib/users/store"
	connectionhub "freelance-tracker-backend/lib/ws/hub/connection-hub"
	"freelance-tracker-backend/models"
	projectapimodels "freelance-tracker-backend/models/api/project"
	dbmodels "freelance-tracker-backend/models/db"
	wsmodels "freelance-tracker-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	CurrentStage(freelanceID, projectID string) (*projectapimodels.StepView, error)
	Transition(freelanceID, projectID string, data projectapimodels.TransitionRequest) (projectapimodels.StepView, error)
	GetStep(id string) (projectapimodels.StepView, error)
	DeleteStep(id string) error
	Schedule(id string, date time.Time) (projectapimodels.StepView, error)
	MarkWaitingFeedback(id string) (projectapimodels.StepView, error)
	MarkValidated(id string) (projectapimodels.StepView, error)
	MarkFailed(id string) (projectapimodels.StepView, error)
	MarkCanceled(id string) (projectapimodels.StepView, error)
	UpdateStatus(id string, status models.StepStatus) (projectapimodels.StepView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:           db.DB,
		projectStore: projectstore.NewInstance(db.DB),
		stepStore:    stepstore.NewInstance(db.DB),
		usersStore:   usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	db           *gorm.DB
	projectStore projectstore.Provider
	stepStore    stepstore.Provider
	usersStore   usersstore.Provider
}

func (i impl) CurrentStage(freelanceID, projectID string) (*projectapimodels.StepView, error) {
	project, err := i.projectStore.GetByID(freelanceID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.Wrapf(ErrProjectNotFound, "project id: %s", projectID)
	}
	steps, err := i.stepStore.ListByProjectOrderedByDate(projectID)
	if err != nil {
		return nil, err
	}
	current := CurrentStep(steps)
	if current == nil {
		return nil, nil
	}
	view := projectapimodels.StepConvert(*current)
	return &view, nil
}

// Transition closes the "from" stage and opens the "to" stage: the from step
// is forced to VALIDATED no matter its prior status, the to step is created
// or reset to TO_PLAN. Both writes run in one transaction so a concurrent
// reader never sees the from step validated without the to step existing.
func (i impl) Transition(freelanceID, projectID string, data projectapimodels.TransitionRequest) (projectapimodels.StepView, error) {
	logger := i.getLogger(projectID, "")
	project, err := i.projectStore.GetByID(freelanceID, projectID)
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	if project == nil {
		return projectapimodels.StepView{}, errors.Wrapf(ErrProjectNotFound, "project id: %s", projectID)
	}
	var result dbmodels.InterviewStep
	err = i.db.Transaction(func(tx *gorm.DB) error {
		txStepStore := stepstore.NewInstance(tx)
		fromStep, err := txStepStore.FindByProjectAndTitle(projectID, data.FromStepTitle)
		if err != nil {
			return err
		}
		if fromStep == nil {
			return errors.Wrapf(ErrFromStepNotFound, "step title: %s, project id: %s", data.FromStepTitle, projectID)
		}
		err = txStepStore.Update(fromStep.ID, map[string]interface{}{
			"status": models.StepStatusValidated,
		})
		if err != nil {
			return err
		}
		toStep, err := txStepStore.FindByProjectAndTitle(projectID, data.ToStepTitle)
		if err != nil {
			return err
		}
		created, updMap := NextStepChange(toStep, projectID, data.ToStepTitle, data.Notes)
		if created != nil {
			id, err := txStepStore.Create(*created)
			if err != nil {
				return err
			}
			created.ID = id
			result = *created
			return nil
		}
		if err = txStepStore.Update(toStep.ID, updMap); err != nil {
			return err
		}
		result = *toStep
		result.Status = models.StepStatusToPlan
		if data.Notes != "" {
			result.Notes = data.Notes
		}
		return nil
	})
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	logger.Infof("stage transition: %s -> %s", data.FromStepTitle, data.ToStepTitle)
	i.notify(wsmodels.ServerMessage{
		ToUserID: freelanceID,
		Code:     wsmodels.CodeStageTransition,
		Msg:      fmt.Sprintf("%s: %s -> %s", project.Role, data.FromStepTitle, data.ToStepTitle),
	})
	return projectapimodels.StepConvert(result), nil
}

func (i impl) GetStep(id string) (projectapimodels.StepView, error) {
	rec, err := i.getStep(id)
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	return projectapimodels.StepConvert(*rec), nil
}

func (i impl) DeleteStep(id string) error {
	rec, err := i.getStep(id)
	if err != nil {
		return err
	}
	return i.stepStore.Delete(rec.ID)
}

// Schedule sets the date and forces the step to PLANNED, then sends a
// reminder mail to the owning freelance. Mail failures are logged, never
// surfaced: scheduling itself already succeeded.
func (i impl) Schedule(id string, date time.Time) (projectapimodels.StepView, error) {
	rec, err := i.getStep(id)
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	err = i.stepStore.Update(id, map[string]interface{}{
		"date":   date,
		"status": models.StepStatusPlanned,
	})
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	rec.Date = &date
	rec.Status = models.StepStatusPlanned
	if rec.Project != nil {
		i.sendScheduleReminder(*rec, *rec.Project, date)
		i.notify(wsmodels.ServerMessage{
			ToUserID: rec.Project.FreelanceID,
			Code:     wsmodels.CodeStepScheduled,
			Msg:      fmt.Sprintf("%s planned on %s", rec.Title, date.Format("02/01/2006 15:04")),
		})
	}
	return projectapimodels.StepConvert(*rec), nil
}

func (i impl) MarkWaitingFeedback(id string) (projectapimodels.StepView, error) {
	return i.UpdateStatus(id, models.StepStatusWaitingFeedback)
}

func (i impl) MarkValidated(id string) (projectapimodels.StepView, error) {
	return i.UpdateStatus(id, models.StepStatusValidated)
}

func (i impl) MarkFailed(id string) (projectapimodels.StepView, error) {
	return i.UpdateStatus(id, models.StepStatusFailed)
}

func (i impl) MarkCanceled(id string) (projectapimodels.StepView, error) {
	return i.UpdateStatus(id, models.StepStatusCanceled)
}

// UpdateStatus is the generic setter under the lifecycle operations. It
// touches only the addressed step; the current stage is always derived
// lazily, never recomputed or cached here.
func (i impl) UpdateStatus(id string, status models.StepStatus) (projectapimodels.StepView, error) {
	if err := status.Validate(); err != nil {
		return projectapimodels.StepView{}, err
	}
	rec, err := i.getStep(id)
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	err = i.stepStore.Update(id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return projectapimodels.StepView{}, err
	}
	rec.Status = status
	if rec.Project != nil {
		i.notify(wsmodels.ServerMessage{
			ToUserID: rec.Project.FreelanceID,
			Code:     wsmodels.CodeStepStatusChanged,
			Msg:      fmt.Sprintf("%s: %s", rec.Title, string(status)),
		})
	}
	return projectapimodels.StepConvert(*rec), nil
}

func (i impl) getStep(id string) (*dbmodels.InterviewStep, error) {
	rec, err := i.stepStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(ErrStepNotFound, "step id: %s", id)
	}
	return rec, nil
}

func (i impl) sendScheduleReminder(step dbmodels.InterviewStep, project dbmodels.Project, date time.Time) {
	if smtp.Instance == nil {
		return
	}
	user, err := i.usersStore.GetByID(project.FreelanceID)
	if err != nil || user == nil {
		log.WithError(err).WithField("freelance_id", project.FreelanceID).Warn("schedule reminder skipped, owner not resolved")
		return
	}
	subject := fmt.Sprintf("%s - %s", project.Role, step.Title)
	message := fmt.Sprintf("Interview step %q for project %q is planned on %s.", step.Title, project.Role, date.Format("02/01/2006 15:04"))
	if err := smtp.Instance.SendEMail(user.Email, user.Email, message, subject); err != nil {
		log.WithError(err).Warn("failed to send schedule reminder")
	}
}

func (i impl) notify(msg wsmodels.ServerMessage) {
	if connectionhub.Instance == nil {
		return
	}
	msg.Time = time.Now().Format(time.RFC3339)
	connectionhub.Instance.SendMessage(msg)
}

func (i impl) getLogger(projectID, stepID string) *log.Entry {
	logger := log.WithField("project_id", projectID)
	if stepID != "" {
		logger = logger.WithField("step_id", stepID)
	}
	return logger
}
