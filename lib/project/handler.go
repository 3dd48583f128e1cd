package project

import (
	"freelance-tracker-backend/db"
	clientstore "freelance-tracker-backend/lib/client/store"
	"freelance-tracker-backend/lib/pipeline"
	projectstore "freelance-tracker-backend/lib/project/store"
	stepstore "freelance-tracker-backend/lib/project/step-store"
	sourcestore "freelance-tracker-backend/lib/source/store"
	"freelance-tracker-backend/models"
	projectapimodels "freelance-tracker-backend/models/api/project"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(freelanceID string, data projectapimodels.ProjectData) (id string, err error)
	GetByID(freelanceID, id string) (projectapimodels.ProjectView, error)
	Update(freelanceID, id string, data projectapimodels.ProjectData) error
	Delete(freelanceID, id string) error
	List(freelanceID string) (list []projectapimodels.ProjectView, err error)
	StepList(freelanceID, id string) (list []projectapimodels.StepView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       projectstore.NewInstance(db.DB),
		stepStore:   stepstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
		sourceStore: sourcestore.NewInstance(db.DB),
	}
}

type impl struct {
	store       projectstore.Provider
	stepStore   stepstore.Provider
	clientStore clientstore.Provider
	sourceStore sourcestore.Provider
}

func (i impl) checkDependency(data projectapimodels.ProjectData) error {
	if data.ClientID != "" {
		clientRec, err := i.clientStore.GetByID(data.ClientID)
		if err != nil {
			return err
		}
		if clientRec == nil {
			return errors.New("client not found")
		}
	}
	if data.SourceID != "" {
		sourceRec, err := i.sourceStore.GetByID(data.SourceID)
		if err != nil {
			return err
		}
		if sourceRec == nil {
			return errors.New("source not found")
		}
	}
	return nil
}

// Create stores the project and opens the first stage of the pipeline so a
// fresh project immediately shows up on the board.
func (i impl) Create(freelanceID string, data projectapimodels.ProjectData) (id string, err error) {
	err = i.checkDependency(data)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Project{
		Role:        data.Role,
		Description: data.Description,
		DailyRate:   data.DailyRate,
		WorkMode:    data.WorkMode,
		TechStack:   data.TechStack,
		Status:      models.ProjectStatusActive,
		FreelanceID: freelanceID,
		ClientID:    data.ClientID,
		SourceID:    data.SourceID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	_, err = i.stepStore.Create(dbmodels.InterviewStep{
		ProjectID: id,
		Title:     pipeline.StagePriseDeContact,
		Status:    models.StepStatusToPlan,
	})
	if err != nil {
		log.WithError(err).WithField("project_id", id).Error("failed to open initial pipeline stage")
		return "", err
	}
	return id, nil
}

func (i impl) GetByID(freelanceID, id string) (projectapimodels.ProjectView, error) {
	rec, err := i.store.GetByID(freelanceID, id)
	if err != nil {
		return projectapimodels.ProjectView{}, err
	}
	if rec == nil {
		return projectapimodels.ProjectView{}, errors.Wrapf(pipeline.ErrProjectNotFound, "project id: %s", id)
	}
	return projectapimodels.ProjectConvert(*rec), nil
}

func (i impl) Update(freelanceID, id string, data projectapimodels.ProjectData) error {
	rec, err := i.store.GetByID(freelanceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrapf(pipeline.ErrProjectNotFound, "project id: %s", id)
	}
	err = i.checkDependency(data)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"role":        data.Role,
		"description": data.Description,
		"daily_rate":  data.DailyRate,
		"work_mode":   data.WorkMode,
		"tech_stack":  pq.StringArray(data.TechStack),
		"client_id":   data.ClientID,
		"source_id":   data.SourceID,
	}
	return i.store.Update(freelanceID, id, updMap)
}

func (i impl) Delete(freelanceID, id string) error {
	return i.store.Delete(freelanceID, id)
}

func (i impl) List(freelanceID string) (list []projectapimodels.ProjectView, err error) {
	recs, err := i.store.ListByFreelance(freelanceID)
	if err != nil {
		return nil, err
	}
	list = make([]projectapimodels.ProjectView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, projectapimodels.ProjectConvert(rec))
	}
	return list, nil
}

func (i impl) StepList(freelanceID, id string) (list []projectapimodels.StepView, err error) {
	rec, err := i.store.GetByID(freelanceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(pipeline.ErrProjectNotFound, "project id: %s", id)
	}
	steps, err := i.stepStore.ListByProjectOrderedByDate(id)
	if err != nil {
		return nil, err
	}
	list = make([]projectapimodels.StepView, 0, len(steps))
	for _, step := range steps {
		list = append(list, projectapimodels.StepConvert(step))
	}
	return list, nil
}
