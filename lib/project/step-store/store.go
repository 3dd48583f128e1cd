package stepstore

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.InterviewStep) (id string, err error)
	GetByID(id string) (*dbmodels.InterviewStep, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByProjectOrderedByDate(projectID string) (list []dbmodels.InterviewStep, err error)
	FindByProjectAndTitle(projectID, title string) (*dbmodels.InterviewStep, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.InterviewStep) (id string, err error) {
	err = i.db.
		Omit("Project").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.InterviewStep, error) {
	rec := dbmodels.InterviewStep{}
	err := i.db.
		Model(&dbmodels.InterviewStep{}).
		Where("id = ?", id).
		Preload("Project").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.InterviewStep{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Delete(&dbmodels.InterviewStep{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ListByProjectOrderedByDate orders by scheduled date ascending; unscheduled
// steps keep insertion order at the end. Current-stage derivation depends on
// this ordering.
func (i impl) ListByProjectOrderedByDate(projectID string) (list []dbmodels.InterviewStep, err error) {
	list = []dbmodels.InterviewStep{}
	err = i.db.
		Model(&dbmodels.InterviewStep{}).
		Where("project_id = ?", projectID).
		Order("date ASC NULLS LAST").
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) FindByProjectAndTitle(projectID, title string) (*dbmodels.InterviewStep, error) {
	rec := dbmodels.InterviewStep{}
	err := i.db.
		Model(&dbmodels.InterviewStep{}).
		Where("project_id = ?", projectID).
		Where("title = ?", title).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
