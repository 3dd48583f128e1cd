package projectstore

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Project) (id string, err error)
	GetByID(freelanceID, id string) (*dbmodels.Project, error)
	Update(freelanceID, id string, updMap map[string]interface{}) error
	Delete(freelanceID, id string) error
	ListByFreelance(freelanceID string) (list []dbmodels.Project, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Project) (id string, err error) {
	err = i.db.
		Omit("Freelance", "Client", "Source", "Steps").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(freelanceID, id string) (*dbmodels.Project, error) {
	rec := dbmodels.Project{}
	err := i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Where("freelance_id = ?", freelanceID).
		Preload("Client").
		Preload("Source").
		Preload("Steps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("date ASC NULLS LAST").Order("created_at ASC")
		}).
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

func (i impl) Update(freelanceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Project{}).
		Where("id = ?", id).
		Where("freelance_id = ?", freelanceID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(freelanceID, id string) error {
	err := i.db.
		Where("freelance_id = ?", freelanceID).
		Delete(&dbmodels.Project{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}

// ListByFreelance returns every project of the freelance regardless of
// status, client preloaded. The board needs finished/canceled projects too.
func (i impl) ListByFreelance(freelanceID string) (list []dbmodels.Project, err error) {
	list = []dbmodels.Project{}
	err = i.db.
		Model(&dbmodels.Project{}).
		Where("freelance_id = ?", freelanceID).
		Preload("Client").
		Order("created_at").
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
