package contactstore

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Contact) (id string, err error)
	GetByID(id string) (*dbmodels.Contact, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListByClient(clientID string) (list []dbmodels.Contact, err error)
	FindByEmail(email string) (*dbmodels.Contact, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Contact) (id string, err error) {
	err = i.db.
		Omit("Client").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Contact, error) {
	rec := dbmodels.Contact{}
	err := i.db.
		Model(&dbmodels.Contact{}).
		Where("id = ?", id).
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
		Model(&dbmodels.Contact{}).
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
		Delete(&dbmodels.Contact{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByClient(clientID string) (list []dbmodels.Contact, err error) {
	list = []dbmodels.Contact{}
	err = i.db.
		Model(&dbmodels.Contact{}).
		Where("client_id = ?", clientID).
		Order("last_name").
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

func (i impl) FindByEmail(email string) (*dbmodels.Contact, error) {
	rec := dbmodels.Contact{}
	err := i.db.
		Model(&dbmodels.Contact{}).
		Where("email = ?", email).
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
