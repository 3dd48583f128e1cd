package clientstore

import (
	clientapimodels "freelance-tracker-backend/models/api/client"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Client) (id string, err error)
	GetByID(id string) (*dbmodels.Client, error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter clientapimodels.ClientFilter) (list []dbmodels.Client, err error)
	ListCount(filter clientapimodels.ClientFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Client) (id string, err error) {
	err = i.db.
		Omit("Contacts").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{}
	err := i.db.
		Model(&dbmodels.Client{}).
		Where("id = ?", id).
		Preload("Contacts").
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
		Model(&dbmodels.Client{}).
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
		Delete(&dbmodels.Client{BaseModel: dbmodels.BaseModel{ID: id}}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(filter clientapimodels.ClientFilter) (list []dbmodels.Client, err error) {
	list = []dbmodels.Client{}
	tx := i.filteredTx(filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	tx.Order("company_name")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter clientapimodels.ClientFilter) (count int64, err error) {
	var rowCount int64
	err = i.filteredTx(filter).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) filteredTx(filter clientapimodels.ClientFilter) *gorm.DB {
	tx := i.db.
		Model(dbmodels.Client{})
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	if filter.MinRating > 0 {
		tx = tx.Where("rating >= ?", filter.MinRating)
	}
	if filter.Search != "" {
		tx = tx.Where("lower(company_name) like ?", "%"+filter.Search+"%")
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
