package source

import (
	"freelance-tracker-backend/db"
	sourcestore "freelance-tracker-backend/lib/source/store"
	sourceapimodels "freelance-tracker-backend/models/api/source"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data sourceapimodels.SourceData) (id string, err error)
	GetByID(id string) (sourceapimodels.SourceView, error)
	Update(id string, data sourceapimodels.SourceData) error
	Delete(id string) error
	List() (list []sourceapimodels.SourceView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: sourcestore.NewInstance(db.DB),
	}
}

type impl struct {
	store sourcestore.Provider
}

func (i impl) Create(data sourceapimodels.SourceData) (id string, err error) {
	rec := dbmodels.Source{
		Name: data.Name,
		Type: data.Type,
		Link: data.Link,
	}
	return i.store.Create(rec)
}

func (i impl) GetByID(id string) (sourceapimodels.SourceView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return sourceapimodels.SourceView{}, err
	}
	if rec == nil {
		return sourceapimodels.SourceView{}, errors.New("source not found")
	}
	return sourceapimodels.SourceConvert(*rec), nil
}

func (i impl) Update(id string, data sourceapimodels.SourceData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("source not found")
	}
	updMap := map[string]interface{}{
		"name": data.Name,
		"type": data.Type,
		"link": data.Link,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List() (list []sourceapimodels.SourceView, err error) {
	recs, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list = make([]sourceapimodels.SourceView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, sourceapimodels.SourceConvert(rec))
	}
	return list, nil
}
