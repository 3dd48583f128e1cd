package client

import (
	"freelance-tracker-backend/db"
	clientstore "freelance-tracker-backend/lib/client/store"
	clientapimodels "freelance-tracker-backend/models/api/client"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data clientapimodels.ClientData) (id string, err error)
	GetByID(id string) (clientapimodels.ClientView, error)
	Update(id string, data clientapimodels.ClientData) error
	Delete(id string) error
	List(filter clientapimodels.ClientFilter) (list []clientapimodels.ClientView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store clientstore.Provider
}

func (i impl) Create(data clientapimodels.ClientData) (id string, err error) {
	rec := dbmodels.Client{
		CompanyName: data.CompanyName,
		City:        data.City,
		Rating:      data.Rating,
		WebSite:     data.WebSite,
		Notes:       data.Notes,
	}
	return i.store.Create(rec)
}

func (i impl) GetByID(id string) (clientapimodels.ClientView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	if rec == nil {
		return clientapimodels.ClientView{}, errors.New("client not found")
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) Update(id string, data clientapimodels.ClientData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("client not found")
	}
	updMap := map[string]interface{}{
		"company_name": data.CompanyName,
		"city":         data.City,
		"rating":       data.Rating,
		"web_site":     data.WebSite,
		"notes":        data.Notes,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(filter clientapimodels.ClientFilter) (list []clientapimodels.ClientView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]clientapimodels.ClientView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, clientapimodels.ClientConvert(rec))
	}
	return list, rowCount, nil
}
