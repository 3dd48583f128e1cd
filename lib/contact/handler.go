package contact

import (
	"freelance-tracker-backend/db"
	clientstore "freelance-tracker-backend/lib/client/store"
	contactstore "freelance-tracker-backend/lib/contact/store"
	clientapimodels "freelance-tracker-backend/models/api/client"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data clientapimodels.ContactData) (id string, err error)
	GetByID(id string) (clientapimodels.ContactView, error)
	Update(id string, data clientapimodels.ContactData) error
	Delete(id string) error
	ListByClient(clientID string) (list []clientapimodels.ContactView, err error)
	FindByEmail(email string) (clientapimodels.ContactView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       contactstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       contactstore.Provider
	clientStore clientstore.Provider
}

func (i impl) Create(data clientapimodels.ContactData) (id string, err error) {
	clientRec, err := i.clientStore.GetByID(data.ClientID)
	if err != nil {
		return "", err
	}
	if clientRec == nil {
		return "", errors.New("client not found")
	}
	rec := dbmodels.Contact{
		ClientID:  data.ClientID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Role:      data.Role,
	}
	return i.store.Create(rec)
}

func (i impl) GetByID(id string) (clientapimodels.ContactView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ContactView{}, err
	}
	if rec == nil {
		return clientapimodels.ContactView{}, errors.New("contact not found")
	}
	return clientapimodels.ContactConvert(*rec), nil
}

func (i impl) Update(id string, data clientapimodels.ContactData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("contact not found")
	}
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      data.Email,
		"phone":      data.Phone,
		"role":       data.Role,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) ListByClient(clientID string) (list []clientapimodels.ContactView, err error) {
	recs, err := i.store.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	list = make([]clientapimodels.ContactView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, clientapimodels.ContactConvert(rec))
	}
	return list, nil
}

func (i impl) FindByEmail(email string) (clientapimodels.ContactView, error) {
	rec, err := i.store.FindByEmail(email)
	if err != nil {
		return clientapimodels.ContactView{}, err
	}
	if rec == nil {
		return clientapimodels.ContactView{}, errors.New("contact not found")
	}
	return clientapimodels.ContactConvert(*rec), nil
}
