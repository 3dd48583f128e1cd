package users

import (
	"freelance-tracker-backend/db"
	usersstore "freelance-tracker-backend/lib/users/store"
	userapimodels "freelance-tracker-backend/models/api/user"

	"github.com/pkg/errors"
)

type Provider interface {
	GetProfile(userID string) (userapimodels.ProfileView, error)
	UpdateProfile(userID string, data userapimodels.ProfileUpdate) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) GetProfile(userID string) (userapimodels.ProfileView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return userapimodels.ProfileView{}, err
	}
	if rec == nil {
		return userapimodels.ProfileView{}, errors.New("user not found")
	}
	return userapimodels.ProfileConvert(*rec), nil
}

func (i impl) UpdateProfile(userID string, data userapimodels.ProfileUpdate) error {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("user not found")
	}
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"phone":      data.Phone,
		"city":       data.City,
		"job_title":  data.JobTitle,
	}
	return i.store.Update(userID, updMap)
}
