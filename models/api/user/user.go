package userapimodels

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ProfileView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	JobTitle  string `json:"job_title"`
}

type ProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	JobTitle  string `json:"job_title"`
}

func (p ProfileUpdate) Validate() error {
	if p.FirstName == "" && p.LastName == "" {
		return errors.New("name is required")
	}
	return nil
}

func ProfileConvert(rec dbmodels.FreelanceUser) ProfileView {
	return ProfileView{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		City:      rec.City,
		JobTitle:  rec.JobTitle,
	}
}
