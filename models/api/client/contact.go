package clientapimodels

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ContactData struct {
	ClientID  string `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"` // position within the client company
}

func (c ContactData) Validate() error {
	if c.ClientID == "" {
		return errors.New("client id is required")
	}
	if c.LastName == "" && c.FirstName == "" {
		return errors.New("contact name is required")
	}
	return nil
}

type ContactView struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

func ContactConvert(rec dbmodels.Contact) ContactView {
	return ContactView{
		ID:        rec.ID,
		ClientID:  rec.ClientID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Role:      rec.Role,
	}
}
