package clientapimodels

import (
	apimodels "freelance-tracker-backend/models/api"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type ClientData struct {
	CompanyName string `json:"company_name"` // client company name
	City        string `json:"city"`
	Rating      int    `json:"rating"` // subjective rating, 0-5
	WebSite     string `json:"web_site"`
	Notes       string `json:"notes"`
}

func (c ClientData) Validate() error {
	if c.CompanyName == "" {
		return errors.New("company name is required")
	}
	if c.Rating < 0 || c.Rating > 5 {
		return errors.New("rating must be between 0 and 5")
	}
	return nil
}

type ClientView struct {
	ID          string        `json:"id"`
	CompanyName string        `json:"company_name"`
	City        string        `json:"city"`
	Rating      int           `json:"rating"`
	WebSite     string        `json:"web_site"`
	Notes       string        `json:"notes"`
	Contacts    []ContactView `json:"contacts,omitempty"`
}

type ClientFilter struct {
	apimodels.Pagination
	City      string `json:"city"`       // exact city match
	MinRating int    `json:"min_rating"` // rating >= min_rating
	Search    string `json:"search"`     // substring of company name
}

func ClientConvert(rec dbmodels.Client) ClientView {
	view := ClientView{
		ID:          rec.ID,
		CompanyName: rec.CompanyName,
		City:        rec.City,
		Rating:      rec.Rating,
		WebSite:     rec.WebSite,
		Notes:       rec.Notes,
	}
	for _, contact := range rec.Contacts {
		view.Contacts = append(view.Contacts, ContactConvert(contact))
	}
	return view
}
