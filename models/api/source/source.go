package sourceapimodels

import (
	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
)

type SourceData struct {
	Name string            `json:"name"`
	Type models.SourceType `json:"type"`
	Link string            `json:"link"`
}

func (s SourceData) Validate() error {
	if s.Name == "" {
		return errors.New("source name is required")
	}
	switch s.Type {
	case models.SourceTypeJobBoard, models.SourceTypeSocialNetwork,
		models.SourceTypeCooptation, models.SourceTypeDirect, models.SourceTypeOther:
		return nil
	}
	return errors.New("unknown source type")
}

type SourceView struct {
	ID   string            `json:"id"`
	Name string            `json:"name"`
	Type models.SourceType `json:"type"`
	Link string            `json:"link"`
}

func SourceConvert(rec dbmodels.Source) SourceView {
	return SourceView{
		ID:   rec.ID,
		Name: rec.Name,
		Type: rec.Type,
		Link: rec.Link,
	}
}
