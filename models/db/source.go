package dbmodels

import "freelance-tracker-backend/models"

type Source struct {
	BaseModel
	Name string            `gorm:"type:varchar(255)"`
	Type models.SourceType `gorm:"type:varchar(50)"`
	Link string            `gorm:"type:varchar(255)"`
}
