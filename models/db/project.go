package dbmodels

import (
	"freelance-tracker-backend/models"

	"github.com/lib/pq"
)

type Project struct {
	BaseModel
	Role        string         `gorm:"type:varchar(255)"`
	Description string
	DailyRate   int
	WorkMode    models.WorkMode      `gorm:"type:varchar(50)"`
	TechStack   pq.StringArray       `gorm:"type:text[]"`
	Status      models.ProjectStatus `gorm:"type:varchar(50);index"`
	FreelanceID string               `gorm:"type:varchar(36);index"`
	Freelance   *FreelanceUser       `gorm:"foreignKey:FreelanceID"`
	ClientID    string               `gorm:"type:varchar(36)"`
	Client      *Client              `gorm:"foreignKey:ClientID"`
	SourceID    string               `gorm:"type:varchar(36)"`
	Source      *Source              `gorm:"foreignKey:SourceID"`
	Steps       []InterviewStep      `gorm:"foreignKey:ProjectID"`
}
