package dbmodels

import (
	"time"

	"freelance-tracker-backend/models"
)

// InterviewStep is one occurrence of a named pipeline stage for one project.
// The stage identity is the free-text title, matched by exact equality
// against the configured stage sequence.
type InterviewStep struct {
	BaseModel
	ProjectID string     `gorm:"type:varchar(36);index"`
	Project   *Project   `gorm:"foreignKey:ProjectID"`
	Title     string     `gorm:"type:varchar(255)"`
	Date      *time.Time `gorm:"index"`
	Status    models.StepStatus `gorm:"type:varchar(50)"`
	Notes     string
}
