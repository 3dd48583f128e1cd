package db

import (
	dbmodels "freelance-tracker-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.FreelanceUser{}); err != nil {
		return errors.Wrap(err, "migration failed for FreelanceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "migration failed for Client")
	}
	if err := DB.AutoMigrate(&dbmodels.Contact{}); err != nil {
		return errors.Wrap(err, "migration failed for Contact")
	}
	if err := DB.AutoMigrate(&dbmodels.Source{}); err != nil {
		return errors.Wrap(err, "migration failed for Source")
	}
	if err := DB.AutoMigrate(&dbmodels.Project{}); err != nil {
		return errors.Wrap(err, "migration failed for Project")
	}
	if err := DB.AutoMigrate(&dbmodels.InterviewStep{}); err != nil {
		return errors.Wrap(err, "migration failed for InterviewStep")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration failed for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
