package db

import (
	"freelance-tracker-backend/config"
	sourcestore "freelance-tracker-backend/lib/source/store"
	usersstore "freelance-tracker-backend/lib/users/store"
	authutils "freelance-tracker-backend/lib/utils/auth-utils"
	"freelance-tracker-backend/models"
	dbmodels "freelance-tracker-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addBootstrapUser()
	fillSources()
}

func addBootstrapUser() {
	if config.Conf.Bootstrap.Email == "" {
		log.Warn("bootstrap user not added, BOOTSTRAP_EMAIL is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Bootstrap.Email)
	if err != nil {
		log.WithError(err).Error("failed to add bootstrap user")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.FreelanceUser{
		Email:        config.Conf.Bootstrap.Email,
		PasswordHash: authutils.GetMD5Hash(config.Conf.Bootstrap.Password),
		FirstName:    config.Conf.Bootstrap.FirstName,
		LastName:     config.Conf.Bootstrap.LastName,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("failed to add bootstrap user")
	}
}

var defaultSources = []dbmodels.Source{
	{Name: "LinkedIn", Type: models.SourceTypeSocialNetwork, Link: "https://www.linkedin.com"},
	{Name: "Malt", Type: models.SourceTypeJobBoard, Link: "https://www.malt.fr"},
	{Name: "Free-Work", Type: models.SourceTypeJobBoard, Link: "https://www.free-work.com"},
	{Name: "Comet", Type: models.SourceTypeJobBoard, Link: "https://www.comet.co"},
	{Name: "Cooptation", Type: models.SourceTypeCooptation},
	{Name: "Contact direct", Type: models.SourceTypeDirect},
}

func fillSources() {
	store := sourcestore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("failed to preload sources")
		return
	}
	if count > 0 {
		return
	}
	for _, rec := range defaultSources {
		if _, err := store.Create(rec); err != nil {
			log.WithError(err).Error("failed to preload sources")
			return
		}
	}
	log.Info("default sources preloaded")
}
