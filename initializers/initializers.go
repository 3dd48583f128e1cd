package initializers

import (
	"context"

	"freelance-tracker-backend/config"
	"freelance-tracker-backend/fiberlog"
	authhandler "freelance-tracker-backend/lib/auth"
	clienthandler "freelance-tracker-backend/lib/client"
	contacthandler "freelance-tracker-backend/lib/contact"
	pdfexport "freelance-tracker-backend/lib/export/pdf"
	xlsexport "freelance-tracker-backend/lib/export/xls"
	filestorage "freelance-tracker-backend/lib/file-storage"
	kanbanhandler "freelance-tracker-backend/lib/kanban"
	"freelance-tracker-backend/lib/pipeline"
	projecthandler "freelance-tracker-backend/lib/project"
	sourcehandler "freelance-tracker-backend/lib/source"
	usershandler "freelance-tracker-backend/lib/users"
	connectionhub "freelance-tracker-backend/lib/ws/hub/connection-hub"
	s3client "freelance-tracker-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	clienthandler.NewHandler()
	contacthandler.NewHandler()
	sourcehandler.NewHandler()
	projecthandler.NewHandler()
	pipeline.NewHandler()
	kanbanhandler.NewHandler()
	xlsexport.NewHandler()
	pdfexport.NewHandler()

	if s3client.Client != nil {
		if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
			log.WithError(err).Error("failed to ensure S3 bucket")
		}
	}
}
