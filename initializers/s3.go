package initializers

import (
	"context"

	s3client "freelance-tracker-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}

	// connectivity check
	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
