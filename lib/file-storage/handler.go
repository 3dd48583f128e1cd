package filestorage

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"freelance-tracker-backend/config"
	"freelance-tracker-backend/db"
	filesdbstorage "freelance-tracker-backend/lib/file-storage/store"
	filesapimodels "freelance-tracker-backend/models/api/files"
	dbmodels "freelance-tracker-backend/models/db"
	s3client "freelance-tracker-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadAvatar(ctx context.Context, userID string, file []byte, fileName string) error
	UploadCV(ctx context.Context, userID string, file []byte, fileName string) error
	GetAvatar(ctx context.Context, userID string) ([]byte, filesapimodels.FileView, error)
	GetCV(ctx context.Context, userID string) ([]byte, filesapimodels.FileView, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		store:    filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
}

func (i impl) UploadAvatar(ctx context.Context, userID string, file []byte, fileName string) error {
	return i.upload(ctx, userID, dbmodels.UserAvatar, file, fileName)
}

func (i impl) UploadCV(ctx context.Context, userID string, file []byte, fileName string) error {
	return i.upload(ctx, userID, dbmodels.UserCV, file, fileName)
}

func (i impl) GetAvatar(ctx context.Context, userID string) ([]byte, filesapimodels.FileView, error) {
	return i.download(ctx, userID, dbmodels.UserAvatar)
}

func (i impl) GetCV(ctx context.Context, userID string) ([]byte, filesapimodels.FileView, error) {
	return i.download(ctx, userID, dbmodels.UserCV)
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) upload(ctx context.Context, userID string, fileType dbmodels.FileType, file []byte, fileName string) error {
	objectKey := uuid.NewString()
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return errors.Wrap(err, "file upload failed")
	}
	_, err = i.store.SaveFile(dbmodels.FileStorage{
		Name:        fileName,
		OwnerID:     userID,
		Type:        fileType,
		ObjectKey:   objectKey,
		ContentType: http.DetectContentType(file),
	})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) download(ctx context.Context, userID string, fileType dbmodels.FileType) ([]byte, filesapimodels.FileView, error) {
	rec, err := i.store.GetFileByType(userID, fileType)
	if err != nil {
		return nil, filesapimodels.FileView{}, err
	}
	if rec == nil {
		return nil, filesapimodels.FileView{}, errors.New("file not found")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, filesapimodels.FileView{}, errors.Wrap(err, "file download failed")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, filesapimodels.FileView{}, errors.Wrap(err, "file download failed")
	}
	return body, rec.ToModel(), nil
}
