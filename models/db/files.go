package dbmodels

import filesapimodels "freelance-tracker-backend/models/api/files"

type FileStorage struct {
	BaseModel
	Name        string
	OwnerID     string `gorm:"type:varchar(36);index"`
	Type        FileType
	ObjectKey   string `gorm:"type:varchar(255)"`
	ContentType string
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		OwnerID:     f.OwnerID,
		ContentType: f.ContentType,
	}
}

type FileType string

const (
	UserAvatar FileType = "user_avatar"
	UserCV     FileType = "user_cv"
)
