package dbmodels

type FreelanceUser struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(255)"`
	LastName     string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Phone        string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
	JobTitle     string `gorm:"type:varchar(255)"`
}

func (u FreelanceUser) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
