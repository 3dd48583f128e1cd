package dbmodels

type Contact struct {
	BaseModel
	ClientID  string  `gorm:"type:varchar(36);index"`
	Client    *Client `gorm:"foreignKey:ClientID"`
	FirstName string  `gorm:"type:varchar(255)"`
	LastName  string  `gorm:"type:varchar(255)"`
	Email     string  `gorm:"type:varchar(255);index"`
	Phone     string  `gorm:"type:varchar(255)"`
	Role      string  `gorm:"type:varchar(255)"`
}
