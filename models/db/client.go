package dbmodels

type Client struct {
	BaseModel
	CompanyName string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(255);index"`
	Rating      int
	WebSite     string `gorm:"type:varchar(255)"`
	Notes       string
	Contacts    []Contact `gorm:"foreignKey:ClientID"`
}
