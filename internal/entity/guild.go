package entity

type Guild struct {
	Base

	Name           string `gorm:"unique"`
	Description    string `gorm:"type:text"`
	Emblem         string
	Specialization string
	Category       string

	OwnerID string
	Owner   User `gorm:"foreignKey:OwnerID"`

	// Members is kept equal to the number of guild member rows after
	// every mutation.
	Members int `gorm:"default:0"`
}
