package models

type User struct {
	Base
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	Memberships []Membership `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
