package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username  string `gorm:"unique;not null"`
	Password  string `gorm:"not null"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Age       *int32
	Posts     []Post `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	Content  string `gorm:"not null"`
	UserID   uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Content string `gorm:"not null"`
	PostID  uint
}
