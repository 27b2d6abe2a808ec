package model

import "time"

type User struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Email string `gorm:"column:email;type:varchar(120);not null;unique" json:"email"`

	UserName string `gorm:"column:username;type:varchar(80);not null;unique" json:"username"`

	FullName string `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`

	FieldOfStudy string `gorm:"column:field_of_study;type:varchar(100);not null;default:''" json:"field_of_study"`

	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}
