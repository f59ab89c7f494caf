package model

import (
	"time"
)

// UserModel represents the users table. Email and username uniqueness is
// enforced at the storage layer so concurrent signups cannot race past an
// application-side existence check.
type UserModel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	UserName    string     `gorm:"column:username;size:50;uniqueIndex;not null" json:"username" validate:"required,min=3,max=50"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
