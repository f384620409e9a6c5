package model

import (
	"time"

	"gorm.io/gorm"
)

// AdminUser yönetim paneli hesabı. Kayıt akışı yok, seed ile oluşturulur.
type AdminUser struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	Name     string `json:"name"`

	ResetToken        string     `json:"-"`
	ResetTokenExpires *time.Time `json:"-"`
}
