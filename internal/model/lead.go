package model

import "gorm.io/gorm"

// Form gönderimleri: oluşturulduktan sonra içerik değişmez,
// admin sadece okundu işaretler veya siler.

type QuoteRequest struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ProductSlug string `json:"product_slug"` // hangi üründen geldiği (opsiyonel)
	Quantity    string `json:"quantity"`
	Message     string `json:"message" gorm:"type:text"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
}

type JobApplication struct {
	gorm.Model
	Name     string  `json:"name" gorm:"not null"`
	Email    string  `json:"email" gorm:"not null"`
	Phone    string  `json:"phone"`
	Position string  `json:"position" gorm:"not null"`
	Message  string  `json:"message" gorm:"type:text"`
	CVURL    *string `json:"cv_url"`
	IsRead   bool    `json:"is_read" gorm:"default:false"`
}

type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
