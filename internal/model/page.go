package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

// Page kurumsal sabit sayfalar (hakkımızda, kalite, üretim vb.)
type Page struct {
	gorm.Model
	Slug      string `json:"slug" gorm:"uniqueIndex;not null"`
	TitleTr   string `json:"title_tr"`
	TitleEn   string `json:"title_en"`
	ContentTr string `json:"content_tr" gorm:"type:text"`
	ContentEn string `json:"content_en" gorm:"type:text"`

	Image string `json:"image"`

	IsActive bool `json:"is_active" gorm:"default:true"`
	Order    int  `json:"order" gorm:"default:0"`

	SEO SEO `json:"seo" gorm:"embedded"`
}

func (p Page) Title(loc locale.Locale) string {
	return locale.Pick(loc, p.TitleTr, p.TitleEn)
}

func (p Page) Content(loc locale.Locale) string {
	return locale.Pick(loc, p.ContentTr, p.ContentEn)
}

func (p *Page) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.TitleTr)
	}
	return nil
}
