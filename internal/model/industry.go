package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

type Industry struct {
	gorm.Model
	Slug      string `json:"slug" gorm:"uniqueIndex;not null"`
	NameTr    string `json:"name_tr"`
	NameEn    string `json:"name_en"`
	SummaryTr string `json:"summary_tr" gorm:"type:text"`
	SummaryEn string `json:"summary_en" gorm:"type:text"`
	ContentTr string `json:"content_tr" gorm:"type:text"`
	ContentEn string `json:"content_en" gorm:"type:text"`

	Image string `json:"image"`

	// İlişkili ürün slug'ları (JSON array)
	RelatedProducts datatypes.JSON `json:"related_products"`

	IsActive bool `json:"is_active" gorm:"default:true"`
	Order    int  `json:"order" gorm:"default:0"`

	SEO SEO `json:"seo" gorm:"embedded"`
}

func (i Industry) Name(loc locale.Locale) string {
	return locale.Pick(loc, i.NameTr, i.NameEn)
}

func (i Industry) Summary(loc locale.Locale) string {
	return locale.Pick(loc, i.SummaryTr, i.SummaryEn)
}

func (i Industry) Content(loc locale.Locale) string {
	return locale.Pick(loc, i.ContentTr, i.ContentEn)
}

func (i *Industry) BeforeCreate(tx *gorm.DB) error {
	if i.Slug == "" {
		s := slug.Make(i.NameTr)
		if s == "" {
			s = slug.Make(i.NameEn)
		}

		var count int64
		tx.Model(&Industry{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102")
		}

		i.Slug = s
	}
	return nil
}
