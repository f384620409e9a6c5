package model

import (
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

type Product struct {
	gorm.Model
	Slug          string `json:"slug" gorm:"uniqueIndex;not null"`
	NameTr        string `json:"name_tr"`
	NameEn        string `json:"name_en"`
	SummaryTr     string `json:"summary_tr" gorm:"type:text"`
	SummaryEn     string `json:"summary_en" gorm:"type:text"`
	DescriptionTr string `json:"description_tr" gorm:"type:text"`
	DescriptionEn string `json:"description_en" gorm:"type:text"`
	ContentTr     string `json:"content_tr" gorm:"type:text"`
	ContentEn     string `json:"content_en" gorm:"type:text"`

	Image   string         `json:"image"`
	Gallery datatypes.JSON `json:"gallery"` // görsel URL listesi (JSON array)

	// Satır sonlarıyla ayrılmış çözüm maddeleri
	SolutionsTr string `json:"solutions_tr" gorm:"type:text"`
	SolutionsEn string `json:"solutions_en" gorm:"type:text"`

	// İlişkili sektör slug'ları (JSON array). Çift yönlü çözümlenir,
	// karşı tarafın bizi listelemesi de ilişki sayılır.
	RelatedIndustries datatypes.JSON `json:"related_industries"`

	IsActive   bool `json:"is_active" gorm:"default:true"`
	IsFeatured bool `json:"is_featured" gorm:"default:false"`
	Order      int  `json:"order" gorm:"default:0"`

	SEO SEO `json:"seo" gorm:"embedded"`
}

func (p Product) Name(loc locale.Locale) string {
	return locale.Pick(loc, p.NameTr, p.NameEn)
}

func (p Product) Summary(loc locale.Locale) string {
	return locale.Pick(loc, p.SummaryTr, p.SummaryEn)
}

func (p Product) Description(loc locale.Locale) string {
	return locale.Pick(loc, p.DescriptionTr, p.DescriptionEn)
}

func (p Product) Content(loc locale.Locale) string {
	return locale.Pick(loc, p.ContentTr, p.ContentEn)
}

func (p Product) Solutions(loc locale.Locale) string {
	return locale.Pick(loc, p.SolutionsTr, p.SolutionsEn)
}

// BeforeCreate slug boş bırakıldıysa Türkçe isimden üretir
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.NameTr)
		if s == "" {
			s = slug.Make(p.NameEn)
		}

		var count int64
		tx.Model(&Product{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102")
		}

		p.Slug = s
	}
	return nil
}
