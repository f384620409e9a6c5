package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

type BlogCategory struct {
	gorm.Model
	Slug   string `json:"slug" gorm:"uniqueIndex;not null"`
	NameTr string `json:"name_tr"`
	NameEn string `json:"name_en"`
	Order  int    `json:"order" gorm:"default:0"`

	IsActive bool `json:"is_active" gorm:"default:true"`
}

func (c BlogCategory) Name(loc locale.Locale) string {
	return locale.Pick(loc, c.NameTr, c.NameEn)
}

func (c *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.NameTr)
	}
	return nil
}

type BlogPost struct {
	gorm.Model
	Slug      string `json:"slug" gorm:"uniqueIndex;not null"`
	TitleTr   string `json:"title_tr"`
	TitleEn   string `json:"title_en"`
	ExcerptTr string `json:"excerpt_tr" gorm:"type:text"`
	ExcerptEn string `json:"excerpt_en" gorm:"type:text"`
	ContentTr string `json:"content_tr" gorm:"type:text"`
	ContentEn string `json:"content_en" gorm:"type:text"`

	CoverImage string `json:"cover_image"`

	// Kategori silinirse null kalır, render tarafında "kategorisiz" gösterilir
	CategoryID *uint         `json:"category_id"`
	Category   *BlogCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`

	// Yazma anında içerikten hesaplanır, dakika cinsinden
	ReadingTime int `json:"reading_time" gorm:"default:1"`

	SEO SEO `json:"seo" gorm:"embedded"`
}

func (p BlogPost) Title(loc locale.Locale) string {
	return locale.Pick(loc, p.TitleTr, p.TitleEn)
}

func (p BlogPost) Excerpt(loc locale.Locale) string {
	return locale.Pick(loc, p.ExcerptTr, p.ExcerptEn)
}

func (p BlogPost) Content(loc locale.Locale) string {
	return locale.Pick(loc, p.ContentTr, p.ContentEn)
}

// Visible yayın kontrolü: isPublished ve publishedAt ikisi de gerekli
func (p BlogPost) Visible() bool {
	return p.IsPublished && p.PublishedAt != nil
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// CalculateReadingTime HTML etiketleri ayıklanmış kelime sayısından
// 200 kelime/dakika ile yukarı yuvarlanmış okuma süresi, en az 1
func CalculateReadingTime(content string) int {
	text := htmlTagPattern.ReplaceAllString(content, " ")
	words := len(strings.Fields(text))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		s := slug.Make(p.TitleTr)
		if s == "" {
			s = slug.Make(p.TitleEn)
		}

		var count int64
		tx.Model(&BlogPost{}).Where("slug = ?", s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102")
		}

		p.Slug = s
	}
	return nil
}

// BeforeSave okuma süresini TR içerikten (boşsa EN) günceller
func (p *BlogPost) BeforeSave(tx *gorm.DB) error {
	content := p.ContentTr
	if content == "" {
		content = p.ContentEn
	}
	p.ReadingTime = CalculateReadingTime(content)
	return nil
}
