package model

import "aktifyay_backend/internal/locale"

// SEO içerik tablolarına gömülen ortak meta alanları.
// Boş alanlar render sırasında hesaplanan varsayılana düşer (diğer dile değil).
type SEO struct {
	MetaTitleTr       string `json:"meta_title_tr"`
	MetaTitleEn       string `json:"meta_title_en"`
	MetaDescriptionTr string `json:"meta_description_tr" gorm:"type:text"`
	MetaDescriptionEn string `json:"meta_description_en" gorm:"type:text"`
	OgTitleTr         string `json:"og_title_tr"`
	OgTitleEn         string `json:"og_title_en"`
	OgDescriptionTr   string `json:"og_description_tr" gorm:"type:text"`
	OgDescriptionEn   string `json:"og_description_en" gorm:"type:text"`
	OgImage           string `json:"og_image"`
	CanonicalURL      string `json:"canonical_url"`
	IsIndexed         bool   `json:"is_indexed" gorm:"default:true"`
	IsFollowed        bool   `json:"is_followed" gorm:"default:true"`
	SchemaEnabled     bool   `json:"schema_enabled" gorm:"default:true"`
}

// MetaTitle dil değeri boşsa fallback döner
func (s SEO) MetaTitle(loc locale.Locale, fallback string) string {
	return locale.PickMeta(loc, s.MetaTitleTr, s.MetaTitleEn, fallback)
}

func (s SEO) MetaDescription(loc locale.Locale, fallback string) string {
	return locale.PickMeta(loc, s.MetaDescriptionTr, s.MetaDescriptionEn, fallback)
}

func (s SEO) OgTitle(loc locale.Locale, fallback string) string {
	return locale.PickMeta(loc, s.OgTitleTr, s.OgTitleEn, fallback)
}

func (s SEO) OgDescription(loc locale.Locale, fallback string) string {
	return locale.PickMeta(loc, s.OgDescriptionTr, s.OgDescriptionEn, fallback)
}

// Robots meta içeriği (index/noindex, follow/nofollow)
func (s SEO) Robots() string {
	idx, flw := "index", "follow"
	if !s.IsIndexed {
		idx = "noindex"
	}
	if !s.IsFollowed {
		flw = "nofollow"
	}
	return idx + ", " + flw
}
