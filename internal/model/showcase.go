package model

import (
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

// Ana sayfa ve vitrin içerikleri: slider, video, katalog, referans

type Slider struct {
	gorm.Model
	TitleTr    string `json:"title_tr"`
	TitleEn    string `json:"title_en"`
	SubtitleTr string `json:"subtitle_tr"`
	SubtitleEn string `json:"subtitle_en"`
	Image      string `json:"image"`
	Link       string `json:"link"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	Order      int    `json:"order" gorm:"default:0"`
}

func (s Slider) Title(loc locale.Locale) string {
	return locale.Pick(loc, s.TitleTr, s.TitleEn)
}

func (s Slider) Subtitle(loc locale.Locale) string {
	return locale.Pick(loc, s.SubtitleTr, s.SubtitleEn)
}

type Video struct {
	gorm.Model
	TitleTr  string `json:"title_tr"`
	TitleEn  string `json:"title_en"`
	VideoURL string `json:"video_url"` // YouTube embed linki
	IsActive bool   `json:"is_active" gorm:"default:true"`
	Order    int    `json:"order" gorm:"default:0"`
}

func (v Video) Title(loc locale.Locale) string {
	return locale.Pick(loc, v.TitleTr, v.TitleEn)
}

type Catalog struct {
	gorm.Model
	TitleTr    string `json:"title_tr"`
	TitleEn    string `json:"title_en"`
	FileURL    string `json:"file_url"` // PDF
	CoverImage string `json:"cover_image"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
	Order      int    `json:"order" gorm:"default:0"`
}

func (c Catalog) Title(loc locale.Locale) string {
	return locale.Pick(loc, c.TitleTr, c.TitleEn)
}

type Reference struct {
	gorm.Model
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Website  string `json:"website"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	Order    int    `json:"order" gorm:"default:0"`
}
