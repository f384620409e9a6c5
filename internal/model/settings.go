package model

import (
	"gorm.io/gorm"

	"aktifyay_backend/internal/locale"
)

// SettingsID tekil ayar satırının sabit anahtarı.
// Upsert her zaman bu id üzerinden yapılır, ikinci satır hiç oluşmaz.
const SettingsID uint = 1

type Settings struct {
	gorm.Model
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	SalesEmail  string `json:"sales_email"` // teklif/başvuru bildirimleri buraya gider
	AddressTr   string `json:"address_tr" gorm:"type:text"`
	AddressEn   string `json:"address_en" gorm:"type:text"`
	MapEmbedURL string `json:"map_embed_url" gorm:"type:text"`

	Logo    string `json:"logo"`
	Favicon string `json:"favicon"`

	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
	YoutubeURL   string `json:"youtube_url"`

	GoogleAnalyticsID      string `json:"google_analytics_id"`
	GoogleSiteVerification string `json:"google_site_verification"`

	// Meta title varsayılanlarının sonuna eklenen ifade
	MetaSuffixTr string `json:"meta_suffix_tr"`
	MetaSuffixEn string `json:"meta_suffix_en"`
}

func (s Settings) Address(loc locale.Locale) string {
	return locale.Pick(loc, s.AddressTr, s.AddressEn)
}

func (s Settings) MetaSuffix(loc locale.Locale) string {
	return locale.Pick(loc, s.MetaSuffixTr, s.MetaSuffixEn)
}
