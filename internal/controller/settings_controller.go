package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

type SettingsInput struct {
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	SalesEmail  string `json:"sales_email"`
	AddressTr   string `json:"address_tr"`
	AddressEn   string `json:"address_en"`
	MapEmbedURL string `json:"map_embed_url"`

	Logo    string `json:"logo"`
	Favicon string `json:"favicon"`

	InstagramURL string `json:"instagram_url"`
	LinkedinURL  string `json:"linkedin_url"`
	YoutubeURL   string `json:"youtube_url"`

	GoogleAnalyticsID      string `json:"google_analytics_id"`
	GoogleSiteVerification string `json:"google_site_verification"`

	MetaSuffixTr string `json:"meta_suffix_tr"`
	MetaSuffixEn string `json:"meta_suffix_en"`
}

// GetPublicSettings sitenin ihtiyaç duyduğu iletişim ve marka bilgileri
func GetPublicSettings(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	settings := currentSettings()

	return c.JSON(fiber.Map{
		"company_name":  settings.CompanyName,
		"phone":         settings.Phone,
		"whatsapp":      settings.WhatsApp,
		"email":         settings.Email,
		"address":       settings.Address(loc),
		"map_embed_url": settings.MapEmbedURL,
		"logo":          settings.Logo,
		"favicon":       settings.Favicon,
		"instagram_url": settings.InstagramURL,
		"linkedin_url":  settings.LinkedinURL,
		"youtube_url":   settings.YoutubeURL,

		"google_analytics_id":      settings.GoogleAnalyticsID,
		"google_site_verification": settings.GoogleSiteVerification,
	})
}

func AdminGetSettings(c *fiber.Ctx) error {
	var settings model.Settings
	if err := database.GetDB().First(&settings, model.SettingsID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Settings not found",
		})
	}
	return c.JSON(settings)
}

// UpdateSettings sabit anahtarlı tekil satırı upsert eder, ikinci satır oluşmaz
func UpdateSettings(c *fiber.Ctx) error {
	input := new(SettingsInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	settings := model.Settings{
		Model:       gorm.Model{ID: model.SettingsID},
		CompanyName: input.CompanyName,
		Phone:       input.Phone,
		WhatsApp:    input.WhatsApp,
		Email:       input.Email,
		SalesEmail:  input.SalesEmail,
		AddressTr:   input.AddressTr,
		AddressEn:   input.AddressEn,
		MapEmbedURL: input.MapEmbedURL,
		Logo:        input.Logo,
		Favicon:     input.Favicon,

		InstagramURL: input.InstagramURL,
		LinkedinURL:  input.LinkedinURL,
		YoutubeURL:   input.YoutubeURL,

		GoogleAnalyticsID:      input.GoogleAnalyticsID,
		GoogleSiteVerification: input.GoogleSiteVerification,

		MetaSuffixTr: input.MetaSuffixTr,
		MetaSuffixEn: input.MetaSuffixEn,
	}

	if err := database.GetDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&settings).Error; err != nil {
		log.Printf("Error updating settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update settings",
		})
	}

	return c.JSON(settings)
}
