package controller

import (
	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

// currentSettings tekil ayar satırını okur, yoksa boş değer döner
func currentSettings() model.Settings {
	var settings model.Settings
	database.GetDB().First(&settings, model.SettingsID)
	return settings
}

// seoView meta bloğunu kurar. Dil değeri boş alanlar hesaplanmış
// varsayılana düşer (isim + site eki), asla diğer dilin metnine değil.
func seoView(seo model.SEO, loc locale.Locale, name, summary string) fiber.Map {
	settings := currentSettings()
	defaultTitle := name + settings.MetaSuffix(loc)

	return fiber.Map{
		"meta_title":       seo.MetaTitle(loc, defaultTitle),
		"meta_description": seo.MetaDescription(loc, summary),
		"og_title":         seo.OgTitle(loc, defaultTitle),
		"og_description":   seo.OgDescription(loc, summary),
		"og_image":         seo.OgImage,
		"canonical_url":    seo.CanonicalURL,
		"robots":           seo.Robots(),
		"schema_enabled":   seo.SchemaEnabled,
	}
}
