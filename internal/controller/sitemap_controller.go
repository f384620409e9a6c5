package controller

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/config"
	"aktifyay_backend/pkg/database"
)

// GetSitemap her istekte hesaplanır, cache yoktur. Her aktif içerik satırı
// için dil başına bir kayıt, TR/EN çapraz alternate linkleriyle yazılır.
func GetSitemap(c *fiber.Ctx) error {
	baseURL := config.Load().Site.BaseURL
	db := database.GetDB()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n")

	// path dil başına site içi yol üretir (slug boşsa bölüm kökü)
	writeEntry := func(paths map[locale.Locale]string) {
		for _, loc := range []locale.Locale{locale.TR, locale.EN} {
			b.WriteString("  <url>\n")
			b.WriteString(fmt.Sprintf("    <loc>%s/%s%s</loc>\n", baseURL, loc, paths[loc]))
			for _, alt := range []locale.Locale{locale.TR, locale.EN} {
				b.WriteString(fmt.Sprintf(
					`    <xhtml:link rel="alternate" hreflang="%s" href="%s/%s%s"/>`+"\n",
					alt, baseURL, alt, paths[alt]))
			}
			b.WriteString("  </url>\n")
		}
	}

	sectionPaths := func(sec locale.Section, slug string) map[locale.Locale]string {
		paths := make(map[locale.Locale]string, 2)
		for _, loc := range []locale.Locale{locale.TR, locale.EN} {
			p := "/" + locale.Segment(sec, loc)
			if slug != "" {
				p += "/" + slug
			}
			paths[loc] = p
		}
		return paths
	}

	// Ana sayfa ve bölüm kökleri
	writeEntry(map[locale.Locale]string{locale.TR: "", locale.EN: ""})
	for _, sec := range []locale.Section{
		locale.SectionProducts, locale.SectionIndustries, locale.SectionBlog,
		locale.SectionReferences, locale.SectionCatalogs, locale.SectionContact,
	} {
		writeEntry(sectionPaths(sec, ""))
	}

	var products []model.Product
	db.Where("is_active = ?", true).Find(&products)
	for _, p := range products {
		writeEntry(sectionPaths(locale.SectionProducts, p.Slug))
	}

	var industries []model.Industry
	db.Where("is_active = ?", true).Find(&industries)
	for _, i := range industries {
		writeEntry(sectionPaths(locale.SectionIndustries, i.Slug))
	}

	var pages []model.Page
	db.Where("is_active = ?", true).Find(&pages)
	for _, p := range pages {
		writeEntry(map[locale.Locale]string{
			locale.TR: "/" + p.Slug,
			locale.EN: "/" + p.Slug,
		})
	}

	var posts []model.BlogPost
	db.Where("is_published = ? AND published_at IS NOT NULL", true).Find(&posts)
	for _, p := range posts {
		writeEntry(sectionPaths(locale.SectionBlog, p.Slug))
	}

	b.WriteString("</urlset>\n")

	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.SendString(b.String())
}
