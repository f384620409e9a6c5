package controller

import (
	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

// GetHome ana sayfanın ihtiyaç duyduğu her şeyi tek seferde döner:
// slider, öne çıkan ürünler, sektörler, son yazılar, referanslar
func GetHome(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	db := database.GetDB()

	var sliders []model.Slider
	db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&sliders)

	var featured []model.Product
	db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("\"order\" asc, id asc").Find(&featured)

	var industries []model.Industry
	db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&industries)

	var posts []model.BlogPost
	db.Where("is_published = ? AND published_at IS NOT NULL", true).
		Order("published_at desc").Limit(3).Find(&posts)

	var references []model.Reference
	db.Where("is_active = ?", true).Order("\"order\" asc, id asc").Find(&references)

	sliderItems := make([]fiber.Map, 0, len(sliders))
	for _, s := range sliders {
		sliderItems = append(sliderItems, fiber.Map{
			"title":    s.Title(loc),
			"subtitle": s.Subtitle(loc),
			"image":    s.Image,
			"link":     s.Link,
		})
	}

	productItems := make([]fiber.Map, 0, len(featured))
	for _, p := range featured {
		productItems = append(productItems, fiber.Map{
			"slug":    p.Slug,
			"name":    p.Name(loc),
			"summary": p.Summary(loc),
			"image":   p.Image,
		})
	}

	industryItems := make([]fiber.Map, 0, len(industries))
	for _, i := range industries {
		industryItems = append(industryItems, fiber.Map{
			"slug":  i.Slug,
			"name":  i.Name(loc),
			"image": i.Image,
		})
	}

	postItems := make([]fiber.Map, 0, len(posts))
	for _, p := range posts {
		postItems = append(postItems, fiber.Map{
			"slug":         p.Slug,
			"title":        p.Title(loc),
			"excerpt":      p.Excerpt(loc),
			"cover_image":  p.CoverImage,
			"published_at": p.PublishedAt,
		})
	}

	referenceItems := make([]fiber.Map, 0, len(references))
	for _, r := range references {
		referenceItems = append(referenceItems, fiber.Map{
			"name": r.Name,
			"logo": r.Logo,
		})
	}

	return c.JSON(fiber.Map{
		"sliders":           sliderItems,
		"featured_products": productItems,
		"industries":        industryItems,
		"latest_posts":      postItems,
		"references":        referenceItems,
	})
}
