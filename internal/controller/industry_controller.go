package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/internal/relation"
	"aktifyay_backend/pkg/database"
)

type IndustryInput struct {
	Slug      string `json:"slug"`
	NameTr    string `json:"name_tr"`
	NameEn    string `json:"name_en"`
	SummaryTr string `json:"summary_tr"`
	SummaryEn string `json:"summary_en"`
	ContentTr string `json:"content_tr"`
	ContentEn string `json:"content_en"`

	Image string `json:"image"`

	RelatedProducts []string `json:"related_products"`

	IsActive bool `json:"is_active"`
	Order    int  `json:"order"`

	SEO model.SEO `json:"seo"`
}

// ListIndustries aktif sektörleri sıralı döner (public)
func ListIndustries(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var industries []model.Industry
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&industries).Error; err != nil {
		log.Printf("Error fetching industries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch industries",
		})
	}

	items := make([]fiber.Map, 0, len(industries))
	for _, i := range industries {
		items = append(items, fiber.Map{
			"slug":    i.Slug,
			"name":    i.Name(loc),
			"summary": i.Summary(loc),
			"image":   i.Image,
		})
	}

	return c.JSON(fiber.Map{"industries": items})
}

// GetIndustryBySlug public sektör detayı, ilişkili ürünler çift yönlü çözülür
func GetIndustryBySlug(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	industrySlug := c.Params("slug")

	var industry model.Industry
	if err := database.GetDB().Where("slug = ? AND is_active = ?", industrySlug, true).
		First(&industry).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Industry not found",
		})
	}

	resolver := relation.NewResolver(database.GetDB())
	products := resolver.ProductsFor(&industry, loc)

	return c.JSON(fiber.Map{
		"slug":             industry.Slug,
		"name":             industry.Name(loc),
		"summary":          industry.Summary(loc),
		"content":          industry.Content(loc),
		"image":            industry.Image,
		"related_products": products,
		"seo":              seoView(industry.SEO, loc, industry.Name(loc), industry.Summary(loc)),
	})
}

func AdminListIndustries(c *fiber.Ctx) error {
	var industries []model.Industry
	if err := database.GetDB().Order("\"order\" asc, id asc").Find(&industries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch industries",
		})
	}
	return c.JSON(industries)
}

func AdminGetIndustry(c *fiber.Ctx) error {
	var industry model.Industry
	if err := database.GetDB().First(&industry, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Industry not found",
		})
	}
	return c.JSON(industry)
}

func CreateIndustry(c *fiber.Ctx) error {
	input := new(IndustryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Slug != "" {
		var count int64
		database.GetDB().Model(&model.Industry{}).Where("slug = ?", input.Slug).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "An industry with this slug already exists",
			})
		}
	}

	industry := model.Industry{
		Slug:            input.Slug,
		NameTr:          input.NameTr,
		NameEn:          input.NameEn,
		SummaryTr:       input.SummaryTr,
		SummaryEn:       input.SummaryEn,
		ContentTr:       input.ContentTr,
		ContentEn:       input.ContentEn,
		Image:           input.Image,
		RelatedProducts: relation.EncodeSlugs(input.RelatedProducts),
		IsActive:        input.IsActive,
		Order:           input.Order,
		SEO:             input.SEO,
	}

	if err := database.GetDB().Create(&industry).Error; err != nil {
		log.Printf("Error creating industry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create industry",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(industry)
}

func UpdateIndustry(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(IndustryInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var industry model.Industry
	if err := database.GetDB().First(&industry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Industry not found",
		})
	}

	if input.Slug != "" && input.Slug != industry.Slug {
		var count int64
		database.GetDB().Model(&model.Industry{}).
			Where("slug = ? AND id != ?", input.Slug, industry.ID).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "An industry with this slug already exists",
			})
		}
		industry.Slug = input.Slug
	}

	industry.NameTr = input.NameTr
	industry.NameEn = input.NameEn
	industry.SummaryTr = input.SummaryTr
	industry.SummaryEn = input.SummaryEn
	industry.ContentTr = input.ContentTr
	industry.ContentEn = input.ContentEn
	industry.Image = input.Image
	industry.RelatedProducts = relation.EncodeSlugs(input.RelatedProducts)
	industry.IsActive = input.IsActive
	industry.Order = input.Order
	industry.SEO = input.SEO

	if err := database.GetDB().Save(&industry).Error; err != nil {
		log.Printf("Error updating industry: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update industry",
		})
	}

	return c.JSON(industry)
}

func DeleteIndustry(c *fiber.Ctx) error {
	var industry model.Industry
	if err := database.GetDB().First(&industry, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Industry not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&industry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete industry",
		})
	}

	return c.JSON(fiber.Map{"message": "Industry deleted successfully"})
}
