package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

type PageInput struct {
	Slug      string `json:"slug"`
	TitleTr   string `json:"title_tr"`
	TitleEn   string `json:"title_en"`
	ContentTr string `json:"content_tr"`
	ContentEn string `json:"content_en"`

	Image string `json:"image"`

	IsActive bool `json:"is_active"`
	Order    int  `json:"order"`

	SEO model.SEO `json:"seo"`
}

// GetPageBySlug kurumsal sayfa detayı (public)
func GetPageBySlug(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	pageSlug := c.Params("slug")

	var page model.Page
	if err := database.GetDB().Where("slug = ? AND is_active = ?", pageSlug, true).
		First(&page).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	return c.JSON(fiber.Map{
		"slug":    page.Slug,
		"title":   page.Title(loc),
		"content": page.Content(loc),
		"image":   page.Image,
		"seo":     seoView(page.SEO, loc, page.Title(loc), ""),
	})
}

func AdminListPages(c *fiber.Ctx) error {
	var pages []model.Page
	if err := database.GetDB().Order("\"order\" asc, id asc").Find(&pages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch pages",
		})
	}
	return c.JSON(pages)
}

func AdminGetPage(c *fiber.Ctx) error {
	var page model.Page
	if err := database.GetDB().First(&page, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}
	return c.JSON(page)
}

func CreatePage(c *fiber.Ctx) error {
	input := new(PageInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Slug != "" {
		var count int64
		database.GetDB().Model(&model.Page{}).Where("slug = ?", input.Slug).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A page with this slug already exists",
			})
		}
	}

	page := model.Page{
		Slug:      input.Slug,
		TitleTr:   input.TitleTr,
		TitleEn:   input.TitleEn,
		ContentTr: input.ContentTr,
		ContentEn: input.ContentEn,
		Image:     input.Image,
		IsActive:  input.IsActive,
		Order:     input.Order,
		SEO:       input.SEO,
	}

	if err := database.GetDB().Create(&page).Error; err != nil {
		log.Printf("Error creating page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create page",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(page)
}

func UpdatePage(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(PageInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var page model.Page
	if err := database.GetDB().First(&page, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	if input.Slug != "" && input.Slug != page.Slug {
		var count int64
		database.GetDB().Model(&model.Page{}).
			Where("slug = ? AND id != ?", input.Slug, page.ID).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A page with this slug already exists",
			})
		}
		page.Slug = input.Slug
	}

	page.TitleTr = input.TitleTr
	page.TitleEn = input.TitleEn
	page.ContentTr = input.ContentTr
	page.ContentEn = input.ContentEn
	page.Image = input.Image
	page.IsActive = input.IsActive
	page.Order = input.Order
	page.SEO = input.SEO

	if err := database.GetDB().Save(&page).Error; err != nil {
		log.Printf("Error updating page: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update page",
		})
	}

	return c.JSON(page)
}

func DeletePage(c *fiber.Ctx) error {
	var page model.Page
	if err := database.GetDB().First(&page, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Page not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&page).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete page",
		})
	}

	return c.JSON(fiber.Map{"message": "Page deleted successfully"})
}
