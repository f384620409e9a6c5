package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/internal/relation"
	"aktifyay_backend/pkg/database"
)

type ProductInput struct {
	Slug          string `json:"slug"`
	NameTr        string `json:"name_tr"`
	NameEn        string `json:"name_en"`
	SummaryTr     string `json:"summary_tr"`
	SummaryEn     string `json:"summary_en"`
	DescriptionTr string `json:"description_tr"`
	DescriptionEn string `json:"description_en"`
	ContentTr     string `json:"content_tr"`
	ContentEn     string `json:"content_en"`

	Image   string   `json:"image"`
	Gallery []string `json:"gallery"`

	SolutionsTr string `json:"solutions_tr"`
	SolutionsEn string `json:"solutions_en"`

	RelatedIndustries []string `json:"related_industries"`

	IsActive   bool `json:"is_active"`
	IsFeatured bool `json:"is_featured"`
	Order      int  `json:"order"`

	SEO model.SEO `json:"seo"`
}

// ListProducts aktif ürünleri sıralı döner (public)
func ListProducts(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var products []model.Product
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&products).Error; err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	items := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		items = append(items, fiber.Map{
			"slug":        p.Slug,
			"name":        p.Name(loc),
			"summary":     p.Summary(loc),
			"image":       p.Image,
			"is_featured": p.IsFeatured,
		})
	}

	return c.JSON(fiber.Map{"products": items})
}

// GetProductBySlug public ürün detayı. Pasif veya bulunamayan ürün 404 döner,
// asla yarım sayfa render edilmez.
func GetProductBySlug(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	productSlug := c.Params("slug")

	var product model.Product
	if err := database.GetDB().Where("slug = ? AND is_active = ?", productSlug, true).
		First(&product).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	resolver := relation.NewResolver(database.GetDB())
	industries := resolver.IndustriesFor(&product, loc)

	return c.JSON(fiber.Map{
		"slug":               product.Slug,
		"name":               product.Name(loc),
		"summary":            product.Summary(loc),
		"description":        product.Description(loc),
		"content":            product.Content(loc),
		"image":              product.Image,
		"gallery":            relation.DecodeSlugs(product.Gallery),
		"solutions":          product.Solutions(loc),
		"related_industries": industries,
		"seo":                seoView(product.SEO, loc, product.Name(loc), product.Summary(loc)),
	})
}

// AdminListProducts tüm ürünleri döner, pasifler dahil
func AdminListProducts(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.GetDB().Order("\"order\" asc, id asc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}
	return c.JSON(products)
}

func AdminGetProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := database.GetDB().First(&product, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	return c.JSON(product)
}

// CreateProduct yeni ürün oluşturur, slug çakışması kontrol edilir
func CreateProduct(c *fiber.Ctx) error {
	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Slug != "" {
		var count int64
		database.GetDB().Model(&model.Product{}).Where("slug = ?", input.Slug).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A product with this slug already exists",
			})
		}
	}

	product := model.Product{
		Slug:              input.Slug,
		NameTr:            input.NameTr,
		NameEn:            input.NameEn,
		SummaryTr:         input.SummaryTr,
		SummaryEn:         input.SummaryEn,
		DescriptionTr:     input.DescriptionTr,
		DescriptionEn:     input.DescriptionEn,
		ContentTr:         input.ContentTr,
		ContentEn:         input.ContentEn,
		Image:             input.Image,
		Gallery:           encodeList(input.Gallery),
		SolutionsTr:       input.SolutionsTr,
		SolutionsEn:       input.SolutionsEn,
		RelatedIndustries: relation.EncodeSlugs(input.RelatedIndustries),
		IsActive:          input.IsActive,
		IsFeatured:        input.IsFeatured,
		Order:             input.Order,
		SEO:               input.SEO,
	}

	if err := database.GetDB().Create(&product).Error; err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct tam satır görüntüsü yazar, son yazan kazanır.
// Slug çakışması güncellemede de kontrol edilir.
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(ProductInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if input.Slug != "" && input.Slug != product.Slug {
		var count int64
		database.GetDB().Model(&model.Product{}).
			Where("slug = ? AND id != ?", input.Slug, product.ID).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A product with this slug already exists",
			})
		}
		product.Slug = input.Slug
	}

	product.NameTr = input.NameTr
	product.NameEn = input.NameEn
	product.SummaryTr = input.SummaryTr
	product.SummaryEn = input.SummaryEn
	product.DescriptionTr = input.DescriptionTr
	product.DescriptionEn = input.DescriptionEn
	product.ContentTr = input.ContentTr
	product.ContentEn = input.ContentEn
	product.Image = input.Image
	product.Gallery = encodeList(input.Gallery)
	product.SolutionsTr = input.SolutionsTr
	product.SolutionsEn = input.SolutionsEn
	product.RelatedIndustries = relation.EncodeSlugs(input.RelatedIndustries)
	product.IsActive = input.IsActive
	product.IsFeatured = input.IsFeatured
	product.Order = input.Order
	product.SEO = input.SEO

	if err := database.GetDB().Save(&product).Error; err != nil {
		log.Printf("Error updating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product",
		})
	}

	return c.JSON(product)
}

func DeleteProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := database.GetDB().First(&product, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product",
		})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func encodeList(items []string) datatypes.JSON {
	return relation.EncodeSlugs(items)
}
