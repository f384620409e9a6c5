package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

type BlogPostInput struct {
	Slug      string `json:"slug"`
	TitleTr   string `json:"title_tr"`
	TitleEn   string `json:"title_en"`
	ExcerptTr string `json:"excerpt_tr"`
	ExcerptEn string `json:"excerpt_en"`
	ContentTr string `json:"content_tr"`
	ContentEn string `json:"content_en"`

	CoverImage string `json:"cover_image"`
	CategoryID *uint  `json:"category_id"`

	IsPublished bool `json:"is_published"`

	SEO model.SEO `json:"seo"`
}

type BlogCategoryInput struct {
	Slug     string `json:"slug"`
	NameTr   string `json:"name_tr"`
	NameEn   string `json:"name_en"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// ListBlogPosts yayınlanmış yazıları yeniden eskiye döner (public)
func ListBlogPosts(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	query := database.GetDB().Where("is_published = ? AND published_at IS NOT NULL", true).
		Preload("Category").Order("published_at desc")

	if categorySlug := c.Query("category"); categorySlug != "" {
		var category model.BlogCategory
		if err := database.GetDB().Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var posts []model.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		log.Printf("Error fetching blog posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog posts",
		})
	}

	items := make([]fiber.Map, 0, len(posts))
	for _, p := range posts {
		item := fiber.Map{
			"slug":         p.Slug,
			"title":        p.Title(loc),
			"excerpt":      p.Excerpt(loc),
			"cover_image":  p.CoverImage,
			"published_at": p.PublishedAt,
			"reading_time": p.ReadingTime,
		}
		if p.Category != nil {
			item["category"] = fiber.Map{
				"slug": p.Category.Slug,
				"name": p.Category.Name(loc),
			}
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{"posts": items})
}

// GetBlogPostBySlug public yazı detayı. Yayınlanmamış yazı 404 döner.
func GetBlogPostBySlug(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)
	postSlug := c.Params("slug")

	var post model.BlogPost
	if err := database.GetDB().Preload("Category").
		Where("slug = ?", postSlug).First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	if !post.Visible() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	resp := fiber.Map{
		"slug":         post.Slug,
		"title":        post.Title(loc),
		"excerpt":      post.Excerpt(loc),
		"content":      post.Content(loc),
		"cover_image":  post.CoverImage,
		"published_at": post.PublishedAt,
		"reading_time": post.ReadingTime,
		"seo":          seoView(post.SEO, loc, post.Title(loc), post.Excerpt(loc)),
	}
	if post.Category != nil {
		resp["category"] = fiber.Map{
			"slug": post.Category.Slug,
			"name": post.Category.Name(loc),
		}
	}

	return c.JSON(resp)
}

// ListBlogCategories aktif kategorileri döner (public)
func ListBlogCategories(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var categories []model.BlogCategory
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch categories",
		})
	}

	items := make([]fiber.Map, 0, len(categories))
	for _, cat := range categories {
		items = append(items, fiber.Map{
			"slug": cat.Slug,
			"name": cat.Name(loc),
		})
	}

	return c.JSON(fiber.Map{"categories": items})
}

func AdminListBlogPosts(c *fiber.Ctx) error {
	var posts []model.BlogPost
	if err := database.GetDB().Preload("Category").
		Order("created_at desc").Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch blog posts",
		})
	}
	return c.JSON(posts)
}

func AdminGetBlogPost(c *fiber.Ctx) error {
	var post model.BlogPost
	if err := database.GetDB().Preload("Category").
		First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}
	return c.JSON(post)
}

func CreateBlogPost(c *fiber.Ctx) error {
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Slug != "" {
		var count int64
		database.GetDB().Model(&model.BlogPost{}).Where("slug = ?", input.Slug).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A blog post with this slug already exists",
			})
		}
	}

	post := model.BlogPost{
		Slug:        input.Slug,
		TitleTr:     input.TitleTr,
		TitleEn:     input.TitleEn,
		ExcerptTr:   input.ExcerptTr,
		ExcerptEn:   input.ExcerptEn,
		ContentTr:   input.ContentTr,
		ContentEn:   input.ContentEn,
		CoverImage:  input.CoverImage,
		CategoryID:  input.CategoryID,
		IsPublished: input.IsPublished,
		SEO:         input.SEO,
	}

	if input.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := database.GetDB().Create(&post).Error; err != nil {
		log.Printf("Error creating blog post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create blog post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func UpdateBlogPost(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BlogPostInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	if input.Slug != "" && input.Slug != post.Slug {
		var count int64
		database.GetDB().Model(&model.BlogPost{}).
			Where("slug = ? AND id != ?", input.Slug, post.ID).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A blog post with this slug already exists",
			})
		}
		post.Slug = input.Slug
	}

	post.TitleTr = input.TitleTr
	post.TitleEn = input.TitleEn
	post.ExcerptTr = input.ExcerptTr
	post.ExcerptEn = input.ExcerptEn
	post.ContentTr = input.ContentTr
	post.ContentEn = input.ContentEn
	post.CoverImage = input.CoverImage
	post.CategoryID = input.CategoryID
	post.SEO = input.SEO

	// İlk yayınlamada tarih atanır, geri çekmede korunur
	if input.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.IsPublished = input.IsPublished

	if err := database.GetDB().Save(&post).Error; err != nil {
		log.Printf("Error updating blog post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update blog post",
		})
	}

	return c.JSON(post)
}

func DeleteBlogPost(c *fiber.Ctx) error {
	var post model.BlogPost
	if err := database.GetDB().First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Blog post not found",
		})
	}

	if err := database.GetDB().Unscoped().Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete blog post",
		})
	}

	return c.JSON(fiber.Map{"message": "Blog post deleted successfully"})
}

func AdminListBlogCategories(c *fiber.Ctx) error {
	var categories []model.BlogCategory
	if err := database.GetDB().Order("\"order\" asc, id asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch categories",
		})
	}
	return c.JSON(categories)
}

func CreateBlogCategory(c *fiber.Ctx) error {
	input := new(BlogCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Slug != "" {
		var count int64
		database.GetDB().Model(&model.BlogCategory{}).Where("slug = ?", input.Slug).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A category with this slug already exists",
			})
		}
	}

	category := model.BlogCategory{
		Slug:     input.Slug,
		NameTr:   input.NameTr,
		NameEn:   input.NameEn,
		Order:    input.Order,
		IsActive: input.IsActive,
	}

	if err := database.GetDB().Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func UpdateBlogCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	input := new(BlogCategoryInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var category model.BlogCategory
	if err := database.GetDB().First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	if input.Slug != "" && input.Slug != category.Slug {
		var count int64
		database.GetDB().Model(&model.BlogCategory{}).
			Where("slug = ? AND id != ?", input.Slug, category.ID).Count(&count)
		if count > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "A category with this slug already exists",
			})
		}
		category.Slug = input.Slug
	}

	category.NameTr = input.NameTr
	category.NameEn = input.NameEn
	category.Order = input.Order
	category.IsActive = input.IsActive

	if err := database.GetDB().Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update category",
		})
	}

	return c.JSON(category)
}

// DeleteBlogCategory kategoriyi siler, yazılar kategorisiz kalır (cascade yok)
func DeleteBlogCategory(c *fiber.Ctx) error {
	var category model.BlogCategory
	if err := database.GetDB().First(&category, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	tx := database.GetDB().Begin()

	if err := tx.Model(&model.BlogPost{}).Where("category_id = ?", category.ID).
		Update("category_id", nil).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not detach posts from category",
		})
	}

	if err := tx.Unscoped().Delete(&category).Error; err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete category",
		})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not complete category deletion",
		})
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}
