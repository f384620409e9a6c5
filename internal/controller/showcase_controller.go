package controller

import (
	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
)

// Vitrin içerikleri: slider, video, katalog, referans.
// Hepsi aynı kalıbı izler: public liste aktiflerle sınırlı, admin CRUD tam.

type SliderInput struct {
	TitleTr    string `json:"title_tr"`
	TitleEn    string `json:"title_en"`
	SubtitleTr string `json:"subtitle_tr"`
	SubtitleEn string `json:"subtitle_en"`
	Image      string `json:"image"`
	Link       string `json:"link"`
	IsActive   bool   `json:"is_active"`
	Order      int    `json:"order"`
}

type VideoInput struct {
	TitleTr  string `json:"title_tr"`
	TitleEn  string `json:"title_en"`
	VideoURL string `json:"video_url"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

type CatalogInput struct {
	TitleTr    string `json:"title_tr"`
	TitleEn    string `json:"title_en"`
	FileURL    string `json:"file_url"`
	CoverImage string `json:"cover_image"`
	IsActive   bool   `json:"is_active"`
	Order      int    `json:"order"`
}

type ReferenceInput struct {
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Website  string `json:"website"`
	IsActive bool   `json:"is_active"`
	Order    int    `json:"order"`
}

func ListSliders(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var sliders []model.Slider
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&sliders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sliders"})
	}

	items := make([]fiber.Map, 0, len(sliders))
	for _, s := range sliders {
		items = append(items, fiber.Map{
			"title":    s.Title(loc),
			"subtitle": s.Subtitle(loc),
			"image":    s.Image,
			"link":     s.Link,
		})
	}
	return c.JSON(fiber.Map{"sliders": items})
}

func ListVideos(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var videos []model.Video
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&videos).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch videos"})
	}

	items := make([]fiber.Map, 0, len(videos))
	for _, v := range videos {
		items = append(items, fiber.Map{
			"title":     v.Title(loc),
			"video_url": v.VideoURL,
		})
	}
	return c.JSON(fiber.Map{"videos": items})
}

func ListCatalogs(c *fiber.Ctx) error {
	loc := middleware.CurrentLocale(c)

	var catalogs []model.Catalog
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&catalogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch catalogs"})
	}

	items := make([]fiber.Map, 0, len(catalogs))
	for _, cat := range catalogs {
		items = append(items, fiber.Map{
			"title":       cat.Title(loc),
			"file_url":    cat.FileURL,
			"cover_image": cat.CoverImage,
		})
	}
	return c.JSON(fiber.Map{"catalogs": items})
}

func ListReferences(c *fiber.Ctx) error {
	var references []model.Reference
	if err := database.GetDB().Where("is_active = ?", true).
		Order("\"order\" asc, id asc").Find(&references).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch references"})
	}

	items := make([]fiber.Map, 0, len(references))
	for _, r := range references {
		items = append(items, fiber.Map{
			"name":    r.Name,
			"logo":    r.Logo,
			"website": r.Website,
		})
	}
	return c.JSON(fiber.Map{"references": items})
}

// --- Admin CRUD ---

func AdminListSliders(c *fiber.Ctx) error {
	var sliders []model.Slider
	database.GetDB().Order("\"order\" asc, id asc").Find(&sliders)
	return c.JSON(sliders)
}

func CreateSlider(c *fiber.Ctx) error {
	input := new(SliderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	slider := model.Slider{
		TitleTr: input.TitleTr, TitleEn: input.TitleEn,
		SubtitleTr: input.SubtitleTr, SubtitleEn: input.SubtitleEn,
		Image: input.Image, Link: input.Link,
		IsActive: input.IsActive, Order: input.Order,
	}
	if err := database.GetDB().Create(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create slider"})
	}
	return c.Status(fiber.StatusCreated).JSON(slider)
}

func UpdateSlider(c *fiber.Ctx) error {
	input := new(SliderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var slider model.Slider
	if err := database.GetDB().First(&slider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slider not found"})
	}

	slider.TitleTr = input.TitleTr
	slider.TitleEn = input.TitleEn
	slider.SubtitleTr = input.SubtitleTr
	slider.SubtitleEn = input.SubtitleEn
	slider.Image = input.Image
	slider.Link = input.Link
	slider.IsActive = input.IsActive
	slider.Order = input.Order

	if err := database.GetDB().Save(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update slider"})
	}
	return c.JSON(slider)
}

func DeleteSlider(c *fiber.Ctx) error {
	var slider model.Slider
	if err := database.GetDB().First(&slider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Slider not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete slider"})
	}
	return c.JSON(fiber.Map{"message": "Slider deleted successfully"})
}

func AdminListVideos(c *fiber.Ctx) error {
	var videos []model.Video
	database.GetDB().Order("\"order\" asc, id asc").Find(&videos)
	return c.JSON(videos)
}

func CreateVideo(c *fiber.Ctx) error {
	input := new(VideoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	video := model.Video{
		TitleTr: input.TitleTr, TitleEn: input.TitleEn,
		VideoURL: input.VideoURL, IsActive: input.IsActive, Order: input.Order,
	}
	if err := database.GetDB().Create(&video).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create video"})
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

func UpdateVideo(c *fiber.Ctx) error {
	input := new(VideoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var video model.Video
	if err := database.GetDB().First(&video, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Video not found"})
	}

	video.TitleTr = input.TitleTr
	video.TitleEn = input.TitleEn
	video.VideoURL = input.VideoURL
	video.IsActive = input.IsActive
	video.Order = input.Order

	if err := database.GetDB().Save(&video).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update video"})
	}
	return c.JSON(video)
}

func DeleteVideo(c *fiber.Ctx) error {
	var video model.Video
	if err := database.GetDB().First(&video, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Video not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&video).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete video"})
	}
	return c.JSON(fiber.Map{"message": "Video deleted successfully"})
}

func AdminListCatalogs(c *fiber.Ctx) error {
	var catalogs []model.Catalog
	database.GetDB().Order("\"order\" asc, id asc").Find(&catalogs)
	return c.JSON(catalogs)
}

func CreateCatalog(c *fiber.Ctx) error {
	input := new(CatalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	catalog := model.Catalog{
		TitleTr: input.TitleTr, TitleEn: input.TitleEn,
		FileURL: input.FileURL, CoverImage: input.CoverImage,
		IsActive: input.IsActive, Order: input.Order,
	}
	if err := database.GetDB().Create(&catalog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create catalog"})
	}
	return c.Status(fiber.StatusCreated).JSON(catalog)
}

func UpdateCatalog(c *fiber.Ctx) error {
	input := new(CatalogInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var catalog model.Catalog
	if err := database.GetDB().First(&catalog, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catalog not found"})
	}

	catalog.TitleTr = input.TitleTr
	catalog.TitleEn = input.TitleEn
	catalog.FileURL = input.FileURL
	catalog.CoverImage = input.CoverImage
	catalog.IsActive = input.IsActive
	catalog.Order = input.Order

	if err := database.GetDB().Save(&catalog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update catalog"})
	}
	return c.JSON(catalog)
}

func DeleteCatalog(c *fiber.Ctx) error {
	var catalog model.Catalog
	if err := database.GetDB().First(&catalog, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catalog not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&catalog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete catalog"})
	}
	return c.JSON(fiber.Map{"message": "Catalog deleted successfully"})
}

func AdminListReferences(c *fiber.Ctx) error {
	var references []model.Reference
	database.GetDB().Order("\"order\" asc, id asc").Find(&references)
	return c.JSON(references)
}

func CreateReference(c *fiber.Ctx) error {
	input := new(ReferenceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	reference := model.Reference{
		Name: input.Name, Logo: input.Logo, Website: input.Website,
		IsActive: input.IsActive, Order: input.Order,
	}
	if err := database.GetDB().Create(&reference).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create reference"})
	}
	return c.Status(fiber.StatusCreated).JSON(reference)
}

func UpdateReference(c *fiber.Ctx) error {
	input := new(ReferenceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	var reference model.Reference
	if err := database.GetDB().First(&reference, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reference not found"})
	}

	reference.Name = input.Name
	reference.Logo = input.Logo
	reference.Website = input.Website
	reference.IsActive = input.IsActive
	reference.Order = input.Order

	if err := database.GetDB().Save(&reference).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update reference"})
	}
	return c.JSON(reference)
}

func DeleteReference(c *fiber.Ctx) error {
	var reference model.Reference
	if err := database.GetDB().First(&reference, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reference not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&reference).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete reference"})
	}
	return c.JSON(fiber.Map{"message": "Reference deleted successfully"})
}
