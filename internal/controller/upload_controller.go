package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/pkg/utils/image"
	"aktifyay_backend/pkg/utils/storage"
	"aktifyay_backend/pkg/utils/validation"
)

// UploadImage admin panelden görsel yükler: doğrula, yeniden encode et, depola
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	buf, contentType, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not process image",
		})
	}

	url, err := storage.UploadBuffer(buf, "media", file.Filename, contentType)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}

// UploadDocument PDF katalog vb. dosyalar için
func UploadDocument(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	if err := validation.ValidateDocument(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadFile(file, "documents")
	if err != nil {
		log.Printf("Error uploading document: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload document",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
