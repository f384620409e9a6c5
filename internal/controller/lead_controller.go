package controller

import (
	"log"
	"net/mail"

	"github.com/gofiber/fiber/v2"

	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
	"aktifyay_backend/pkg/email"
	"aktifyay_backend/pkg/utils/storage"
	"aktifyay_backend/pkg/utils/validation"
)

type QuoteInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	ProductSlug string `json:"product_slug"`
	Quantity    string `json:"quantity"`
	Message     string `json:"message"`
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// notifyAsync bildirimi arka planda gönderir. Kayıt zaten yazıldığı için
// mail hatası yanıtı ne geciktirir ne de düşürür, sadece loglanır.
func notifyAsync(send func() error) {
	go func() {
		if err := send(); err != nil {
			log.Printf("Could not send notification email: %v", err)
		}
	}()
}

func validateLead(name, emailAddr string) string {
	if name == "" {
		return "Name is required"
	}
	if emailAddr == "" {
		return "Email is required"
	}
	if _, err := mail.ParseAddress(emailAddr); err != nil {
		return "Invalid email format"
	}
	return ""
}

// CreateQuoteRequest teklif formu (public, JSON)
func CreateQuoteRequest(c *fiber.Ctx) error {
	input := new(QuoteInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Invalid input",
		})
	}

	if msg := validateLead(input.Name, input.Email); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": msg,
		})
	}

	quote := model.QuoteRequest{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		ProductSlug: input.ProductSlug,
		Quantity:    input.Quantity,
		Message:     input.Message,
	}

	if err := database.GetDB().Create(&quote).Error; err != nil {
		log.Printf("Error creating quote request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Could not save quote request",
		})
	}

	if email.GlobalEmailService != nil {
		settings := currentSettings()
		if settings.SalesEmail != "" {
			notifyAsync(func() error {
				return email.GlobalEmailService.SendQuoteNotification(settings.SalesEmail, email.QuoteNotificationData{
					Name:     quote.Name,
					Email:    quote.Email,
					Phone:    quote.Phone,
					Company:  quote.Company,
					Product:  quote.ProductSlug,
					Quantity: quote.Quantity,
					Message:  quote.Message,
				})
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// CreateContactMessage iletişim formu (public, JSON)
func CreateContactMessage(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Invalid input",
		})
	}

	if msg := validateLead(input.Name, input.Email); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": msg,
		})
	}

	contact := model.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := database.GetDB().Create(&contact).Error; err != nil {
		log.Printf("Error creating contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Could not save contact message",
		})
	}

	if email.GlobalEmailService != nil {
		settings := currentSettings()
		if settings.SalesEmail != "" {
			notifyAsync(func() error {
				return email.GlobalEmailService.SendContactNotification(settings.SalesEmail, email.ContactMessageData{
					Name:    contact.Name,
					Email:   contact.Email,
					Phone:   contact.Phone,
					Subject: contact.Subject,
					Message: contact.Message,
				})
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// CreateJobApplication iş başvurusu (public, multipart, opsiyonel CV).
// CV yüklemesi best-effort: storage hatası başvuruyu düşürmez.
func CreateJobApplication(c *fiber.Ctx) error {
	name := c.FormValue("name")
	emailAddr := c.FormValue("email")
	phone := c.FormValue("phone")
	position := c.FormValue("position")
	message := c.FormValue("message")

	if msg := validateLead(name, emailAddr); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": msg,
		})
	}
	if position == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "error": "Position is required",
		})
	}

	var cvURL *string
	if file, err := c.FormFile("cv"); err == nil && file != nil {
		if err := validation.ValidateDocument(file); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false, "error": err.Error(),
			})
		}
		url, err := storage.UploadFile(file, "cv")
		if err != nil {
			log.Printf("Could not upload CV file: %v", err)
		} else {
			cvURL = &url
		}
	}

	application := model.JobApplication{
		Name:     name,
		Email:    emailAddr,
		Phone:    phone,
		Position: position,
		Message:  message,
		CVURL:    cvURL,
	}

	if err := database.GetDB().Create(&application).Error; err != nil {
		log.Printf("Error creating job application: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "error": "Could not save application",
		})
	}

	if email.GlobalEmailService != nil {
		settings := currentSettings()
		if settings.SalesEmail != "" {
			cv := ""
			if application.CVURL != nil {
				cv = *application.CVURL
			}
			notifyAsync(func() error {
				return email.GlobalEmailService.SendJobApplicationNotification(settings.SalesEmail, email.JobApplicationData{
					Name:     application.Name,
					Email:    application.Email,
					Phone:    application.Phone,
					Position: application.Position,
					Message:  application.Message,
					CVURL:    cv,
				})
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// --- Admin ---

func AdminListQuoteRequests(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc")
	if unread := c.Query("unread"); unread == "true" {
		query = query.Where("is_read = ?", false)
	}

	var quotes []model.QuoteRequest
	if err := query.Find(&quotes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch quote requests"})
	}
	return c.JSON(quotes)
}

func MarkQuoteRequestRead(c *fiber.Ctx) error {
	var quote model.QuoteRequest
	if err := database.GetDB().First(&quote, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote request not found"})
	}
	if err := database.GetDB().Model(&quote).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not mark as read"})
	}
	return c.SendStatus(fiber.StatusOK)
}

func DeleteQuoteRequest(c *fiber.Ctx) error {
	var quote model.QuoteRequest
	if err := database.GetDB().First(&quote, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quote request not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&quote).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete quote request"})
	}
	return c.JSON(fiber.Map{"message": "Quote request deleted successfully"})
}

func AdminListJobApplications(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc")
	if unread := c.Query("unread"); unread == "true" {
		query = query.Where("is_read = ?", false)
	}

	var applications []model.JobApplication
	if err := query.Find(&applications).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch applications"})
	}
	return c.JSON(applications)
}

func MarkJobApplicationRead(c *fiber.Ctx) error {
	var application model.JobApplication
	if err := database.GetDB().First(&application, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if err := database.GetDB().Model(&application).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not mark as read"})
	}
	return c.SendStatus(fiber.StatusOK)
}

func DeleteJobApplication(c *fiber.Ctx) error {
	var application model.JobApplication
	if err := database.GetDB().First(&application, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete application"})
	}
	return c.JSON(fiber.Map{"message": "Application deleted successfully"})
}

func AdminListContactMessages(c *fiber.Ctx) error {
	query := database.GetDB().Order("created_at desc")
	if unread := c.Query("unread"); unread == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []model.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch contact messages"})
	}
	return c.JSON(messages)
}

func MarkContactMessageRead(c *fiber.Ctx) error {
	var message model.ContactMessage
	if err := database.GetDB().First(&message, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contact message not found"})
	}
	if err := database.GetDB().Model(&message).Update("is_read", true).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not mark as read"})
	}
	return c.SendStatus(fiber.StatusOK)
}

func DeleteContactMessage(c *fiber.Ctx) error {
	var message model.ContactMessage
	if err := database.GetDB().First(&message, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Contact message not found"})
	}
	if err := database.GetDB().Unscoped().Delete(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete contact message"})
	}
	return c.JSON(fiber.Map{"message": "Contact message deleted successfully"})
}
