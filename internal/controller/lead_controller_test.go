package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
	"aktifyay_backend/pkg/email"
)

func TestCreateQuoteRequest(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/quote", fiber.Map{
		"name": "Ahmet Yılmaz", "email": "ahmet@example.com",
		"phone": "05321234567", "product_slug": "basma-yaylar",
		"quantity": "10.000 adet", "message": "Fiyat teklifi rica ederim",
	}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["success"])

	var quote model.QuoteRequest
	require.NoError(t, database.GetDB().First(&quote).Error)
	assert.Equal(t, "Ahmet Yılmaz", quote.Name)
	assert.Equal(t, "basma-yaylar", quote.ProductSlug)
	assert.False(t, quote.IsRead)
}

func TestCreateQuoteRequestValidation(t *testing.T) {
	app := setupTest(t)

	// İsim zorunlu
	resp, err := app.Test(jsonRequest(t, "POST", "/api/quote", fiber.Map{
		"email": "ahmet@example.com",
	}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Geçersiz e-posta
	resp, err = app.Test(jsonRequest(t, "POST", "/api/quote", fiber.Map{
		"name": "Ahmet", "email": "gecersiz-adres",
	}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Hiç kayıt oluşmamalı
	var count int64
	database.GetDB().Model(&model.QuoteRequest{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateQuoteRequestSurvivesUnreachableEmail(t *testing.T) {
	app := setupTest(t)

	// Mail servisi ayakta ama endpoint erişilemez, kayıt yine de başarılı olmalı
	service, err := email.NewEmailService("test-key", "test@aktifyay.com")
	require.NoError(t, err)
	service.SetEndpoint("http://127.0.0.1:1")
	email.GlobalEmailService = service
	defer func() { email.GlobalEmailService = nil }()

	require.NoError(t, database.GetDB().Create(&model.Settings{
		Model:      gorm.Model{ID: model.SettingsID},
		SalesEmail: "satis@aktifyay.com",
	}).Error)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/quote", fiber.Map{
		"name": "Ahmet Yılmaz", "email": "ahmet@example.com",
	}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	database.GetDB().Model(&model.QuoteRequest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateContactMessage(t *testing.T) {
	app := setupTest(t)

	resp, err := app.Test(jsonRequest(t, "POST", "/api/contact", fiber.Map{
		"name": "Ayşe Demir", "email": "ayse@example.com",
		"subject": "Katalog talebi", "message": "Güncel kataloğunuzu alabilir miyim?",
	}, ""), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var message model.ContactMessage
	require.NoError(t, database.GetDB().First(&message).Error)
	assert.Equal(t, "Katalog talebi", message.Subject)
	assert.False(t, message.IsRead)
}

func TestCreateJobApplicationWithoutCV(t *testing.T) {
	app := setupTest(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Ahmet Yılmaz"))
	require.NoError(t, writer.WriteField("email", "ahmet@example.com"))
	require.NoError(t, writer.WriteField("position", "CNC Operatörü"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/apply", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// CV olmadan başvuru geçerli, cv_url null kalır
	var application model.JobApplication
	require.NoError(t, database.GetDB().First(&application).Error)
	assert.Equal(t, "CNC Operatörü", application.Position)
	assert.Nil(t, application.CVURL)
	assert.False(t, application.IsRead)
}

func TestCreateJobApplicationRequiresPosition(t *testing.T) {
	app := setupTest(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Ahmet Yılmaz"))
	require.NoError(t, writer.WriteField("email", "ahmet@example.com"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/apply", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminQuoteListAndMarkRead(t *testing.T) {
	app := setupTest(t)
	token := seedAdmin(t)

	require.NoError(t, database.GetDB().Create(&model.QuoteRequest{
		Name: "Okunmamış", Email: "a@example.com",
	}).Error)
	read := model.QuoteRequest{Name: "Okunmuş", Email: "b@example.com", IsRead: true}
	require.NoError(t, database.GetDB().Create(&read).Error)

	// unread filtresi sadece okunmamışları döner
	resp, err := app.Test(jsonRequest(t, "GET", "/api/admin/quotes?unread=true", nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quotes []model.QuoteRequest
	decodeBody(t, resp, &quotes)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Okunmamış", quotes[0].Name)

	resp, err = app.Test(jsonRequest(t, "PUT", "/api/admin/quotes/1/read", nil, token), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quote model.QuoteRequest
	require.NoError(t, database.GetDB().First(&quote, 1).Error)
	assert.True(t, quote.IsRead)
}
