package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailService struct {
	apiKey    string
	from      string
	endpoint  string
	client    *http.Client
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type QuoteNotificationData struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Product  string
	Quantity string
	Message  string
}

type JobApplicationData struct {
	Name     string
	Email    string
	Phone    string
	Position string
	Message  string
	CVURL    string
}

type ContactMessageData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type LeadDigestData struct {
	Date         time.Time
	QuoteCount   int64
	JobCount     int64
	ContactCount int64
}

type PasswordResetData struct {
	ResetLink string
}

func NewEmailService(apiKey, from string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		endpoint:  resendEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
		templates: templates,
	}, nil
}

// SetEndpoint testlerde sahte API adresi bağlamak için
func (s *EmailService) SetEndpoint(endpoint string) {
	s.endpoint = endpoint
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

func (s *EmailService) SendQuoteNotification(to string, data QuoteNotificationData) error {
	return s.sendTemplateEmail(to, "Yeni Teklif Talebi 📋", "quote_notification.html", data)
}

func (s *EmailService) SendJobApplicationNotification(to string, data JobApplicationData) error {
	return s.sendTemplateEmail(to, "Yeni İş Başvurusu 📄", "job_application.html", data)
}

func (s *EmailService) SendContactNotification(to string, data ContactMessageData) error {
	return s.sendTemplateEmail(to, "Yeni İletişim Mesajı ✉️", "contact_message.html", data)
}

func (s *EmailService) SendLeadDigest(to string, data LeadDigestData) error {
	return s.sendTemplateEmail(to, "Günlük Form Özeti 📊", "lead_digest.html", data)
}

func (s *EmailService) SendPasswordResetEmail(to, resetLink string) error {
	return s.sendTemplateEmail(to, "Şifre Sıfırlama Talebi", "password_reset.html", PasswordResetData{ResetLink: resetLink})
}
