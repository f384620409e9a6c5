package email

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailServiceRequiresAPIKey(t *testing.T) {
	_, err := NewEmailService("", "noreply@aktifyay.com")
	assert.Error(t, err)
}

func TestSendQuoteNotification(t *testing.T) {
	var received EmailData
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service, err := NewEmailService("test-key", "noreply@aktifyay.com")
	require.NoError(t, err)
	service.SetEndpoint(server.URL)

	err = service.SendQuoteNotification("satis@aktifyay.com", QuoteNotificationData{
		Name:     "Ahmet Yılmaz",
		Email:    "ahmet@example.com",
		Product:  "basma-yaylar",
		Quantity: "10.000 adet",
		Message:  "Fiyat teklifi rica ederim",
	})
	require.NoError(t, err)

	assert.Equal(t, "noreply@aktifyay.com", received.From)
	assert.Equal(t, "satis@aktifyay.com", received.To)
	assert.Contains(t, received.Subject, "Teklif")
	assert.Contains(t, received.Html, "Ahmet Yılmaz")
	assert.Contains(t, received.Html, "basma-yaylar")
}

func TestSendReturnsErrorOnAPIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer server.Close()

	service, err := NewEmailService("test-key", "noreply@aktifyay.com")
	require.NoError(t, err)
	service.SetEndpoint(server.URL)

	err = service.SendContactNotification("bozuk", ContactMessageData{
		Name: "Ayşe", Email: "ayse@example.com",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid to address"))
}

func TestSendReturnsErrorWhenUnreachable(t *testing.T) {
	service, err := NewEmailService("test-key", "noreply@aktifyay.com")
	require.NoError(t, err)
	service.SetEndpoint("http://127.0.0.1:1")

	err = service.SendJobApplicationNotification("satis@aktifyay.com", JobApplicationData{
		Name: "Ahmet", Email: "ahmet@example.com", Position: "CNC Operatörü",
	})
	assert.Error(t, err)
}

func TestTemplatesRenderAllNotificationTypes(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service, err := NewEmailService("test-key", "noreply@aktifyay.com")
	require.NoError(t, err)
	service.SetEndpoint(server.URL)

	require.NoError(t, service.SendJobApplicationNotification("x@y.com", JobApplicationData{Name: "A", Email: "a@b.com"}))
	require.NoError(t, service.SendContactNotification("x@y.com", ContactMessageData{Name: "A", Email: "a@b.com"}))
	require.NoError(t, service.SendPasswordResetEmail("x@y.com", "https://admin.aktifyay.com/reset?token=abc"))
	assert.Equal(t, 3, calls)
}
