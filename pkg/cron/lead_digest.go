package cron

import (
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
	"aktifyay_backend/pkg/email"
)

var (
	lastRunTime time.Time
	mutex       sync.Mutex
)

// InitLeadDigestCron her akşam okunmamış form özetini satış ekibine gönderir
func InitLeadDigestCron() {
	c := cron.New()

	// Her gün saat 18:00'da çalışacak
	_, err := c.AddFunc("0 18 * * *", func() {
		mutex.Lock()
		defer mutex.Unlock()

		if time.Since(lastRunTime) < 23*time.Hour {
			log.Printf("Lead digest already sent today, skipping...")
			return
		}

		sendLeadDigest()
		lastRunTime = time.Now()
	})

	if err != nil {
		log.Printf("Could not initialize lead digest cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Lead digest cron initialized successfully")
}

func sendLeadDigest() {
	db := database.GetDB()

	var settings model.Settings
	if err := db.First(&settings, model.SettingsID).Error; err != nil {
		log.Printf("Error fetching settings for lead digest: %v", err)
		return
	}
	if settings.SalesEmail == "" {
		log.Printf("No sales email configured, skipping lead digest")
		return
	}

	var quoteCount, jobCount, contactCount int64
	db.Model(&model.QuoteRequest{}).Where("is_read = ?", false).Count(&quoteCount)
	db.Model(&model.JobApplication{}).Where("is_read = ?", false).Count(&jobCount)
	db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&contactCount)

	if quoteCount+jobCount+contactCount == 0 {
		log.Printf("No unread leads, skipping digest")
		return
	}

	if email.GlobalEmailService == nil {
		return
	}

	err := email.GlobalEmailService.SendLeadDigest(settings.SalesEmail, email.LeadDigestData{
		Date:         time.Now(),
		QuoteCount:   quoteCount,
		JobCount:     jobCount,
		ContactCount: contactCount,
	})
	if err != nil {
		log.Printf("Error sending lead digest: %v", err)
	} else {
		log.Printf("Lead digest sent to %s", settings.SalesEmail)
	}
}
