package seed

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"aktifyay_backend/internal/model"
	"aktifyay_backend/internal/relation"
)

// SeedAdminUser ilk admin hesabını oluşturur
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@aktifyay.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "aktifyay123"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := model.AdminUser{
		Email:    email,
		Password: string(hashed),
		Name:     "Yönetici",
	}

	result := db.FirstOrCreate(&admin, model.AdminUser{Email: email})
	if result.Error != nil {
		log.Printf("Error creating admin user: %v", result.Error)
		return
	}

	log.Println("Admin user seeded successfully!")
}

// SeedSettings tekil ayar satırını sabit anahtarla oluşturur
func SeedSettings(db *gorm.DB) {
	settings := model.Settings{
		Model:        gorm.Model{ID: model.SettingsID},
		CompanyName:  "Aktif Yay",
		Phone:        "+90 212 000 00 00",
		Email:        "info@aktifyay.com",
		SalesEmail:   "satis@aktifyay.com",
		AddressTr:    "Organize Sanayi Bölgesi, İstanbul",
		AddressEn:    "Organized Industrial Zone, Istanbul",
		MetaSuffixTr: " | Aktif Yay - Endüstriyel Yay Üretimi",
		MetaSuffixEn: " | Aktif Yay - Industrial Spring Manufacturing",
	}

	result := db.FirstOrCreate(&settings, model.Settings{Model: gorm.Model{ID: model.SettingsID}})
	if result.Error != nil {
		log.Printf("Error creating settings: %v", result.Error)
		return
	}

	log.Println("Settings seeded successfully!")
}

// SeedContent örnek içerik: ürünler, sektörler ve aralarındaki ilişkiler
func SeedContent(db *gorm.DB) {
	now := time.Now()

	products := []model.Product{
		{
			Slug:              "basma-yaylar",
			NameTr:            "Basma Yaylar",
			NameEn:            "Compression Springs",
			SummaryTr:         "Her ölçüde basma yay üretimi",
			SummaryEn:         "Compression spring production in all sizes",
			SolutionsTr:       "Otomotiv süspansiyon\nEndüstriyel makine",
			SolutionsEn:       "Automotive suspension\nIndustrial machinery",
			RelatedIndustries: relation.EncodeSlugs([]string{"otomotiv"}),
			IsActive:          true,
			IsFeatured:        true,
			Order:             1,
		},
		{
			Slug:              "cekme-yaylar",
			NameTr:            "Çekme Yaylar",
			NameEn:            "Extension Springs",
			SummaryTr:         "Çift taraflı kancalı çekme yaylar",
			SummaryEn:         "Double-hook extension springs",
			RelatedIndustries: relation.EncodeSlugs([]string{}),
			IsActive:          true,
			Order:             2,
		},
	}

	for _, p := range products {
		result := db.FirstOrCreate(&p, model.Product{Slug: p.Slug})
		if result.Error != nil {
			log.Printf("Error creating product %s: %v", p.Slug, result.Error)
		}
	}

	industries := []model.Industry{
		{
			Slug:            "otomotiv",
			NameTr:          "Otomotiv",
			NameEn:          "Automotive",
			RelatedProducts: relation.EncodeSlugs([]string{}),
			IsActive:        true,
			Order:           1,
		},
		{
			Slug:            "beyaz-esya",
			NameTr:          "Beyaz Eşya",
			NameEn:          "Home Appliances",
			RelatedProducts: relation.EncodeSlugs([]string{"cekme-yaylar"}),
			IsActive:        true,
			Order:           2,
		},
	}

	for _, i := range industries {
		result := db.FirstOrCreate(&i, model.Industry{Slug: i.Slug})
		if result.Error != nil {
			log.Printf("Error creating industry %s: %v", i.Slug, result.Error)
		}
	}

	category := model.BlogCategory{
		Slug:     "sektor-haberleri",
		NameTr:   "Sektör Haberleri",
		NameEn:   "Industry News",
		IsActive: true,
	}
	db.FirstOrCreate(&category, model.BlogCategory{Slug: category.Slug})

	post := model.BlogPost{
		Slug:        "yay-uretiminde-kalite",
		TitleTr:     "Yay Üretiminde Kalite Standartları",
		TitleEn:     "Quality Standards in Spring Manufacturing",
		ContentTr:   "<p>Kaliteli yay üretimi malzeme seçimiyle başlar.</p>",
		ContentEn:   "<p>Quality spring production starts with material selection.</p>",
		CategoryID:  &category.ID,
		IsPublished: true,
		PublishedAt: &now,
	}
	db.FirstOrCreate(&post, model.BlogPost{Slug: post.Slug})

	log.Println("Content seeded successfully!")
}
