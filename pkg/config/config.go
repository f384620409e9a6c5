package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	JWT     JWTConfig
	Email   EmailConfig
	Storage StorageConfig
	Site    SiteConfig
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret string
}

type EmailConfig struct {
	APIKey string
	From   string
}

type StorageConfig struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type SiteConfig struct {
	// Sitemap ve canonical URL üretiminde kullanılan kök adres
	BaseURL string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "aktifyay-dev-secret"),
		},
		Email: EmailConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("EMAIL_FROM", "Aktif Yay <noreply@aktifyay.com>"),
		},
		Storage: StorageConfig{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", "aktifyay-uploads"),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		Site: SiteConfig{
			BaseURL: getEnv("SITE_BASE_URL", "https://www.aktifyay.com"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
