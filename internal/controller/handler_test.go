package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/database"
	"aktifyay_backend/pkg/utils/jwt"
)

// setupTest in-memory veritabanı ve route'ları kurulu bir uygulama döner
func setupTest(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.AdminUser{},
		&model.Settings{},
		&model.Product{},
		&model.Industry{},
		&model.Page{},
		&model.BlogCategory{},
		&model.BlogPost{},
		&model.Slider{},
		&model.Video{},
		&model.Catalog{},
		&model.Reference{},
		&model.QuoteRequest{},
		&model.JobApplication{},
		&model.ContactMessage{},
	))

	database.SetDB(db)

	app := fiber.New()

	api := app.Group("/api")

	api.Post("/auth/login", Login)

	api.Post("/quote", CreateQuoteRequest)
	api.Post("/contact", CreateContactMessage)
	api.Post("/apply", CreateJobApplication)

	admin := api.Group("/admin", middleware.AuthMiddleware())
	admin.Get("/products", AdminListProducts)
	admin.Post("/products", CreateProduct)
	admin.Get("/products/:id", AdminGetProduct)
	admin.Put("/products/:id", UpdateProduct)
	admin.Delete("/products/:id", DeleteProduct)
	admin.Post("/industries", CreateIndustry)
	admin.Put("/industries/:id", UpdateIndustry)
	admin.Post("/blog-posts", CreateBlogPost)
	admin.Put("/blog-posts/:id", UpdateBlogPost)
	admin.Post("/blog-categories", CreateBlogCategory)
	admin.Delete("/blog-categories/:id", DeleteBlogCategory)
	admin.Get("/quotes", AdminListQuoteRequests)
	admin.Put("/quotes/:id/read", MarkQuoteRequestRead)
	admin.Get("/settings", AdminGetSettings)
	admin.Put("/settings", UpdateSettings)

	public := api.Group("/:locale", middleware.LocaleMiddleware())
	public.Get("/", GetHome)
	for _, loc := range []locale.Locale{locale.TR, locale.EN} {
		productSeg := "/" + locale.Segment(locale.SectionProducts, loc)
		public.Get(productSeg, ListProducts)
		public.Get(productSeg+"/:slug", GetProductBySlug)

		industrySeg := "/" + locale.Segment(locale.SectionIndustries, loc)
		public.Get(industrySeg, ListIndustries)
		public.Get(industrySeg+"/:slug", GetIndustryBySlug)
	}
	public.Get("/blog", ListBlogPosts)
	public.Get("/blog/:slug", GetBlogPostBySlug)
	public.Get("/page/:slug", GetPageBySlug)

	return app
}

// seedAdmin test admini oluşturur ve token döner
func seedAdmin(t *testing.T) string {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := model.AdminUser{Email: "admin@test.com", Password: string(hashed)}
	require.NoError(t, database.GetDB().Create(&admin).Error)

	token, err := jwt.GenerateToken(admin.ID, admin.Email)
	require.NoError(t, err)
	return token
}

func jsonRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
