package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"aktifyay_backend/internal/controller"
	"aktifyay_backend/internal/locale"
	"aktifyay_backend/internal/middleware"
	"aktifyay_backend/internal/model"
	"aktifyay_backend/pkg/config"
	"aktifyay_backend/pkg/cron"
	"aktifyay_backend/pkg/database"
	"aktifyay_backend/pkg/email"
	"aktifyay_backend/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	app.Get("/sitemap.xml", controller.GetSitemap)

	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)
	auth.Post("/request-reset", controller.RequestPasswordReset)
	auth.Post("/reset-password", controller.ResetPassword)

	// Lead intake (public)
	api.Post("/quote", controller.CreateQuoteRequest)
	api.Post("/contact", controller.CreateContactMessage)
	api.Post("/apply", controller.CreateJobApplication)

	// Admin Routes
	admin := api.Group("/admin", middleware.AuthMiddleware())
	admin.Get("/me", controller.GetMe)
	admin.Put("/password", controller.ChangePassword)

	admin.Get("/products", controller.AdminListProducts)
	admin.Post("/products", controller.CreateProduct)
	admin.Get("/products/:id", controller.AdminGetProduct)
	admin.Put("/products/:id", controller.UpdateProduct)
	admin.Delete("/products/:id", controller.DeleteProduct)

	admin.Get("/industries", controller.AdminListIndustries)
	admin.Post("/industries", controller.CreateIndustry)
	admin.Get("/industries/:id", controller.AdminGetIndustry)
	admin.Put("/industries/:id", controller.UpdateIndustry)
	admin.Delete("/industries/:id", controller.DeleteIndustry)

	admin.Get("/pages", controller.AdminListPages)
	admin.Post("/pages", controller.CreatePage)
	admin.Get("/pages/:id", controller.AdminGetPage)
	admin.Put("/pages/:id", controller.UpdatePage)
	admin.Delete("/pages/:id", controller.DeletePage)

	admin.Get("/blog-posts", controller.AdminListBlogPosts)
	admin.Post("/blog-posts", controller.CreateBlogPost)
	admin.Get("/blog-posts/:id", controller.AdminGetBlogPost)
	admin.Put("/blog-posts/:id", controller.UpdateBlogPost)
	admin.Delete("/blog-posts/:id", controller.DeleteBlogPost)

	admin.Get("/blog-categories", controller.AdminListBlogCategories)
	admin.Post("/blog-categories", controller.CreateBlogCategory)
	admin.Put("/blog-categories/:id", controller.UpdateBlogCategory)
	admin.Delete("/blog-categories/:id", controller.DeleteBlogCategory)

	admin.Get("/sliders", controller.AdminListSliders)
	admin.Post("/sliders", controller.CreateSlider)
	admin.Put("/sliders/:id", controller.UpdateSlider)
	admin.Delete("/sliders/:id", controller.DeleteSlider)

	admin.Get("/videos", controller.AdminListVideos)
	admin.Post("/videos", controller.CreateVideo)
	admin.Put("/videos/:id", controller.UpdateVideo)
	admin.Delete("/videos/:id", controller.DeleteVideo)

	admin.Get("/catalogs", controller.AdminListCatalogs)
	admin.Post("/catalogs", controller.CreateCatalog)
	admin.Put("/catalogs/:id", controller.UpdateCatalog)
	admin.Delete("/catalogs/:id", controller.DeleteCatalog)

	admin.Get("/references", controller.AdminListReferences)
	admin.Post("/references", controller.CreateReference)
	admin.Put("/references/:id", controller.UpdateReference)
	admin.Delete("/references/:id", controller.DeleteReference)

	admin.Get("/quotes", controller.AdminListQuoteRequests)
	admin.Put("/quotes/:id/read", controller.MarkQuoteRequestRead)
	admin.Delete("/quotes/:id", controller.DeleteQuoteRequest)

	admin.Get("/applications", controller.AdminListJobApplications)
	admin.Put("/applications/:id/read", controller.MarkJobApplicationRead)
	admin.Delete("/applications/:id", controller.DeleteJobApplication)

	admin.Get("/messages", controller.AdminListContactMessages)
	admin.Put("/messages/:id/read", controller.MarkContactMessageRead)
	admin.Delete("/messages/:id", controller.DeleteContactMessage)

	admin.Get("/settings", controller.AdminGetSettings)
	admin.Put("/settings", controller.UpdateSettings)

	admin.Post("/upload/image", controller.UploadImage)
	admin.Post("/upload/document", controller.UploadDocument)

	// Public Routes (dil önekiyle)
	public := api.Group("/:locale", middleware.LocaleMiddleware())
	public.Get("/", controller.GetHome)
	public.Get("/settings", controller.GetPublicSettings)
	public.Get("/sliders", controller.ListSliders)
	public.Get("/videos", controller.ListVideos)

	// Ürün ve sektör segmentleri dile göre değişir, iki biçim de kayıtlı
	for _, loc := range []locale.Locale{locale.TR, locale.EN} {
		productSeg := "/" + locale.Segment(locale.SectionProducts, loc)
		public.Get(productSeg, controller.ListProducts)
		public.Get(productSeg+"/:slug", controller.GetProductBySlug)

		industrySeg := "/" + locale.Segment(locale.SectionIndustries, loc)
		public.Get(industrySeg, controller.ListIndustries)
		public.Get(industrySeg+"/:slug", controller.GetIndustryBySlug)

		catalogSeg := "/" + locale.Segment(locale.SectionCatalogs, loc)
		public.Get(catalogSeg, controller.ListCatalogs)

		referenceSeg := "/" + locale.Segment(locale.SectionReferences, loc)
		public.Get(referenceSeg, controller.ListReferences)
	}

	public.Get("/blog", controller.ListBlogPosts)
	public.Get("/blog/categories", controller.ListBlogCategories)
	public.Get("/blog/:slug", controller.GetBlogPostBySlug)
	public.Get("/page/:slug", controller.GetPageBySlug)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.Email.APIKey != "" {
		if err := email.InitEmailService(cfg.Email.APIKey, cfg.Email.From); err != nil {
			log.Printf("Could not initialize email service: %v", err)
		}
	} else {
		log.Println("RESEND_API_KEY not set, email notifications disabled")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(dbURL)
	err := database.MigrateDatabase(
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
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAdminUser(database.GetDB())
	seed.SeedSettings(database.GetDB())
	if os.Getenv("SEED_CONTENT") == "true" {
		seed.SeedContent(database.GetDB())
	}

	cron.InitLeadDigestCron()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Unhandled error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
