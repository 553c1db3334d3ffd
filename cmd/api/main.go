package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-gold-catalog/internal/handler"
	"go-gold-catalog/internal/middleware"
	"go-gold-catalog/internal/model"
	"go-gold-catalog/internal/repository"
	"go-gold-catalog/internal/service"
	"go-gold-catalog/internal/ws"
	"go-gold-catalog/pkg/database"
	"go-gold-catalog/pkg/storage"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Image storage
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	imageStore, err := storage.NewLocalStore(uploadDir, baseURL)
	if err != nil {
		log.Fatal("Failed to init image storage: ", err)
	}

	// 5. Setup WebSocket Hub (change notifications for the public site)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 6. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	priceRepo := repository.NewPriceRepo(db)
	productRepo := repository.NewProductRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	userRepo := repository.NewUserRepo(db)

	priceBookService := service.NewPriceBookService(categoryRepo, priceRepo, wsHub)
	catalogService := service.NewCatalogService(productRepo, wsHub)
	syncService := service.NewPriceSyncService(productRepo, priceRepo, wsHub)
	reviewService := service.NewReviewService(reviewRepo, wsHub)
	authService := service.NewAuthService(userRepo)
	dashService := service.NewDashboardService(productRepo, reviewRepo, priceRepo, categoryRepo)

	priceBookHandler := handler.NewPriceBookHandler(priceBookService)
	catalogHandler := handler.NewCatalogHandler(catalogService, syncService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	authHandler := handler.NewAuthHandler(authService)
	dashHandler := handler.NewDashboardHandler(dashService)
	uploadHandler := handler.NewUploadHandler(imageStore)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Gold Catalog API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Uploaded product images
	app.Static("/uploads", imageStore.Dir())

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Get("/categories", priceBookHandler.GetCategories)
	api.Get("/prices/:table", priceBookHandler.GetPrices)
	api.Get("/products", catalogHandler.GetPublicProducts)
	api.Get("/reviews", reviewHandler.GetApproved)
	api.Post("/reviews", reviewHandler.Submit)

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/session", authHandler.Session)
	auth.Post("/logout", middleware.RequireAuth(userRepo), authHandler.Logout)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(userRepo))

	admin.Get("/dashboard/stats", dashHandler.GetStats)

	admin.Post("/categories", priceBookHandler.CreateCategory)
	admin.Put("/categories/:id", priceBookHandler.RenameCategory)
	admin.Delete("/categories/:id", priceBookHandler.DeleteCategory)
	admin.Put("/categories/:id/prices/:table", priceBookHandler.ReplacePrices)

	admin.Get("/products", catalogHandler.GetProducts)
	admin.Post("/products", catalogHandler.CreateProduct)
	admin.Put("/products/:id", catalogHandler.UpdateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)

	admin.Get("/products/pricing", catalogHandler.GetPricingReport)
	admin.Post("/products/sync", catalogHandler.BulkSync)
	admin.Post("/products/:id/sync", catalogHandler.SyncProduct)

	admin.Get("/reviews", reviewHandler.GetModeration)
	admin.Put("/reviews/:id/approve", reviewHandler.Approve)
	admin.Delete("/reviews/:id", reviewHandler.Delete)

	admin.Post("/uploads", uploadHandler.UploadImage)

	// WebSocket Route: clients listen for change events and refetch
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default back-office account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		IsActive: true,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
