package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventix/internal/handler"
	"inventix/internal/middleware"
	"inventix/internal/model"
	"inventix/internal/repository"
	"inventix/internal/service"
	"inventix/internal/ws"
	"inventix/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Organization{},
		&model.OrgMember{},
		&model.OrgRequest{},
		&model.Category{},
		&model.Contact{},
		&model.Article{},
		&model.Movement{},
		&model.Invoice{},
		&model.Purchase{},
		&model.Settings{},
	)

	// 3. Seed the initial admin user if configured
	seedAdmin(db)

	// 4. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	orgRepo := repository.NewOrganizationRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	contactRepo := repository.NewContactRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	authService := service.NewAuthService(userRepo)
	orgService := service.NewOrgService(orgRepo, contactRepo, db)
	articleService := service.NewArticleService(articleRepo, movementRepo)
	saleService := service.NewSaleService(articleRepo, movementRepo, invoiceRepo, contactRepo, settingsRepo, db, wsHub)
	invoiceService := service.NewInvoiceService(articleRepo, movementRepo, invoiceRepo, contactRepo, settingsRepo, db, wsHub)
	dashboardService := service.NewDashboardService(movementRepo, purchaseRepo)

	authHandler := handler.NewAuthHandler(authService)
	orgHandler := handler.NewOrgHandler(orgService)
	articleHandler := handler.NewArticleHandler(articleService)
	contactHandler := handler.NewContactHandler(contactRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	purchaseHandler := handler.NewPurchaseHandler(purchaseRepo)
	movementHandler := handler.NewMovementHandler(movementRepo)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	posHandler := handler.NewPOSHandler(saleService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	settingsHandler := handler.NewSettingsHandler(settingsRepo)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	uploadHandler := handler.NewUploadHandler(uploadDir)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Inventix v1.0",
		BodyLimit: 4 << 20,
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Static("/uploads", uploadDir)

	// 7. Routes
	api := app.Group("/api/v1")

	// Public
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Authenticated, not yet org-scoped (tenant selection + administration)
	authed := api.Group("", middleware.RequireAuth(userRepo))
	authed.Post("/auth/change-password", authHandler.ChangePassword)
	authed.Get("/orgs", orgHandler.MyOrganizations)
	authed.Post("/orgs/requests", orgHandler.RequestOrganization)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.Get("/org-requests", orgHandler.ListRequests)
	admin.Post("/org-requests/:id/approve", orgHandler.ApproveRequest)
	admin.Post("/org-requests/:id/reject", orgHandler.RejectRequest)

	// Org-scoped: everything below reads and writes a single tenant
	org := authed.Group("", middleware.RequireOrg(orgRepo))

	org.Get("/articles", articleHandler.GetArticles)
	org.Get("/articles/:id", articleHandler.GetArticle)
	org.Post("/articles", articleHandler.CreateArticle)
	org.Put("/articles/:id", articleHandler.UpdateArticle)
	org.Delete("/articles/:id", articleHandler.DeleteArticle)

	org.Get("/contacts", contactHandler.GetContacts)
	org.Get("/contacts/:id", contactHandler.GetContact)
	org.Post("/contacts", contactHandler.CreateContact)
	org.Put("/contacts/:id", contactHandler.UpdateContact)
	org.Delete("/contacts/:id", contactHandler.DeleteContact)

	org.Get("/categories", categoryHandler.GetCategories)
	org.Post("/categories", categoryHandler.CreateCategory)
	org.Put("/categories/:id", categoryHandler.UpdateCategory)
	org.Delete("/categories/:id", categoryHandler.DeleteCategory)

	org.Get("/purchases", purchaseHandler.GetPurchases)
	org.Get("/purchases/:id", purchaseHandler.GetPurchase)
	org.Post("/purchases", purchaseHandler.CreatePurchase)
	org.Put("/purchases/:id", purchaseHandler.UpdatePurchase)
	org.Delete("/purchases/:id", purchaseHandler.DeletePurchase)

	org.Get("/movements", movementHandler.GetMovements)
	org.Get("/movements/:id", movementHandler.GetMovement)

	org.Get("/invoices", invoiceHandler.GetInvoices)
	org.Get("/invoices/:reference", invoiceHandler.OpenInvoice)
	org.Put("/invoices/:reference", invoiceHandler.CommitInvoice)
	org.Delete("/invoices/:reference", invoiceHandler.DeleteInvoice)

	org.Post("/pos/quote", posHandler.QuoteCart)
	org.Post("/pos/sale", posHandler.RecordSale)
	org.Post("/pos/counter-sale", posHandler.RecordCounterSale)
	org.Post("/pos/stock-entry", posHandler.RecordStockEntry)

	org.Get("/dashboard/summary", dashboardHandler.GetSummary)

	org.Post("/uploads", uploadHandler.UploadImage)

	org.Get("/settings", settingsHandler.GetSettings)
	org.Put("/settings", settingsHandler.UpsertSettings)

	// WebSocket route
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

	// 8. Graceful shutdown
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

// seedAdmin creates the allow-listed admin user from ADMIN_EMAIL /
// ADMIN_PASSWORD on first boot so tenant requests can be approved.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	userRepo := repository.NewUserRepo(db)
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
