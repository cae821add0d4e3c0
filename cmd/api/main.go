package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/eventify/eventify-backend/internal/config"
	"github.com/eventify/eventify-backend/internal/handler"
	"github.com/eventify/eventify-backend/internal/middleware"
	"github.com/eventify/eventify-backend/internal/models"
	"github.com/eventify/eventify-backend/internal/repository"
	"github.com/eventify/eventify-backend/internal/service"
	"github.com/eventify/eventify-backend/pkg/database"
	"github.com/eventify/eventify-backend/pkg/logger"
	"github.com/eventify/eventify-backend/pkg/storage"
	"github.com/eventify/eventify-backend/pkg/utils"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	eventRepo := repository.NewEventRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Upload storage
	var store storage.Storage
	switch cfg.StorageDriver {
	case "s3":
		store, err = storage.NewS3Storage(cfg)
	default:
		store, err = storage.NewLocalStorage(cfg.UploadDir)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// Services
	authService := service.NewAuthService(userRepo, adminRepo, zapLogger)
	userService := service.NewUserService(userRepo, store, zapLogger)
	eventService := service.NewEventService(eventRepo, ticketRepo, store, zapLogger)
	ticketService := service.NewTicketService(ticketRepo, eventRepo, zapLogger)
	bannerService := service.NewBannerService(bannerRepo, store, zapLogger)
	messageService := service.NewMessageService(messageRepo, cfg.TurnstileSecretKey, zapLogger)
	dashboardService := service.NewDashboardService(userRepo, ticketRepo, eventRepo, messageRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	eventHandler := handler.NewEventHandler(eventService, validator)
	ticketHandler := handler.NewTicketHandler(ticketService, validator)
	bannerHandler := handler.NewBannerHandler(bannerService, validator)
	messageHandler := handler.NewMessageHandler(messageService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Uploaded images
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	requireUser := middleware.RequireRole(models.RoleUser)
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin/login", authHandler.AdminLogin)

	events := api.Group("/events")
	events.Get("/", eventHandler.GetEvents)
	events.Get("/:id", eventHandler.GetEvent)
	events.Post("/", requireAdmin, eventHandler.CreateEvent)
	events.Put("/:id", requireAdmin, eventHandler.UpdateEvent)
	events.Delete("/:id", requireAdmin, eventHandler.DeleteEvent)

	tickets := api.Group("/tickets")
	tickets.Post("/book", requireUser, ticketHandler.BookTicket)
	tickets.Get("/my", requireUser, ticketHandler.GetMyTickets)
	tickets.Get("/", requireAdmin, ticketHandler.GetAllTickets)
	tickets.Patch("/:id", requireAdmin, ticketHandler.UpdateTicket)
	tickets.Delete("/:id", requireAdmin, ticketHandler.DeleteTicket)

	banners := api.Group("/banners")
	banners.Get("/", bannerHandler.GetBanners)
	banners.Post("/", requireAdmin, bannerHandler.CreateBanner)
	banners.Patch("/:id", requireAdmin, bannerHandler.UpdateBanner)
	banners.Delete("/:id", requireAdmin, bannerHandler.DeleteBanner)

	messages := api.Group("/messages")
	messages.Post("/", messageHandler.CreateMessage)
	messages.Get("/", requireAdmin, messageHandler.GetMessages)
	messages.Delete("/:id", requireAdmin, messageHandler.DeleteMessage)

	users := api.Group("/users")
	users.Get("/profile", requireUser, userHandler.GetProfile)
	users.Put("/profile-pic", requireUser, userHandler.UpdateProfilePic)
	users.Get("/", requireAdmin, userHandler.GetAllUsers)
	users.Delete("/:id", requireAdmin, userHandler.DeleteUser)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", requireAdmin, dashboardHandler.GetStats)

	log.Fatal(app.Listen(":" + cfg.Port))
}
