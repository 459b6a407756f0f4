package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"charades-game-service/handlers"
	"charades-game-service/middleware"
	"charades-game-service/models"
	"charades-game-service/services"
	"charades-game-service/utils"
	"charades-game-service/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		AppName: "charades-game-service",
	})

	// Optional gateway auth; open by default for local party play.
	app.Use(middleware.GatewayAuthMiddleware())

	// The mobile client runs on phones and webviews; keep CORS permissive
	// unless origins are pinned via env.
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "*"
	} else {
		parts := strings.Split(allowedOrigins, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		allowedOrigins = strings.Join(parts, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Movie{},
		&models.Game{},
		&models.Team{},
		&models.Player{},
		&models.UsedMovie{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// Seed the movie catalog on first boot.
	if err := services.EnsureCatalog(db); err != nil {
		log.Fatal("failed to seed movie catalog:", err)
	}

	catalogService := services.NewCatalogService(db)
	sessionService := services.NewSessionService(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional: export completed sessions to R2 before they get pruned.
	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		archiveClient := workers.NewArchiveClient(db)
		go workers.PollCompletedGames(ctx, archiveClient, 1*time.Minute)
		log.Println("✅ Session archive worker running (every 1m)")
	}

	sessionService.StartCleanupScheduler()

	handlers.SetupMovieRoutes(app, catalogService)
	handlers.SetupGameRoutes(app, sessionService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Session cleanup scheduler running")

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
