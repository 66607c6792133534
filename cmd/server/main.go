package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/api/handlers"
	"github.com/inventory-project/inventory-server/internal/api/middleware"
	"github.com/inventory-project/inventory-server/internal/config"
	"github.com/inventory-project/inventory-server/internal/database"
	"github.com/inventory-project/inventory-server/internal/database/queries"
	"github.com/inventory-project/inventory-server/internal/services"
)

func main() {
	// Parse command line flags
	var migrate bool
	var version bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations only")
	flag.BoolVar(&version, "version", false, "Show version information")
	flag.Parse()

	if version {
		fmt.Printf("Inventory Server v0.1.0\n")
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := filepath.Join("internal", "database", "migrations")
	if err := db.Migrate(migrationsPath); err != nil {
		logrus.WithError(err).Fatal("Migration failed")
	}
	if migrate {
		logrus.Info("Database migrations completed")
		return
	}

	// Initialize queries
	userQueries := queries.NewUserQueries(db.DB)
	itemQueries := queries.NewItemQueries(db.DB)

	// Initialize services
	reminderService := services.NewReminderService(itemQueries)

	// Initialize handlers
	tokenExpiry := time.Duration(cfg.TokenExpiryHours) * time.Hour
	authHandler := handlers.NewAuthHandler(userQueries, cfg.JWTSecret, tokenExpiry)
	itemHandler := handlers.NewItemHandler(itemQueries)
	notificationHandler := handlers.NewNotificationHandler(reminderService)

	// Setup router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Public auth routes
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/signin", authHandler.Signin)

		// Protected item routes
		items := api.Group("/items")
		items.Use(middleware.AuthMiddleware(cfg.JWTSecret, userQueries))
		{
			items.POST("/create", itemHandler.CreateItem)
			items.GET("/get_all", itemHandler.ListItems)
			items.GET("/get/:id", itemHandler.GetItem)
			items.PUT("/update/:id", itemHandler.UpdateItem)
			items.DELETE("/delete/:id", itemHandler.DeleteItem)
		}

		// Protected notification routes
		notifications := api.Group("/notifications")
		notifications.Use(middleware.AuthMiddleware(cfg.JWTSecret, userQueries))
		{
			notifications.GET("/get_reminders", notificationHandler.GetReminders)
		}
	}

	logrus.WithField("port", cfg.ServerPort).Info("Starting server")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
