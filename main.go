package main

import (
	"KidSafe/config"
	"KidSafe/controllers"
	"KidSafe/repositories/impl"
	"KidSafe/routes"
	"KidSafe/services"
	"KidSafe/websocket"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Initialize database and Firebase
	config.InitDatabase()
	config.InitFirebase()

	// Initialize repositories
	parentRepo := impl.NewParentRepository(config.DB)
	childRepo := impl.NewChildRepository(config.DB)
	usageRepo := impl.NewUsageRepository(config.DB)
	alertRepo := impl.NewAlertRepository(config.DB)
	sessionRepo := impl.NewSessionRepository(config.DB)
	scheduleRepo := impl.NewScheduleRepository(config.DB)

	// Realtime hub for the dashboard feed
	hub := websocket.NewHub()

	// Initialize services
	alertService := services.NewAlertService(alertRepo, childRepo, parentRepo)
	alertService.Broadcaster = hub
	if notifier, err := services.NewNotificationService(config.FirebaseApp); err != nil {
		log.Printf("FCM disabled: %v", err)
	} else {
		alertService.Notifier = notifier
	}

	authService := services.NewAuthService(parentRepo, childRepo, sessionRepo, config.FirebaseAuth)
	childService := services.NewChildService(childRepo, parentRepo, sessionRepo, scheduleRepo, alertService)
	childService.Broadcaster = hub
	parentService := services.NewParentService(parentRepo, childRepo)
	usageService := services.NewUsageService(usageRepo, childRepo, parentRepo, alertService)
	usageService.Broadcaster = hub

	// Set services in controllers
	controllers.SetAuthService(authService)
	controllers.SetChildService(childService)
	controllers.SetParentService(parentService)
	controllers.SetUsageService(usageService)
	controllers.SetAlertService(alertService)
	controllers.SetWebSocketHub(hub)

	// Initialize Gin router
	r := gin.Default()

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
