package main

import (
	"backend_hatid/pkg/config"
	"backend_hatid/pkg/middleware"
	"backend_hatid/pkg/routes"
	"backend_hatid/pkg/services"
	"backend_hatid/pkg/store"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Seed the in-memory store. A restart resets all data.
	store.Init()

	// External clients
	services.InitLocations()
	services.InitAssistant()

	// Set Gin mode based on environment
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.ErrorMiddleware())

	// CORS middleware
	setupCORS(router)

	// Routes
	setupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	// Server startup in goroutine
	go func() {
		log.Printf("🚀 Server running in %s mode\n", config.AppConfig.Environment)
		log.Printf("📡 Server listening on http://localhost:%s\n", config.AppConfig.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// setupCORS configures CORS for the dashboard frontends
func setupCORS(router *gin.Engine) {
	isProduction := config.IsProduction()

	defaultOrigins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}

	var allowOrigins []string
	if isProduction && config.AppConfig.AllowedOrigins != "" {
		allowOrigins = parseOrigins(config.AppConfig.AllowedOrigins)
	} else {
		allowOrigins = defaultOrigins
	}

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if isProduction {
		corsConfig.AllowOrigins = allowOrigins
	} else {
		// In development, trust any origin
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}

	router.Use(cors.New(corsConfig))

	if isProduction {
		log.Printf("🔒 CORS enabled for origins: %v\n", allowOrigins)
	} else {
		log.Println("🔓 CORS enabled for all origins (development mode)")
	}
}

// parseOrigins splits comma-separated origin string
func parseOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setupRoutes sets up all application routes
func setupRoutes(router *gin.Engine) {
	// Root route
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HatidHub Dashboard Server is running...")
	})

	routes.RegisterAuthRoutes(router)
	routes.RegisterAdminRoutes(router)
	routes.RegisterPanelRoutes(router)

	// Health check route
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"environment": config.AppConfig.Environment,
			"store":       "seeded",
		})
	})

	router.NoRoute(middleware.NotFoundHandler())
}
