package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"schemaflow/internal/config"
	"schemaflow/internal/database"
	"schemaflow/internal/handlers"
	"schemaflow/internal/middlewares"
	"schemaflow/internal/repositories"
	"schemaflow/internal/routes"
	"schemaflow/internal/services"
)

func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := database.Connect(cfg.ClickHouse)
	if err != nil {
		log.Fatalf("failed to connect to ClickHouse: %v", err)
	}

	// Dependency injection
	catalogRepo := repositories.NewCatalogRepository(conn)
	snapshotCache := repositories.NewSnapshotCache(catalogRepo, cfg.SnapshotTTL)
	schemaService := services.NewSchemaService(snapshotCache)
	renderService := services.NewRenderService(snapshotCache)
	statsService := services.NewStatsService(snapshotCache)
	schemaHandler := handlers.NewSchemaHandler(schemaService)
	renderHandler := handlers.NewRenderHandler(renderService, statsService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middlewares.RequestID)
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	routes.RegisterRoutes(router, schemaHandler, renderHandler)

	// Create and configure the HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
