package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"challengecards/config"
	"challengecards/controllers"
	"challengecards/db"
	"challengecards/middlewares"
	"challengecards/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := db.EnsureIndexes(db.MongoDatabase); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	if err := middlewares.InitCasbin(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to initialize RBAC: %v", err)
	}

	ctrl := controllers.New(db.MongoDatabase, cfg)

	// Seed the bootstrap admin account
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ctrl.AdminService().Seed(seedCtx, cfg.Seed.UserID, cfg.Seed.Password, cfg.Seed.Name); err != nil {
		log.Printf("Warning: failed to seed admin user: %v", err)
	}
	cancel()

	// Create uploads directories
	os.MkdirAll(filepath.Join(cfg.Uploads.Dir, "cards"), os.ModePerm)
	os.MkdirAll(filepath.Join(cfg.Uploads.Dir, "ads"), os.ModePerm)

	router := setupRouter(cfg, ctrl)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Challenge Cards API starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config, ctrl *controllers.Controllers) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.CORS.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Uploaded images are served directly from disk
	router.Static("/uploads", cfg.Uploads.Dir)

	routes.SetupPublicRoutes(router, ctrl)
	routes.SetupAdminRoutes(router, ctrl, cfg.JWT.Secret)

	return router
}
