package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"challengecards/config"
	"challengecards/db"
	"challengecards/models"
	"challengecards/services"

	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "Admin user id (required)")
	password := flag.String("password", "", "Admin password (required)")
	name := flag.String("name", "", "Admin display name (required)")
	role := flag.String("role", models.RoleAdmin, "Role: 'admin' or 'editor'")
	configPath := flag.String("config", "config/config.yml", "Path to config file")
	flag.Parse()

	if *userID == "" || *password == "" || *name == "" {
		fmt.Println("Error: user, password, and name are required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *role != models.RoleAdmin && *role != models.RoleEditor {
		fmt.Println("Error: role must be 'admin' or 'editor'")
		os.Exit(1)
	}

	godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.MongoClient.Disconnect(context.Background())

	if err := db.EnsureIndexes(db.MongoDatabase); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	admins := services.NewAdminService(db.MongoDatabase, cfg.JWT.Secret, cfg.JWT.ExpiryMinutes)

	admin, err := admins.Create(context.Background(), services.CreateAdminInput{
		UserID:   *userID,
		Name:     *name,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println("Admin created successfully")
	fmt.Printf("  ID:     %s\n", admin.ID.Hex())
	fmt.Printf("  UserID: %s\n", admin.UserID)
	fmt.Printf("  Role:   %s\n", admin.Role)
}
