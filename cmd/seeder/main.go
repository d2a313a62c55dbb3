package main

import (
	"log"

	"github.com/colletro/colletro-backend/internal/config"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/internal/seeds"
	"github.com/colletro/colletro-backend/pkg/logger"
)

func main() {
	config.LoadConfig()
	logger.Init("development")
	database.Connect()

	log.Println("Running migrations (just in case)...")
	database.DB.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Collection{},
		&models.Item{},
		&models.CommunityCollection{},
		&models.CommunityItem{},
		&models.CommunityUpvote{},
		&models.RecommendedCollection{},
		&models.RecommendedItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.AdminAuditLog{},
		&models.SystemSettings{},
	)

	if err := seeds.SeedRecommended(database.DB); err != nil {
		log.Fatalf("Failed to seed recommended collections: %v", err)
	}
	if err := seeds.SeedDemoUser(database.DB); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	log.Println("Seeding complete.")
}
