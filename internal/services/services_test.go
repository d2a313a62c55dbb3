package services

import (
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global connection at a fresh in-memory SQLite DB
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.DB = db

	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Collection{},
		&models.Item{},
		&models.RecommendedCollection{},
		&models.RecommendedItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.CommunityCollection{},
		&models.CommunityItem{},
		&models.CommunityUpvote{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	InvalidateLeaderboardCache()
}

func createTestUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := models.User{
		ID:           utils.GenerateID(),
		Name:         name,
		Email:        name + "@example.com",
		Achievements: "[]",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestCollection(t *testing.T, userID, name string) *models.Collection {
	t.Helper()
	collection := models.Collection{
		ID:         utils.GenerateID(),
		UserID:     userID,
		Name:       name,
		Tags:       "[]",
		ShareToken: utils.GenerateShareToken(),
	}
	if err := database.DB.Create(&collection).Error; err != nil {
		t.Fatalf("failed to create test collection: %v", err)
	}
	return &collection
}

func createTestItem(t *testing.T, collectionID, name string, owned bool) *models.Item {
	t.Helper()
	item := models.Item{
		ID:                utils.GenerateID(),
		CollectionID:      collectionID,
		Name:              name,
		IsOwned:           owned,
		AlternativeImages: "[]",
		CustomFields:      "{}",
	}
	if err := database.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to create test item: %v", err)
	}
	return &item
}
