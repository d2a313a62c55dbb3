package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB initializes an in-memory SQLite DB for testing
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
		&models.AdminAuditLog{},
		&models.SystemSettings{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
}

// testUserMiddleware injects the authenticated user id the way the auth
// middleware would
func testUserMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	}
}

func createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := models.User{
		ID:           utils.GenerateID(),
		Name:         name,
		Email:        name + "@example.com",
		Achievements: "[]",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func jsonRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
