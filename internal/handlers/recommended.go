package handlers

import (
	"net/http"
	"time"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRecommendedCollections handles GET /recommended
func ListRecommendedCollections(c *gin.Context) {
	query := database.DB.Model(&models.RecommendedCollection{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var collections []models.RecommendedCollection
	if err := query.Order("clone_count desc, name asc").Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recommended collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetRecommendedCollection handles GET /recommended/:id
func GetRecommendedCollection(c *gin.Context) {
	var collection models.RecommendedCollection
	err := database.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc, name asc")
	}).First(&collection, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// CloneRecommendedCollection handles POST /recommended/:id/clone. The clone is
// a personal collection that stays linked for later sync.
func CloneRecommendedCollection(c *gin.Context) {
	userID, _ := c.Get("userId")

	var source models.RecommendedCollection
	if err := database.DB.Preload("Items").First(&source, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection not found"})
		return
	}

	now := time.Now()
	clone := models.Collection{
		ID:                      utils.GenerateID(),
		UserID:                  userID.(string),
		Name:                    source.Name,
		Description:             source.Description,
		Category:                source.Category,
		Template:                source.Template,
		Tags:                    "[]",
		CoverImage:              source.CoverImage,
		ShareToken:              utils.GenerateShareToken(),
		RecommendedCollectionID: &source.ID,
		LastSyncedAt:            &now,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&clone).Error; err != nil {
			return err
		}
		for _, item := range source.Items {
			copy := models.Item{
				ID:           utils.GenerateID(),
				CollectionID: clone.ID,
				Name:         item.Name,
				Number:       item.Number,
				Image:        item.Image,
				Notes:        item.Notes,
			}
			if err := tx.Create(&copy).Error; err != nil {
				return err
			}
		}
		return tx.Model(&source).UpdateColumn("clone_count", gorm.Expr("clone_count + 1")).Error
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to clone recommended collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clone collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"collection": clone})
}

// -- Admin CRUD --

type RecommendedCollectionInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Template    string `json:"template"`
	CoverImage  string `json:"coverImage"`
}

type RecommendedItemInput struct {
	Name   string `json:"name" binding:"required"`
	Number *int   `json:"number"`
	Image  string `json:"image"`
	Notes  string `json:"notes"`
}

// CreateRecommendedCollection handles POST /admin/recommended
func CreateRecommendedCollection(c *gin.Context) {
	var input RecommendedCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template := input.Template
	if template == "" {
		template = "other"
	}
	if !catalog.IsValidTemplate(template) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
		return
	}

	collection := models.RecommendedCollection{
		ID:          utils.GenerateID(),
		Name:        input.Name,
		Description: input.Description,
		Category:    normalizeInputCategory(input.Category),
		Template:    template,
		CoverImage:  input.CoverImage,
	}
	if err := database.DB.Create(&collection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recommended collection"})
		return
	}

	logAdminAction(c, models.ActionCreateRecommended, collection.ID, "")
	c.JSON(http.StatusCreated, gin.H{"collection": collection})
}

// UpdateRecommendedCollection handles PATCH /admin/recommended/:id
func UpdateRecommendedCollection(c *gin.Context) {
	var collection models.RecommendedCollection
	if err := database.DB.First(&collection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection not found"})
		return
	}

	var input RecommendedCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection.Name = input.Name
	collection.Description = input.Description
	collection.Category = normalizeInputCategory(input.Category)
	if input.Template != "" {
		if !catalog.IsValidTemplate(input.Template) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
			return
		}
		collection.Template = input.Template
	}
	collection.CoverImage = input.CoverImage

	if err := database.DB.Save(&collection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recommended collection"})
		return
	}

	logAdminAction(c, models.ActionUpdateRecommended, collection.ID, "")
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// DeleteRecommendedCollection handles DELETE /admin/recommended/:id. Linked
// personal clones are unlinked, not deleted.
func DeleteRecommendedCollection(c *gin.Context) {
	var collection models.RecommendedCollection
	if err := database.DB.First(&collection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection not found"})
		return
	}

	database.DB.Model(&models.Collection{}).
		Where("recommended_collection_id = ?", collection.ID).
		Updates(map[string]interface{}{"recommended_collection_id": nil, "last_synced_at": nil})
	database.DB.Where("collection_id = ?", collection.ID).Delete(&models.RecommendedItem{})
	database.DB.Delete(&collection)

	logAdminAction(c, models.ActionDeleteRecommended, collection.ID, "")
	c.JSON(http.StatusOK, gin.H{"message": "Recommended collection deleted"})
}

// AddRecommendedItem handles POST /admin/recommended/:id/items
func AddRecommendedItem(c *gin.Context) {
	var collection models.RecommendedCollection
	if err := database.DB.First(&collection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection not found"})
		return
	}

	var input RecommendedItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.RecommendedItem{
		ID:           utils.GenerateID(),
		CollectionID: collection.ID,
		Name:         input.Name,
		Number:       input.Number,
		Image:        input.Image,
		Notes:        input.Notes,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// DeleteRecommendedItem handles DELETE /admin/recommended/:id/items/:itemId
func DeleteRecommendedItem(c *gin.Context) {
	result := database.DB.Where("id = ? AND collection_id = ?", c.Param("itemId"), c.Param("id")).
		Delete(&models.RecommendedItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
