package handlers

import (
	"net/http"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/internal/services"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CreateItemInput struct {
	Name              string                 `json:"name" binding:"required"`
	Number            *int                   `json:"number"`
	IsOwned           bool                   `json:"isOwned"`
	Image             string                 `json:"image"`
	AlternativeImages []string               `json:"alternativeImages"`
	Notes             string                 `json:"notes"`
	Wear              string                 `json:"wear"`
	PersonalRating    *int                   `json:"personalRating"`
	CustomFields      map[string]interface{} `json:"customFields"`
}

type UpdateItemInput struct {
	Name              *string                 `json:"name"`
	Number            *int                    `json:"number"`
	IsOwned           *bool                   `json:"isOwned"`
	Image             *string                 `json:"image"`
	AlternativeImages *[]string               `json:"alternativeImages"`
	Notes             *string                 `json:"notes"`
	Wear              *string                 `json:"wear"`
	PersonalRating    *int                    `json:"personalRating"`
	LogDate           *time.Time              `json:"logDate"`
	CustomFields      *map[string]interface{} `json:"customFields"`
}

func validRating(r *int) bool {
	return r == nil || (*r >= 0 && *r <= 10)
}

// CreateItem handles POST /collections/:id/items
func CreateItem(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRating(input.PersonalRating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 10"})
		return
	}

	item := models.Item{
		ID:                utils.GenerateID(),
		CollectionID:      collection.ID,
		Name:              input.Name,
		Number:            input.Number,
		IsOwned:           input.IsOwned,
		Image:             input.Image,
		AlternativeImages: jsonx.MarshalStringArray(input.AlternativeImages),
		Notes:             input.Notes,
		Wear:              input.Wear,
		CustomFields:      jsonx.MarshalObjectMap(input.CustomFields),
	}
	if input.PersonalRating != nil {
		item.PersonalRating = *input.PersonalRating
	}
	if input.IsOwned {
		now := time.Now()
		item.LogDate = &now
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	userID, _ := c.Get("userId")
	newAchievements, _ := services.CheckAchievements(userID.(string))
	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusCreated, gin.H{
		"item":            item,
		"newAchievements": newAchievements,
	})
}

// ownedItem resolves an item through its parent collection's ownership
func ownedItem(c *gin.Context) (*models.Item, bool) {
	collection, ok := ownedCollection(c)
	if !ok {
		return nil, false
	}

	var item models.Item
	if err := database.DB.First(&item, "id = ? AND collection_id = ?", c.Param("itemId"), collection.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return nil, false
	}
	return &item, true
}

// UpdateItem handles PATCH /collections/:id/items/:itemId
func UpdateItem(c *gin.Context) {
	item, ok := ownedItem(c)
	if !ok {
		return
	}

	var input UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRating(input.PersonalRating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 10"})
		return
	}

	if input.Name != nil && *input.Name != "" {
		item.Name = *input.Name
	}
	if input.Number != nil {
		item.Number = input.Number
	}
	if input.IsOwned != nil && *input.IsOwned != item.IsOwned {
		item.IsOwned = *input.IsOwned
		if item.IsOwned {
			// First time marked owned gets today's log date unless one is set
			if item.LogDate == nil {
				now := time.Now()
				item.LogDate = &now
			}
		} else {
			item.LogDate = nil
		}
	}
	if input.Image != nil {
		item.Image = *input.Image
	}
	if input.AlternativeImages != nil {
		item.AlternativeImages = jsonx.MarshalStringArray(*input.AlternativeImages)
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}
	if input.Wear != nil {
		item.Wear = *input.Wear
	}
	if input.PersonalRating != nil {
		item.PersonalRating = *input.PersonalRating
	}
	if input.LogDate != nil {
		item.LogDate = input.LogDate
	}
	if input.CustomFields != nil {
		item.CustomFields = jsonx.MarshalObjectMap(*input.CustomFields)
	}

	if err := database.DB.Save(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	userID, _ := c.Get("userId")
	newAchievements, _ := services.CheckAchievements(userID.(string))
	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"item":            item,
		"newAchievements": newAchievements,
	})
}

// DeleteItem handles DELETE /collections/:id/items/:itemId
func DeleteItem(c *gin.Context) {
	item, ok := ownedItem(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	services.InvalidateLeaderboardCache()
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}

// BulkToggleInput flips ownership for a batch of items in one collection
type BulkToggleInput struct {
	ItemIDs []string `json:"itemIds" binding:"required"`
	IsOwned bool     `json:"isOwned"`
}

// BulkToggleOwned handles POST /collections/:id/items/bulk-owned
func BulkToggleOwned(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	var input BulkToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.ItemIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items given"})
		return
	}

	updates := map[string]interface{}{"is_owned": input.IsOwned}
	if input.IsOwned {
		updates["log_date"] = time.Now()
	} else {
		updates["log_date"] = nil
	}

	result := database.DB.Model(&models.Item{}).
		Where("collection_id = ? AND id IN ?", collection.ID, input.ItemIDs).
		Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update items"})
		return
	}

	userID, _ := c.Get("userId")
	newAchievements, _ := services.CheckAchievements(userID.(string))
	services.InvalidateLeaderboardCache()

	c.JSON(http.StatusOK, gin.H{
		"updated":         result.RowsAffected,
		"newAchievements": newAchievements,
	})
}
