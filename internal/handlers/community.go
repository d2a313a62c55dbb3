package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const communityCacheTTL = 60 * time.Second

// ListCommunityCollections handles GET /community. The default page is served
// from Redis when available; filtered views always hit the database.
func ListCommunityCollections(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	tag := c.Query("tag")
	sort := c.DefaultQuery("sort", "top")

	cacheable := search == "" && category == "" && tag == "" && database.Redis != nil
	cacheKey := fmt.Sprintf("community:list:%s", sort)

	if cacheable {
		var cached []models.CommunityCollection
		if err := database.CacheGet(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, gin.H{"collections": cached, "cached": true})
			return
		}
	}

	query := database.DB.Model(&models.CommunityCollection{}).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "image", "badge")
		})

	if search != "" {
		like := utils.SanitizeSearchQuery(search)
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}

	if sort == "newest" {
		query = query.Order("created_at desc")
	} else {
		query = query.Order("upvotes desc, created_at desc")
	}

	var collections []models.CommunityCollection
	if err := query.Limit(100).Find(&collections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch community collections"})
		return
	}

	if cacheable {
		if err := database.CacheSet(cacheKey, collections, communityCacheTTL); err != nil {
			logger.Warn().Err(err).Msg("Failed to cache community list")
		}
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCommunityCollection handles GET /community/:id
func GetCommunityCollection(c *gin.Context) {
	var collection models.CommunityCollection
	err := database.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "image", "badge")
		}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("number asc, name asc")
		}).
		First(&collection, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community collection not found"})
		return
	}

	upvoted := false
	if userID, exists := c.Get("userId"); exists {
		var count int64
		database.DB.Model(&models.CommunityUpvote{}).
			Where("user_id = ? AND collection_id = ?", userID, collection.ID).
			Count(&count)
		upvoted = count > 0
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection, "upvoted": upvoted})
}

type PublishCollectionInput struct {
	CollectionID string `json:"collectionId" binding:"required"`
}

// PublishCollection handles POST /community. It copies one of the caller's
// collections into an independently-owned community copy.
func PublishCollection(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input PublishCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var source models.Collection
	if err := database.DB.Preload("Items").First(&source, "id = ? AND user_id = ?", input.CollectionID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}

	published := models.CommunityCollection{
		ID:          utils.GenerateID(),
		UserID:      userID.(string),
		Name:        source.Name,
		Description: source.Description,
		Category:    source.Category,
		Template:    source.Template,
		Tags:        pq.StringArray(jsonx.StringArray(source.Tags)),
		CoverImage:  source.CoverImage,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&published).Error; err != nil {
			return err
		}
		for _, item := range source.Items {
			copy := models.CommunityItem{
				ID:           utils.GenerateID(),
				CollectionID: published.ID,
				Name:         item.Name,
				Number:       item.Number,
				Image:        item.Image,
				Notes:        item.Notes,
			}
			if err := tx.Create(&copy).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to publish collection")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish collection"})
		return
	}

	invalidateCommunityCache()

	c.JSON(http.StatusCreated, gin.H{"collection": published})
}

// communityAuthorOrAdmin resolves a community collection the caller may edit.
// adminOverride reports that the caller is an admin acting on someone else's
// collection, which the caller must audit-log.
func communityAuthorOrAdmin(c *gin.Context) (collection *models.CommunityCollection, adminOverride, ok bool) {
	userID, _ := c.Get("userId")

	var found models.CommunityCollection
	if err := database.DB.First(&found, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community collection not found"})
		return nil, false, false
	}

	if found.UserID != userID.(string) {
		var user models.User
		if err := database.DB.Select("is_admin").First(&user, "id = ?", userID).Error; err != nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to modify this collection"})
			return nil, false, false
		}
		return &found, true, true
	}
	return &found, false, true
}

type UpdateCommunityInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	CoverImage  *string   `json:"coverImage"`
}

// UpdateCommunityCollection handles PATCH /community/:id
func UpdateCommunityCollection(c *gin.Context) {
	collection, adminOverride, ok := communityAuthorOrAdmin(c)
	if !ok {
		return
	}

	var input UpdateCommunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil && *input.Name != "" {
		collection.Name = *input.Name
	}
	if input.Description != nil {
		collection.Description = *input.Description
	}
	if input.Category != nil {
		collection.Category = normalizeInputCategory(*input.Category)
	}
	if input.Tags != nil {
		filtered := make([]string, 0, len(*input.Tags))
		for _, tag := range *input.Tags {
			if !catalog.IsCategoryLabel(tag) {
				filtered = append(filtered, tag)
			}
		}
		collection.Tags = pq.StringArray(filtered)
	}
	if input.CoverImage != nil {
		collection.CoverImage = *input.CoverImage
	}

	if err := database.DB.Save(collection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
		return
	}

	if adminOverride {
		logAdminAction(c, models.ActionEditCommunity, collection.ID, "")
	}

	invalidateCommunityCache()
	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// DeleteCommunityCollection handles DELETE /community/:id
func DeleteCommunityCollection(c *gin.Context) {
	collection, adminOverride, ok := communityAuthorOrAdmin(c)
	if !ok {
		return
	}

	database.DB.Where("collection_id = ?", collection.ID).Delete(&models.CommunityItem{})
	database.DB.Where("collection_id = ?", collection.ID).Delete(&models.CommunityUpvote{})
	database.DB.Delete(collection)

	if adminOverride {
		logAdminAction(c, models.ActionDeleteCommunity, collection.ID, "")
	}

	invalidateCommunityCache()
	c.JSON(http.StatusOK, gin.H{"message": "Community collection deleted"})
}

// UpvoteCollection handles POST /community/:id/upvote. One vote per user;
// repeats are a no-op.
func UpvoteCollection(c *gin.Context) {
	userID, _ := c.Get("userId")

	var collection models.CommunityCollection
	if err := database.DB.First(&collection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community collection not found"})
		return
	}

	var existing models.CommunityUpvote
	if err := database.DB.First(&existing, "user_id = ? AND collection_id = ?", userID, collection.ID).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"upvotes": collection.Upvotes, "upvoted": true})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		vote := models.CommunityUpvote{UserID: userID.(string), CollectionID: collection.ID}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&collection).UpdateColumn("upvotes", gorm.Expr("upvotes + 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upvote"})
		return
	}

	invalidateCommunityCache()
	c.JSON(http.StatusOK, gin.H{"upvotes": collection.Upvotes + 1, "upvoted": true})
}

// RemoveUpvote handles DELETE /community/:id/upvote
func RemoveUpvote(c *gin.Context) {
	userID, _ := c.Get("userId")

	var collection models.CommunityCollection
	if err := database.DB.First(&collection, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Community collection not found"})
		return
	}

	var vote models.CommunityUpvote
	if err := database.DB.First(&vote, "user_id = ? AND collection_id = ?", userID, collection.ID).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"upvotes": collection.Upvotes, "upvoted": false})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&collection).UpdateColumn("upvotes", gorm.Expr("upvotes - 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove upvote"})
		return
	}

	invalidateCommunityCache()
	c.JSON(http.StatusOK, gin.H{"upvotes": collection.Upvotes - 1, "upvoted": false})
}

func invalidateCommunityCache() {
	if database.Redis == nil {
		return
	}
	if err := database.CacheInvalidate("community:list:*"); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate community cache")
	}
}
