package handlers

import (
	"net/http"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/internal/services"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProfile handles GET /users/profile
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	database.DB.Model(&models.Collection{}).Where("user_id = ?", user.ID).Count(&user.Count.Collections)

	var collectionIDs []string
	database.DB.Model(&models.Collection{}).Where("user_id = ?", user.ID).Pluck("id", &collectionIDs)
	if len(collectionIDs) > 0 {
		database.DB.Model(&models.Item{}).Where("collection_id IN ?", collectionIDs).Count(&user.Count.Items)
		database.DB.Model(&models.Item{}).Where("collection_id IN ? AND is_owned = ?", collectionIDs, true).Count(&user.Count.OwnedItems)
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"achievements": jsonx.StringArray(user.Achievements),
	})
}

type UpdateProfileInput struct {
	Name                  *string `json:"name"`
	Image                 *string `json:"image"`
	AccentColor           *string `json:"accentColor"`
	EnableGoldenAccents   *bool   `json:"enableGoldenAccents"`
	SpotlightCollectionID *string `json:"spotlightCollectionId"`
	Badge                 *string `json:"badge"`
}

// UpdateProfile handles PUT /users/profile
func UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.AccentColor != nil && *input.AccentColor != "" {
		user.AccentColor = *input.AccentColor
	}
	if input.EnableGoldenAccents != nil {
		user.EnableGoldenAccents = *input.EnableGoldenAccents
	}

	if input.SpotlightCollectionID != nil {
		if *input.SpotlightCollectionID == "" {
			user.SpotlightCollectionID = nil
		} else {
			// Spotlight must point at one of the user's own collections
			var count int64
			database.DB.Model(&models.Collection{}).
				Where("id = ? AND user_id = ?", *input.SpotlightCollectionID, user.ID).
				Count(&count)
			if count == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Spotlight collection not found"})
				return
			}
			user.SpotlightCollectionID = input.SpotlightCollectionID
		}
	}

	if input.Badge != nil {
		badge, ok := catalog.BadgeByID(*input.Badge)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown badge"})
			return
		}
		if badge.AchievementID != "" && !services.HasUnlocked(&user, badge.AchievementID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Badge not unlocked yet"})
			return
		}
		user.Badge = badge.ID
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteAccount handles DELETE /users/profile. Owned collections, items and
// the wishlist go with it.
func DeleteAccount(c *gin.Context) {
	userID, _ := c.Get("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var collectionIDs []string
	database.DB.Model(&models.Collection{}).Where("user_id = ?", user.ID).Pluck("id", &collectionIDs)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if len(collectionIDs) > 0 {
			if err := tx.Where("collection_id IN ?", collectionIDs).Delete(&models.Item{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Collection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Folder{}).Error; err != nil {
			return err
		}

		var wishlist models.Wishlist
		if err := tx.Where("user_id = ?", user.ID).First(&wishlist).Error; err == nil {
			tx.Where("wishlist_id = ?", wishlist.ID).Delete(&models.WishlistItem{})
			tx.Delete(&wishlist)
		}

		tx.Where("user_id = ?", user.ID).Delete(&models.CommunityUpvote{})

		return tx.Unscoped().Delete(&user).Error
	})
	if err != nil {
		logger.Error().Err(err).Str("user_id", user.ID).Msg("Account deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	logger.Info().Str("user_id", user.ID).Msg("Account deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// GetStatistics handles GET /users/profile/statistics
func GetStatistics(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := services.ComputeUserStatistics(userID.(string))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute statistics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}

// GetAchievements handles GET /users/profile/achievements. Returns the full
// catalog annotated with unlock state plus any newly crossed thresholds.
func GetAchievements(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	newly, err := services.CheckAchievements(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check achievements"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	unlocked := jsonx.StringArray(user.Achievements)
	unlockedSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = true
	}

	type annotated struct {
		catalog.Achievement
		Unlocked bool `json:"unlocked"`
	}
	all := make([]annotated, 0, len(catalog.Achievements))
	for _, a := range catalog.Achievements {
		all = append(all, annotated{Achievement: a, Unlocked: unlockedSet[a.ID]})
	}

	c.JSON(http.StatusOK, gin.H{
		"achievements":  all,
		"newlyUnlocked": newly,
	})
}

// GetBadges handles GET /users/profile/badges
func GetBadges(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	type annotated struct {
		catalog.DisplayBadge
		Available bool `json:"available"`
	}
	badges := make([]annotated, 0, len(catalog.DisplayBadges))
	for _, b := range catalog.DisplayBadges {
		available := b.AchievementID == "" || services.HasUnlocked(&user, b.AchievementID)
		badges = append(badges, annotated{DisplayBadge: b, Available: available})
	}

	c.JSON(http.StatusOK, gin.H{"badges": badges, "equipped": user.Badge})
}
