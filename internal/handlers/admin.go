package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// logAdminAction writes an audit row; failures are logged and never fail the
// admin request itself
func logAdminAction(c *gin.Context, action models.ActionType, targetID, reason string) {
	adminID, _ := c.Get("userId")

	targetType := "user"
	switch action {
	case models.ActionCreateRecommended, models.ActionUpdateRecommended, models.ActionDeleteRecommended:
		targetType = "recommended_collection"
	case models.ActionDeleteCommunity, models.ActionEditCommunity:
		targetType = "community_collection"
	case models.ActionUpdateSettings:
		targetType = "setting"
	}

	entry := models.AdminAuditLog{
		ID:         utils.GenerateID(),
		AdminID:    adminID.(string),
		Action:     action,
		TargetID:   targetID,
		TargetType: targetType,
		Reason:     reason,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Str("action", string(action)).Msg("Failed to write audit log")
	}
}

// GetDashboard handles GET /admin/dashboard
func GetDashboard(c *gin.Context) {
	var metrics models.DashboardMetrics

	database.DB.Model(&models.User{}).Count(&metrics.TotalUsers)
	database.DB.Model(&models.User{}).Where("is_verified = ?", true).Count(&metrics.VerifiedUsers)

	startOfDay := time.Now().Truncate(24 * time.Hour)
	database.DB.Model(&models.User{}).Where("created_at >= ?", startOfDay).Count(&metrics.NewUsersToday)

	database.DB.Model(&models.Collection{}).Count(&metrics.TotalCollections)
	database.DB.Model(&models.Item{}).Count(&metrics.TotalItems)
	database.DB.Model(&models.Item{}).Where("is_owned = ?", true).Count(&metrics.OwnedItems)
	database.DB.Model(&models.CommunityCollection{}).Count(&metrics.CommunityCollections)
	database.DB.Model(&models.CommunityUpvote{}).Count(&metrics.TotalUpvotes)
	database.DB.Model(&models.Wishlist{}).Count(&metrics.Wishlists)

	if metrics.TotalUsers > 0 {
		metrics.AvgItemsPerUser = float64(metrics.TotalItems) / float64(metrics.TotalUsers)
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// ListUsers handles GET /admin/users with search and pagination
func ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "25"))
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	query := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := utils.SanitizeSearchQuery(search)
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Order("created_at desc").
		Offset((page - 1) * perPage).Limit(perPage).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":   users,
		"total":   total,
		"page":    page,
		"perPage": perPage,
	})
}

// GetUserDetail handles GET /admin/users/:id
func GetUserDetail(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
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

	var communityCount int64
	database.DB.Model(&models.CommunityCollection{}).Where("user_id = ?", user.ID).Count(&communityCount)

	c.JSON(http.StatusOK, gin.H{
		"user":                 user,
		"communityCollections": communityCount,
	})
}

type PromoteUserInput struct {
	Reason string `json:"reason"`
}

// PromoteUser handles POST /admin/users/:id/promote
func PromoteUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.IsAdmin {
		c.JSON(http.StatusOK, gin.H{"message": "User is already an admin", "user": user})
		return
	}

	var input PromoteUserInput
	c.ShouldBindJSON(&input)

	user.IsAdmin = true
	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}

	logAdminAction(c, models.ActionPromoteUser, user.ID, input.Reason)
	logger.Info().Str("user_id", user.ID).Msg("User promoted to admin")

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type DeleteUserInput struct {
	Reason string `json:"reason"`
}

// AdminDeleteUser handles DELETE /admin/users/:id with the same cascade as
// self-service account deletion
func AdminDeleteUser(c *gin.Context) {
	adminID, _ := c.Get("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.ID == adminID.(string) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Use account deletion to remove your own account"})
		return
	}

	var input DeleteUserInput
	c.ShouldBindJSON(&input)

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
		logger.Error().Err(err).Str("user_id", user.ID).Msg("Admin user deletion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	logAdminAction(c, models.ActionDeleteUser, user.ID, input.Reason)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ListAuditLogs handles GET /admin/audit-logs
func ListAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := database.DB.Model(&models.AdminAuditLog{})
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var logs []models.AdminAuditLog
	if err := query.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// GetSystemSettings handles GET /admin/settings
func GetSystemSettings(c *gin.Context) {
	var settings []models.SystemSettings
	if err := database.DB.Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{"settings": out})
}

type UpdateSettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

var knownSettings = map[string]bool{
	models.SettingMaintenanceMode:  true,
	models.SettingMaintenanceETA:   true,
	models.SettingRegistrationOpen: true,
	models.SettingCommunityEnabled: true,
}

// UpdateSystemSetting handles PUT /admin/settings
func UpdateSystemSetting(c *gin.Context) {
	var input UpdateSettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !knownSettings[input.Key] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown setting key"})
		return
	}

	setting := models.SystemSettings{Key: input.Key, Value: input.Value}
	err := database.DB.Where("key = ?", input.Key).
		Assign(models.SystemSettings{Value: input.Value}).
		FirstOrCreate(&setting).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}

	logAdminAction(c, models.ActionUpdateSettings, input.Key, "")
	logger.Info().Str("key", input.Key).Str("value", input.Value).Msg("System setting updated")

	c.JSON(http.StatusOK, gin.H{"setting": gin.H{"key": input.Key, "value": input.Value}})
}
