package middleware

import (
	"net/http"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Helper to get a system setting value
func getSystemSetting(key string) string {
	var setting models.SystemSettings
	if err := database.DB.Where("key = ?", key).Limit(1).Find(&setting).Error; err != nil {
		return ""
	}
	return setting.Value
}

// MaintenanceMode blocks all non-admin users when maintenance mode is enabled
func MaintenanceMode() gin.HandlerFunc {
	return func(c *gin.Context) {
		if getSystemSetting(models.SettingMaintenanceMode) != "true" {
			c.Next()
			return
		}

		// Always allow the profile check so the frontend can tell admins apart
		if c.Request.URL.Path == "/api/users/profile" {
			c.Next()
			return
		}

		userID, exists := c.Get("userId")
		if exists {
			var user models.User
			if err := database.DB.First(&user, "id = ?", userID.(string)).Error; err == nil && user.IsAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Maintenance in progress",
			"message": "Colletro is currently under maintenance. Please try again later.",
			"eta":     getSystemSetting(models.SettingMaintenanceETA),
		})
		c.Abort()
	}
}

// RequireRegistrationOpen blocks user registration when disabled
func RequireRegistrationOpen() gin.HandlerFunc {
	return func(c *gin.Context) {
		if getSystemSetting(models.SettingRegistrationOpen) == "false" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "User registration is currently closed",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireCommunityEnabled blocks community publishing when disabled
func RequireCommunityEnabled() gin.HandlerFunc {
	return func(c *gin.Context) {
		if getSystemSetting(models.SettingCommunityEnabled) == "false" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Community sharing is currently disabled",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
