package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())

	// Dashboard
	admin.GET("/dashboard", handlers.GetDashboard)

	// User management
	admin.GET("/users", handlers.ListUsers)
	admin.GET("/users/:id", handlers.GetUserDetail)
	admin.POST("/users/:id/promote", handlers.PromoteUser)
	admin.DELETE("/users/:id", handlers.AdminDeleteUser)

	// Recommended catalog management
	admin.POST("/recommended", handlers.CreateRecommendedCollection)
	admin.PATCH("/recommended/:id", handlers.UpdateRecommendedCollection)
	admin.DELETE("/recommended/:id", handlers.DeleteRecommendedCollection)
	admin.POST("/recommended/:id/items", handlers.AddRecommendedItem)
	admin.DELETE("/recommended/:id/items/:itemId", handlers.DeleteRecommendedItem)

	// Audit + settings
	admin.GET("/audit-logs", handlers.ListAuditLogs)
	admin.GET("/settings", handlers.GetSystemSettings)
	admin.PUT("/settings", handlers.UpdateSystemSetting)

	// Analytics
	admin.GET("/analytics/top-community", handlers.GetTopCommunityCollections)
	admin.GET("/analytics/categories", handlers.GetCategoryDistribution)
	admin.GET("/analytics/signups", handlers.GetSignupSeries)
}
