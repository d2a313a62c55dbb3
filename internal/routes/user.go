package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware())

	users.GET("/profile", handlers.GetProfile)
	users.PUT("/profile", handlers.UpdateProfile)
	users.DELETE("/profile", handlers.DeleteAccount)

	users.GET("/profile/statistics", handlers.GetStatistics)
	users.GET("/profile/achievements", handlers.GetAchievements)
	users.GET("/profile/badges", handlers.GetBadges)
}
