package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRecommendedRoutes(rg *gin.RouterGroup) {
	recommended := rg.Group("/recommended")

	recommended.GET("", handlers.ListRecommendedCollections)
	recommended.GET("/:id", handlers.GetRecommendedCollection)
	recommended.POST("/:id/clone", middleware.AuthMiddleware(), handlers.CloneRecommendedCollection)
}
