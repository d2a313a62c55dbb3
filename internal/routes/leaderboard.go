package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterLeaderboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/leaderboard", handlers.GetLeaderboard)
}
