package handlers

import (
	"net/http"
	"strconv"

	"github.com/colletro/colletro-backend/internal/services"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 50

// GetLeaderboard handles GET /leaderboard
func GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	entries, err := services.GetLeaderboard(limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to build leaderboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
