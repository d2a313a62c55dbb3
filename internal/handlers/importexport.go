package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/services"
	apperrors "github.com/colletro/colletro-backend/pkg/errors"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Import payloads are request bodies, not multipart uploads; cap at 10 MB
const maxImportSize = 10 << 20

// Redis-backed ceiling shared across server processes; the in-process
// limiter handles bursts
const importHourlyLimit = 30

// importThrottled enforces the cross-process import ceiling. The rejection
// goes through the error middleware so it renders as a 429.
func importThrottled(c *gin.Context, userID string) bool {
	allowed, err := database.CheckRateLimit("import:"+userID, importHourlyLimit, time.Hour)
	if err != nil {
		logger.Warn().Err(err).Msg("Import rate-limit check failed")
		return false
	}
	if !allowed {
		c.Error(apperrors.ErrRateLimit)
		c.Abort()
		return true
	}
	return false
}

func readImportBody(c *gin.Context) ([]byte, bool) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return nil, false
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty import payload"})
		return nil, false
	}
	if len(data) > maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Import payload too large"})
		return nil, false
	}
	return data, true
}

// ImportJSON handles POST /collections/import/json. Per-collection failures
// are reported in the errors list; the rest imports.
func ImportJSON(c *gin.Context) {
	userID, _ := c.Get("userId")
	if importThrottled(c, userID.(string)) {
		return
	}

	data, ok := readImportBody(c)
	if !ok {
		return
	}

	result := services.ImportJSON(userID.(string), data)

	newAchievements, _ := services.CheckAchievements(userID.(string))
	services.InvalidateLeaderboardCache()

	logger.Info().Str("user_id", userID.(string)).
		Int("created", result.Created).Int("failed", result.Failed).
		Msg("JSON import finished")

	c.JSON(http.StatusOK, gin.H{
		"created":         result.Created,
		"failed":          result.Failed,
		"errors":          result.Errors,
		"newAchievements": newAchievements,
	})
}

// ImportCSV handles POST /collections/import/csv
func ImportCSV(c *gin.Context) {
	userID, _ := c.Get("userId")
	if importThrottled(c, userID.(string)) {
		return
	}

	data, ok := readImportBody(c)
	if !ok {
		return
	}

	result := services.ImportCSV(userID.(string), data)

	newAchievements, _ := services.CheckAchievements(userID.(string))
	services.InvalidateLeaderboardCache()

	logger.Info().Str("user_id", userID.(string)).
		Int("created", result.Created).Int("failed", result.Failed).
		Msg("CSV import finished")

	c.JSON(http.StatusOK, gin.H{
		"created":         result.Created,
		"failed":          result.Failed,
		"errors":          result.Errors,
		"newAchievements": newAchievements,
	})
}

// ExportJSON handles GET /collections/export/json
func ExportJSON(c *gin.Context) {
	userID, _ := c.Get("userId")

	data, err := services.ExportJSON(userID.(string))
	if err != nil {
		logger.Error().Err(err).Msg("JSON export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := "colletro-export-" + time.Now().Format("2006-01-02") + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV handles GET /collections/export/csv
func ExportCSV(c *gin.Context) {
	userID, _ := c.Get("userId")

	data, err := services.ExportCSV(userID.(string))
	if err != nil {
		logger.Error().Err(err).Msg("CSV export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}

	filename := "colletro-export-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
