package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetTopCommunityCollections handles GET /admin/analytics/top-community
func GetTopCommunityCollections(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var collections []models.CommunityCollection
	err := database.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "image")
		}).
		Order("upvotes desc, created_at asc").
		Limit(limit).
		Find(&collections).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCategoryDistribution handles GET /admin/analytics/categories. Counts
// personal collections per category across all users.
func GetCategoryDistribution(c *gin.Context) {
	type bucket struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}

	var rows []bucket
	err := database.DB.Model(&models.Collection{}).
		Select("COALESCE(category, 'Uncategorized') as category, COUNT(*) as count").
		Group("category").
		Order("count desc").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category distribution"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": rows})
}

// GetSignupSeries handles GET /admin/analytics/signups. Returns a daily
// signup count series covering the requested trailing window.
func GetSignupSeries(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)

	var users []models.User
	if err := database.DB.Select("created_at").Where("created_at >= ?", since).Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute signup series"})
		return
	}

	// Bucket in Go so the series works the same on every SQL dialect
	counts := make(map[string]int, days)
	for _, u := range users {
		counts[u.CreatedAt.Format("2006-01-02")]++
	}

	type point struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}
	series := make([]point, 0, days)
	for d := 0; d < days; d++ {
		day := since.AddDate(0, 0, d).Format("2006-01-02")
		series = append(series, point{Date: day, Count: counts[day]})
	}

	c.JSON(http.StatusOK, gin.H{"signups": series})
}
