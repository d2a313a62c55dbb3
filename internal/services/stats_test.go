package services

import (
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(0, 0))
	assert.Equal(t, 0, CompletionPercent(0, 10))
	assert.Equal(t, 100, CompletionPercent(10, 10))
	assert.Equal(t, 50, CompletionPercent(1, 2))
	assert.Equal(t, 33, CompletionPercent(1, 3))
	assert.Equal(t, 67, CompletionPercent(2, 3))
	// Rounds, never truncates
	assert.Equal(t, 17, CompletionPercent(1, 6))
	assert.Equal(t, 1, CompletionPercent(1, 200))
	// 100 and 0 are reserved for the true boundaries
	assert.Equal(t, 99, CompletionPercent(199, 200))
	assert.Equal(t, 99, CompletionPercent(999, 1000))
	assert.Equal(t, 1, CompletionPercent(1, 1000))
}

func TestAttachCompletion(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "attach")
	collection := createTestCollection(t, user.ID, "Records")

	createTestItem(t, collection.ID, "A", true)
	createTestItem(t, collection.ID, "B", true)
	createTestItem(t, collection.ID, "C", false)

	AttachCompletion(collection)
	assert.Equal(t, int64(3), collection.TotalItems)
	assert.Equal(t, int64(2), collection.OwnedItems)
	assert.Equal(t, 67, collection.CompletionPercent)
}

func TestComputeUserStatistics(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "stats")

	comics := "Comics"
	colA := createTestCollection(t, user.ID, "Key Issues")
	database.DB.Model(colA).Updates(map[string]interface{}{
		"category": comics,
		"tags":     `["silver-age","graded"]`,
	})
	colB := createTestCollection(t, user.ID, "Complete Run")
	database.DB.Model(colB).Update("category", comics)

	createTestItem(t, colA.ID, "Issue 1", true)
	createTestItem(t, colA.ID, "Issue 2", false)
	itemOwned := createTestItem(t, colB.ID, "Issue 3", true)
	database.DB.Model(itemOwned).Updates(map[string]interface{}{
		"wear":            "mint",
		"personal_rating": 8,
	})

	stats, err := ComputeUserStatistics(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.Collections)
	assert.Equal(t, int64(3), stats.Items)
	assert.Equal(t, int64(2), stats.OwnedItems)
	assert.Equal(t, int64(1), stats.CompletedCollections)
	assert.Equal(t, int64(2), stats.CategoryDistribution["Comics"])
	assert.Equal(t, int64(1), stats.TagDistribution["silver-age"])
	assert.NotEmpty(t, stats.TagColors["silver-age"].Background)
	assert.Equal(t, int64(1), stats.WearDistribution["mint"])
	assert.Equal(t, 8.0, stats.AverageRating)
}

func TestComputeUserStatistics_MalformedTagsDegrade(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "malformed")

	col := createTestCollection(t, user.ID, "Broken Tags")
	database.DB.Model(col).Update("tags", "{not valid json")

	stats, err := ComputeUserStatistics(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, stats.TagDistribution)
	assert.Equal(t, int64(1), stats.Collections)
}

func TestComputeUserStatistics_EmptyUser(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "empty")

	stats, err := ComputeUserStatistics(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.Collections)
	assert.Equal(t, int64(0), stats.Items)
	assert.Equal(t, 0.0, stats.AverageRating)
}
