package services

import (
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/stretchr/testify/assert"
)

func TestCheckAchievements_FirstCollectionAndItem(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ach-first")

	collection := createTestCollection(t, user.ID, "Starter")
	createTestItem(t, collection.ID, "One", true)

	newly, err := CheckAchievements(user.ID)
	assert.NoError(t, err)

	ids := map[string]bool{}
	for _, a := range newly {
		ids[a.ID] = true
	}
	assert.True(t, ids["first_collection"])
	assert.True(t, ids["first_item"])
	assert.True(t, ids["first_owned"])
	assert.True(t, ids["first_complete"])

	var saved models.User
	database.DB.First(&saved, "id = ?", user.ID)
	unlocked := jsonx.StringArray(saved.Achievements)
	assert.Contains(t, unlocked, "first_collection")
	assert.Contains(t, unlocked, "first_item")
}

func TestCheckAchievements_Idempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ach-idem")

	collection := createTestCollection(t, user.ID, "Starter")
	createTestItem(t, collection.ID, "One", true)

	first, err := CheckAchievements(user.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, first)

	// No state change between calls: the delta must be empty
	second, err := CheckAchievements(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, second)
}

func TestCheckAchievements_DeltaOnNewThreshold(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ach-delta")

	for i := 0; i < 4; i++ {
		createTestCollection(t, user.ID, "Col")
	}
	newly, err := CheckAchievements(user.ID)
	assert.NoError(t, err)

	ids := map[string]bool{}
	for _, a := range newly {
		ids[a.ID] = true
	}
	assert.True(t, ids["first_collection"])
	assert.False(t, ids["five_collections"])

	// Crossing the next threshold reports only what is new
	createTestCollection(t, user.ID, "Fifth")
	newly, err = CheckAchievements(user.ID)
	assert.NoError(t, err)

	ids = map[string]bool{}
	for _, a := range newly {
		ids[a.ID] = true
	}
	assert.True(t, ids["five_collections"])
	assert.False(t, ids["first_collection"])
}

func TestCheckAchievements_MalformedStoredList(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "ach-malformed")
	database.DB.Model(user).Update("achievements", "corrupt{{")

	collection := createTestCollection(t, user.ID, "Starter")
	createTestItem(t, collection.ID, "One", false)

	// Malformed stored JSON degrades to "nothing unlocked yet"
	newly, err := CheckAchievements(user.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, newly)

	var saved models.User
	database.DB.First(&saved, "id = ?", user.ID)
	assert.NotEmpty(t, jsonx.StringArray(saved.Achievements))
}

func TestHasUnlocked(t *testing.T) {
	user := &models.User{Achievements: `["first_collection"]`}
	assert.True(t, HasUnlocked(user, "first_collection"))
	assert.False(t, HasUnlocked(user, "five_collections"))

	corrupt := &models.User{Achievements: "not json"}
	assert.False(t, HasUnlocked(corrupt, "first_collection"))
}
