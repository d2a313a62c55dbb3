package services

import (
	"testing"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestGetLeaderboard_RanksByOwnedItems(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")

	colA := createTestCollection(t, alice.ID, "A")
	createTestItem(t, colA.ID, "1", true)
	createTestItem(t, colA.ID, "2", true)
	createTestItem(t, colA.ID, "3", false)

	colB := createTestCollection(t, bob.ID, "B")
	createTestItem(t, colB.ID, "1", true)
	createTestItem(t, colB.ID, "2", true)
	createTestItem(t, colB.ID, "3", true)

	colC := createTestCollection(t, carol.ID, "C")
	createTestItem(t, colC.ID, "1", false)

	entries, err := GetLeaderboard(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	assert.Equal(t, bob.ID, entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, int64(3), entries[0].OwnedItems)

	assert.Equal(t, alice.ID, entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)

	assert.Equal(t, carol.ID, entries[2].UserID)
	assert.Equal(t, int64(0), entries[2].OwnedItems)
}

func TestGetLeaderboard_TieBreaksByAccountAge(t *testing.T) {
	setupTestDB(t)

	older := createTestUser(t, "older")
	newer := createTestUser(t, "newer")

	// Same owned count; the older account ranks first
	database.DB.Model(older).Update("created_at", time.Now().Add(-48*time.Hour))

	colOld := createTestCollection(t, older.ID, "Old")
	createTestItem(t, colOld.ID, "1", true)
	colNew := createTestCollection(t, newer.ID, "New")
	createTestItem(t, colNew.ID, "1", true)

	entries, err := GetLeaderboard(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, older.ID, entries[0].UserID)
	assert.Equal(t, newer.ID, entries[1].UserID)
}

func TestGetLeaderboard_CachesWithinTTL(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "cached")
	col := createTestCollection(t, user.ID, "C")
	createTestItem(t, col.ID, "1", true)

	first, err := GetLeaderboard(10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first[0].OwnedItems)

	// A write inside the TTL window is not reflected until invalidation
	createTestItem(t, col.ID, "2", true)
	cached, err := GetLeaderboard(10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cached[0].OwnedItems)

	InvalidateLeaderboardCache()
	fresh, err := GetLeaderboard(10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), fresh[0].OwnedItems)
}

func TestGetLeaderboard_Limit(t *testing.T) {
	setupTestDB(t)

	for i := 0; i < 5; i++ {
		createTestUser(t, "limituser"+string(rune('a'+i)))
	}

	entries, err := GetLeaderboard(3)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)
}
