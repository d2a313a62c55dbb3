package services

import (
	"sort"
	"sync"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
)

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Badge       string `json:"badge"`
	OwnedItems  int64  `json:"ownedItems"`
	Collections int64  `json:"collections"`
}

// In-memory cache, invalidated purely by expiry. A write can leave a stale
// leaderboard visible for up to the TTL window.
type cachedLeaderboard struct {
	Entries   []LeaderboardEntry
	ExpiresAt time.Time
}

var (
	lbCache *cachedLeaderboard
	lbMutex sync.RWMutex
	lbTTL   = 15 * time.Second
)

// GetLeaderboard ranks users by total owned items across all their
// collections, descending. Ties break by account age (older first), then id.
func GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	lbMutex.RLock()
	if lbCache != nil && time.Now().Before(lbCache.ExpiresAt) {
		entries := lbCache.Entries
		lbMutex.RUnlock()
		return capEntries(entries, limit), nil
	}
	lbMutex.RUnlock()

	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		return nil, err
	}

	type ownedRow struct {
		UserID string
		Owned  int64
		Total  int64
	}
	var rows []ownedRow
	if err := database.DB.Model(&models.Item{}).
		Select("collections.user_id as user_id, SUM(CASE WHEN items.is_owned THEN 1 ELSE 0 END) as owned, COUNT(*) as total").
		Joins("JOIN collections ON collections.id = items.collection_id").
		Where("collections.deleted_at IS NULL").
		Group("collections.user_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	ownedByUser := make(map[string]int64, len(rows))
	for _, r := range rows {
		ownedByUser[r.UserID] = r.Owned
	}

	collectionCounts := map[string]int64{}
	type colRow struct {
		UserID string
		N      int64
	}
	var colRows []colRow
	database.DB.Model(&models.Collection{}).
		Select("user_id, COUNT(*) as n").
		Group("user_id").
		Scan(&colRows)
	for _, r := range colRows {
		collectionCounts[r.UserID] = r.N
	}

	createdAt := make(map[string]time.Time, len(users))
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		createdAt[u.ID] = u.CreatedAt
		entries = append(entries, LeaderboardEntry{
			UserID:      u.ID,
			Name:        u.Name,
			Image:       u.Image,
			Badge:       u.Badge,
			OwnedItems:  ownedByUser[u.ID],
			Collections: collectionCounts[u.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OwnedItems != entries[j].OwnedItems {
			return entries[i].OwnedItems > entries[j].OwnedItems
		}
		ci, cj := createdAt[entries[i].UserID], createdAt[entries[j].UserID]
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	lbMutex.Lock()
	lbCache = &cachedLeaderboard{
		Entries:   entries,
		ExpiresAt: time.Now().Add(lbTTL),
	}
	lbMutex.Unlock()

	return capEntries(entries, limit), nil
}

// InvalidateLeaderboardCache drops the cached ranking (used by tests)
func InvalidateLeaderboardCache() {
	lbMutex.Lock()
	lbCache = nil
	lbMutex.Unlock()
}

func capEntries(entries []LeaderboardEntry, limit int) []LeaderboardEntry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
