package services

import (
	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
)

// snapshotStats builds the aggregate view achievements are evaluated against
func snapshotStats(userID string) (catalog.StatsSnapshot, error) {
	var snap catalog.StatsSnapshot

	if err := database.DB.Model(&models.Collection{}).Where("user_id = ?", userID).
		Count(&snap.Collections).Error; err != nil {
		return snap, err
	}

	var collectionIDs []string
	database.DB.Model(&models.Collection{}).Where("user_id = ?", userID).Pluck("id", &collectionIDs)

	if len(collectionIDs) > 0 {
		database.DB.Model(&models.Item{}).Where("collection_id IN ?", collectionIDs).Count(&snap.Items)
		database.DB.Model(&models.Item{}).Where("collection_id IN ? AND is_owned = ?", collectionIDs, true).Count(&snap.OwnedItems)

		// Completed = collections where every item is owned and at least one exists
		type pair struct {
			CollectionID string
			Total        int64
			Owned        int64
		}
		var pairs []pair
		database.DB.Model(&models.Item{}).
			Select("collection_id, COUNT(*) as total, SUM(CASE WHEN is_owned THEN 1 ELSE 0 END) as owned").
			Where("collection_id IN ?", collectionIDs).
			Group("collection_id").
			Scan(&pairs)
		for _, p := range pairs {
			if p.Total > 0 && p.Owned == p.Total {
				snap.CompletedCollections++
			}
		}
	}

	database.DB.Model(&models.Collection{}).
		Where("user_id = ? AND category IS NOT NULL AND category != ''", userID).
		Distinct("category").
		Count(&snap.Categories)

	database.DB.Model(&models.CommunityCollection{}).Where("user_id = ?", userID).Count(&snap.CommunityCollections)

	var upvotes *int64
	database.DB.Model(&models.CommunityCollection{}).
		Select("COALESCE(SUM(upvotes), 0)").
		Where("user_id = ?", userID).
		Scan(&upvotes)
	if upvotes != nil {
		snap.UpvotesReceived = *upvotes
	}

	var wishlist models.Wishlist
	if err := database.DB.Where("user_id = ?", userID).First(&wishlist).Error; err == nil {
		database.DB.Model(&models.WishlistItem{}).Where("wishlist_id = ?", wishlist.ID).Count(&snap.WishlistItems)
	}

	return snap, nil
}

// CheckAchievements evaluates the full catalog against a fresh stats snapshot
// and persists newly crossed thresholds on the user row. Already-unlocked ids
// are never reinserted, so calling twice with no state change returns an
// empty delta the second time. Only the delta is returned.
func CheckAchievements(userID string) ([]catalog.Achievement, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	unlocked := jsonx.StringArray(user.Achievements)
	unlockedSet := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		unlockedSet[id] = true
	}

	snap, err := snapshotStats(userID)
	if err != nil {
		return nil, err
	}

	var newly []catalog.Achievement
	for _, a := range Achievements() {
		if unlockedSet[a.ID] {
			continue
		}
		if a.Unlocked(snap) {
			unlocked = append(unlocked, a.ID)
			newly = append(newly, a)
		}
	}

	if len(newly) > 0 {
		if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
			Update("achievements", jsonx.MarshalStringArray(unlocked)).Error; err != nil {
			return nil, err
		}
	}

	return newly, nil
}

// Achievements exposes the catalog; indirection point for tests
func Achievements() []catalog.Achievement {
	return catalog.Achievements
}

// HasUnlocked reports whether a user has a given achievement id recorded
func HasUnlocked(user *models.User, achievementID string) bool {
	for _, id := range jsonx.StringArray(user.Achievements) {
		if id == achievementID {
			return true
		}
	}
	return false
}
