package services

import (
	"math"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/jsonx"
)

// CompletionPercent returns round(owned/total*100). A collection with no
// items is 0% complete, 100 shows only when every item is owned, and any
// progress at all shows as at least 1.
func CompletionPercent(owned, total int64) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(owned) / float64(total) * 100))
	if owned < total && pct == 100 {
		pct = 99
	}
	if owned > 0 && pct == 0 {
		pct = 1
	}
	return pct
}

// AttachCompletion fills the derived TotalItems/OwnedItems/CompletionPercent
// fields on a collection
func AttachCompletion(collection *models.Collection) {
	var total, owned int64
	database.DB.Model(&models.Item{}).Where("collection_id = ?", collection.ID).Count(&total)
	database.DB.Model(&models.Item{}).Where("collection_id = ? AND is_owned = ?", collection.ID, true).Count(&owned)

	collection.TotalItems = total
	collection.OwnedItems = owned
	collection.CompletionPercent = CompletionPercent(owned, total)
}

// UserStatistics is the per-user rollup returned by the statistics endpoint.
// Everything is recomputed per request; nothing is materialized.
type UserStatistics struct {
	Collections          int64            `json:"collections"`
	Items                int64            `json:"items"`
	OwnedItems           int64            `json:"ownedItems"`
	CompletedCollections int64            `json:"completedCollections"`
	AverageRating        float64          `json:"averageRating"`
	CategoryDistribution map[string]int64            `json:"categoryDistribution"`
	TagDistribution      map[string]int64            `json:"tagDistribution"`
	TagColors            map[string]catalog.TagColor `json:"tagColors"`
	WearDistribution     map[string]int64            `json:"wearDistribution"`
}

// ComputeUserStatistics aggregates over all of a user's collections and
// items. Malformed tag blobs degrade to empty via jsonx and are simply
// skipped; only database failures surface as errors.
func ComputeUserStatistics(userID string) (*UserStatistics, error) {
	stats := &UserStatistics{
		CategoryDistribution: map[string]int64{},
		TagDistribution:      map[string]int64{},
		TagColors:            map[string]catalog.TagColor{},
		WearDistribution:     map[string]int64{},
	}

	var collections []models.Collection
	if err := database.DB.Where("user_id = ?", userID).Find(&collections).Error; err != nil {
		return nil, err
	}
	stats.Collections = int64(len(collections))

	collectionIDs := make([]string, 0, len(collections))
	for _, col := range collections {
		collectionIDs = append(collectionIDs, col.ID)

		if col.Category != nil && *col.Category != "" {
			stats.CategoryDistribution[*col.Category]++
		}
		for _, tag := range jsonx.StringArray(col.Tags) {
			stats.TagDistribution[tag]++
			if _, seen := stats.TagColors[tag]; !seen {
				stats.TagColors[tag] = catalog.ColorForTag(tag)
			}
		}
	}

	if len(collectionIDs) == 0 {
		return stats, nil
	}

	var items []models.Item
	if err := database.DB.Where("collection_id IN ?", collectionIDs).Find(&items).Error; err != nil {
		return nil, err
	}

	ownedByCollection := map[string]int64{}
	totalByCollection := map[string]int64{}
	var ratingSum int64
	var ratingCount int64

	for _, item := range items {
		stats.Items++
		totalByCollection[item.CollectionID]++
		if item.IsOwned {
			stats.OwnedItems++
			ownedByCollection[item.CollectionID]++
		}
		if item.Wear != "" {
			stats.WearDistribution[item.Wear]++
		}
		if item.PersonalRating > 0 {
			ratingSum += int64(item.PersonalRating)
			ratingCount++
		}
	}

	if ratingCount > 0 {
		stats.AverageRating = math.Round(float64(ratingSum)/float64(ratingCount)*10) / 10
	}

	for id, total := range totalByCollection {
		if total > 0 && ownedByCollection[id] == total {
			stats.CompletedCollections++
		}
	}

	return stats, nil
}
