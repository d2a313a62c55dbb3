package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/utils"
	"gorm.io/gorm"
)

// SyncResult reports what a recommended-collection sync did
type SyncResult struct {
	AddedItems int      `json:"addedItems"`
	AddedNames []string `json:"addedNames"`
	SyncedAt   string   `json:"syncedAt"`
}

// SyncWithRecommended reconciles a cloned collection with its upstream
// curated collection. Additions only: upstream items created after the last
// sync and missing from the local copy (matched by number, falling back to
// normalized name) are inserted. The lastSyncedAt watermark keeps locally
// deleted items from coming back, local edits are never touched, and
// upstream edits to already-present items are ignored.
func SyncWithRecommended(collection *models.Collection) (*SyncResult, error) {
	if collection.RecommendedCollectionID == nil {
		return nil, gorm.ErrRecordNotFound
	}

	var upstream models.RecommendedCollection
	if err := database.DB.Preload("Items").
		First(&upstream, "id = ?", *collection.RecommendedCollectionID).Error; err != nil {
		return nil, err
	}

	var local []models.Item
	if err := database.DB.Where("collection_id = ?", collection.ID).Find(&local).Error; err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(local))
	for _, item := range local {
		seen[itemKey(item.Number, item.Name)] = true
	}

	result := &SyncResult{AddedNames: []string{}}
	now := time.Now()

	for _, up := range upstream.Items {
		// Anything older than the watermark was already offered once; a
		// missing local copy means the user deleted it
		if collection.LastSyncedAt != nil && !up.CreatedAt.After(*collection.LastSyncedAt) {
			continue
		}
		key := itemKey(up.Number, up.Name)
		if seen[key] {
			continue
		}

		item := models.Item{
			ID:           utils.GenerateID(),
			CollectionID: collection.ID,
			Name:         up.Name,
			Number:       up.Number,
			Image:        up.Image,
			Notes:        up.Notes,
			IsOwned:      false,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return nil, err
		}
		seen[key] = true
		result.AddedItems++
		result.AddedNames = append(result.AddedNames, up.Name)
	}

	collection.LastSyncedAt = &now
	if err := database.DB.Model(&models.Collection{}).Where("id = ?", collection.ID).
		Update("last_synced_at", now).Error; err != nil {
		return nil, err
	}
	result.SyncedAt = now.Format(time.RFC3339)

	return result, nil
}

// itemKey matches upstream and local items. Numbered items match on number
// so renamed local copies are not re-added.
func itemKey(number *int, name string) string {
	if number != nil {
		return "#" + strconv.Itoa(*number)
	}
	return strings.ToLower(strings.TrimSpace(name))
}
