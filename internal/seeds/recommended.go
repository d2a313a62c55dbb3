package seeds

import (
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/colletro/colletro-backend/pkg/utils"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

type seedCollection struct {
	Name        string
	Description string
	Category    string
	Template    string
	Items       []models.RecommendedItem
}

var recommendedSeeds = []seedCollection{
	{
		Name:        "Amazing Spider-Man (1963) Key Issues",
		Description: "The essential silver-age issues every Spider-Man collector hunts for.",
		Category:    "Comics",
		Template:    "comic-book",
		Items: []models.RecommendedItem{
			{Name: "Amazing Fantasy #15", Number: intPtr(15), Notes: "First appearance of Spider-Man"},
			{Name: "The Amazing Spider-Man #1", Number: intPtr(1)},
			{Name: "The Amazing Spider-Man #14", Number: intPtr(14), Notes: "First Green Goblin"},
			{Name: "The Amazing Spider-Man #50", Number: intPtr(50), Notes: "First Kingpin"},
			{Name: "The Amazing Spider-Man #121", Number: intPtr(121)},
			{Name: "The Amazing Spider-Man #129", Number: intPtr(129), Notes: "First Punisher"},
			{Name: "The Amazing Spider-Man #300", Number: intPtr(300), Notes: "First Venom"},
		},
	},
	{
		Name:        "Nintendo 64 Launch Library",
		Description: "Every game released during the N64's first year in North America.",
		Category:    "Video Games",
		Template:    "video-game",
		Items: []models.RecommendedItem{
			{Name: "Super Mario 64", Number: intPtr(1)},
			{Name: "Pilotwings 64", Number: intPtr(2)},
			{Name: "Wave Race 64", Number: intPtr(3)},
			{Name: "Mario Kart 64", Number: intPtr(4)},
			{Name: "Star Fox 64", Number: intPtr(5)},
			{Name: "GoldenEye 007", Number: intPtr(6)},
		},
	},
	{
		Name:        "US State Quarters",
		Description: "The 50 State Quarters program, 1999 through 2008.",
		Category:    "Coins",
		Template:    "coin",
		Items: []models.RecommendedItem{
			{Name: "Delaware 1999", Number: intPtr(1)},
			{Name: "Pennsylvania 1999", Number: intPtr(2)},
			{Name: "New Jersey 1999", Number: intPtr(3)},
			{Name: "Georgia 1999", Number: intPtr(4)},
			{Name: "Connecticut 1999", Number: intPtr(5)},
			{Name: "Massachusetts 2000", Number: intPtr(6)},
			{Name: "Maryland 2000", Number: intPtr(7)},
			{Name: "South Carolina 2000", Number: intPtr(8)},
		},
	},
	{
		Name:        "Studio Ghibli Feature Films",
		Description: "Every theatrical feature from the studio, in release order.",
		Category:    "Movies",
		Template:    "film",
		Items: []models.RecommendedItem{
			{Name: "Castle in the Sky", Number: intPtr(1)},
			{Name: "Grave of the Fireflies", Number: intPtr(2)},
			{Name: "My Neighbor Totoro", Number: intPtr(3)},
			{Name: "Kiki's Delivery Service", Number: intPtr(4)},
			{Name: "Princess Mononoke", Number: intPtr(5)},
			{Name: "Spirited Away", Number: intPtr(6)},
			{Name: "Howl's Moving Castle", Number: intPtr(7)},
		},
	},
}

// SeedRecommended inserts the curated starter catalog. Collections already
// present (matched by name) are left untouched.
func SeedRecommended(db *gorm.DB) error {
	for _, seed := range recommendedSeeds {
		var count int64
		db.Model(&models.RecommendedCollection{}).Where("name = ?", seed.Name).Count(&count)
		if count > 0 {
			continue
		}

		collection := models.RecommendedCollection{
			ID:          utils.GenerateID(),
			Name:        seed.Name,
			Description: seed.Description,
			Category:    strPtr(seed.Category),
			Template:    seed.Template,
		}
		if err := db.Create(&collection).Error; err != nil {
			return err
		}

		for _, item := range seed.Items {
			item.ID = utils.GenerateID()
			item.CollectionID = collection.ID
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}

		logger.Info().Str("name", seed.Name).Int("items", len(seed.Items)).Msg("Seeded recommended collection")
	}
	return nil
}
