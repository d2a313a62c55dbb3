package seeds

import (
	"time"

	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/logger"
	"github.com/colletro/colletro-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoUser creates a demo account with a small starter collection so a
// fresh install has something to click around in
func SeedDemoUser(db *gorm.DB) error {
	const demoEmail = "demo@colletro.app"

	var count int64
	db.Model(&models.User{}).Where("email = ?", demoEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Name:         "Demo Collector",
		Email:        demoEmail,
		Password:     string(hashed),
		IsVerified:   true,
		Achievements: "[]",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	category := "Music"
	collection := models.Collection{
		ID:         utils.GenerateID(),
		UserID:     user.ID,
		Name:       "Vinyl Favorites",
		Category:   &category,
		Template:   "vinyl-record",
		Tags:       `["jazz","rock"]`,
		ShareToken: utils.GenerateShareToken(),
	}
	if err := db.Create(&collection).Error; err != nil {
		return err
	}

	now := time.Now()
	items := []models.Item{
		{Name: "Kind of Blue", Number: intPtr(1), IsOwned: true, LogDate: &now},
		{Name: "Abbey Road", Number: intPtr(2), IsOwned: true, LogDate: &now},
		{Name: "Rumours", Number: intPtr(3)},
	}
	for _, item := range items {
		item.ID = utils.GenerateID()
		item.CollectionID = collection.ID
		item.AlternativeImages = "[]"
		item.CustomFields = "{}"
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}

	logger.Info().Str("email", demoEmail).Msg("Seeded demo user")
	return nil
}
