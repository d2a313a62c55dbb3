package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Image string `json:"image"`

	IsAdmin bool `gorm:"default:false" json:"isAdmin"`

	// Profile customization
	AccentColor           string  `gorm:"default:'emerald'" json:"accentColor"`
	EnableGoldenAccents   bool    `gorm:"default:false" json:"enableGoldenAccents"`
	SpotlightCollectionID *string `json:"spotlightCollectionId"`
	Badge                 string  `json:"badge"` // selected display badge id

	// Unlocked achievement ids, stored as a JSON string array
	Achievements string `gorm:"type:text;default:'[]'" json:"-"`

	// Email verification
	IsVerified  bool   `gorm:"default:false" json:"isVerified"`
	VerifyToken string `json:"-"`

	Password string `json:"-"`

	Count UserCount `gorm:"-" json:"_count"`
}

type UserCount struct {
	Collections int64 `json:"collections"`
	Items       int64 `json:"items"`
	OwnedItems  int64 `json:"ownedItems"`
}
