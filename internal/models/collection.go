package models

import (
	"time"

	"gorm.io/gorm"
)

type Collection struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"index" json:"userId"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    *string `gorm:"index" json:"category"` // nil or a member of catalog.Categories
	Template    string  `gorm:"default:'other'" json:"template"`

	// JSON blobs, read through jsonx (never trusted to be well-formed)
	CustomFieldDefinitions string `gorm:"type:text;default:'[]'" json:"customFieldDefinitions"` // only used when Template == "custom"
	Tags                   string `gorm:"type:text;default:'[]'" json:"tags"`

	FolderID *string `gorm:"index" json:"folderId"`

	CoverImage  string `json:"coverImage"`
	CoverAspect string `gorm:"default:'square'" json:"coverAspect"`
	CoverFit    string `gorm:"default:'cover'" json:"coverFit"`

	// Set when cloned from a curated collection; enables sync
	RecommendedCollectionID *string    `gorm:"index" json:"recommendedCollectionId"`
	LastSyncedAt            *time.Time `json:"lastSyncedAt"`

	ShareToken string `gorm:"index" json:"shareToken"`
	IsPublic   bool   `gorm:"default:false" json:"isPublic"`

	Items []Item `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	// Derived, never persisted
	TotalItems        int64 `gorm:"-" json:"totalItems"`
	OwnedItems        int64 `gorm:"-" json:"ownedItems"`
	CompletionPercent int   `gorm:"-" json:"completionPercent"`
}

type Item struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CollectionID string `gorm:"index" json:"collectionId"`

	Name    string `json:"name"`
	Number  *int   `json:"number"`
	IsOwned bool   `gorm:"default:false;index" json:"isOwned"`

	Image             string `json:"image"`
	AlternativeImages string `gorm:"type:text;default:'[]'" json:"alternativeImages"`

	Notes          string     `gorm:"type:text" json:"notes"`
	Wear           string     `json:"wear"` // mint, near-mint, good, fair, poor
	PersonalRating int        `gorm:"default:0" json:"personalRating"`
	LogDate        *time.Time `json:"logDate"`

	// JSON object keyed by the owning collection's template field ids.
	// Key validity is a UI-layer concern, not enforced here.
	CustomFields string `gorm:"type:text;default:'{}'" json:"customFields"`
}

type Folder struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index" json:"userId"`
	Name   string `json:"name"`

	Collections []Collection `gorm:"foreignKey:FolderID" json:"collections,omitempty"`
}
