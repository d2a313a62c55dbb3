package models

import "time"

// RecommendedCollection is an admin-curated collection users can clone into a
// personal copy and keep in sync (additions only).
type RecommendedCollection struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    *string `gorm:"index" json:"category"`
	Template    string  `gorm:"default:'other'" json:"template"`
	CoverImage  string  `json:"coverImage"`

	CloneCount int `gorm:"default:0" json:"cloneCount"`

	Items []RecommendedItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type RecommendedItem struct {
	ID           string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt    time.Time `json:"createdAt"` // sync watermark comparisons
	CollectionID string    `gorm:"index" json:"collectionId"`

	Name   string `json:"name"`
	Number *int   `json:"number"`
	Image  string `json:"image"`
	Notes  string `gorm:"type:text" json:"notes"`
}
