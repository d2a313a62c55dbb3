package models

import (
	"time"

	"github.com/lib/pq"
)

// CommunityCollection is an independently-owned public copy of a user
// collection. Publishing copies rows; it never shares storage with the source.
type CommunityCollection struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"index" json:"userId"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author"`

	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    *string        `gorm:"index" json:"category"`
	Template    string         `gorm:"default:'other'" json:"template"`
	Tags        pq.StringArray `gorm:"type:text[];index" json:"tags"`
	CoverImage  string         `json:"coverImage"`

	Upvotes int `gorm:"default:0" json:"upvotes"`

	Items []CommunityItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type CommunityItem struct {
	ID           string `gorm:"primaryKey;type:text" json:"id"`
	CollectionID string `gorm:"index" json:"collectionId"`

	Name   string `json:"name"`
	Number *int   `json:"number"`
	Image  string `json:"image"`
	Notes  string `gorm:"type:text" json:"notes"`
}

// CommunityUpvote records one upvote per user per collection
type CommunityUpvote struct {
	UserID       string    `gorm:"primaryKey;type:text" json:"userId"`
	CollectionID string    `gorm:"primaryKey;type:text" json:"collectionId"`
	CreatedAt    time.Time `json:"createdAt"`
}
