package models

import "time"

// Wishlist is per-user and created lazily on first access
type Wishlist struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID string `gorm:"uniqueIndex" json:"userId"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Empty token means the wishlist is private
	ShareToken string `gorm:"index" json:"shareToken"`

	Items []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// WishlistItem references an item/collection pair or stands alone as a free
// named entry (ItemID and CollectionID both nil).
type WishlistItem struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	WishlistID string `gorm:"index" json:"wishlistId"`

	ItemID       *string `json:"itemId"`
	CollectionID *string `json:"collectionId"`

	Name  string `json:"name"`
	Image string `json:"image"`
	Notes string `json:"notes"`
}
