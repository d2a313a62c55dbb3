package handlers

import (
	"net/http"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/mailer"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/internal/services"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadOrCreateWishlist returns the caller's wishlist, creating it on first
// access
func loadOrCreateWishlist(userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := database.DB.Where("user_id = ?", userID).First(&wishlist).Error
	if err == nil {
		return &wishlist, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	wishlist = models.Wishlist{
		ID:     utils.GenerateID(),
		UserID: userID,
	}
	if err := database.DB.Create(&wishlist).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// GetWishlist handles GET /wishlist
func GetWishlist(c *gin.Context) {
	userID, _ := c.Get("userId")

	wishlist, err := loadOrCreateWishlist(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}

	var items []models.WishlistItem
	database.DB.Where("wishlist_id = ?", wishlist.ID).Order("created_at desc").Find(&items)
	wishlist.Items = items

	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist})
}

type AddWishlistItemInput struct {
	ItemID       string `json:"itemId"`
	CollectionID string `json:"collectionId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Notes        string `json:"notes"`
}

// AddWishlistItem handles POST /wishlist/items. The entry references one of
// the caller's items or stands alone as a free named wish.
func AddWishlistItem(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input AddWishlistItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wishlist, err := loadOrCreateWishlist(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}

	entry := models.WishlistItem{
		ID:         utils.GenerateID(),
		WishlistID: wishlist.ID,
		Name:       input.Name,
		Image:      input.Image,
		Notes:      input.Notes,
	}

	if input.ItemID != "" {
		var item models.Item
		err := database.DB.
			Joins("JOIN collections ON collections.id = items.collection_id").
			Where("items.id = ? AND collections.user_id = ?", input.ItemID, userID).
			First(&item).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}

		// No duplicate references to the same item
		var count int64
		database.DB.Model(&models.WishlistItem{}).
			Where("wishlist_id = ? AND item_id = ?", wishlist.ID, item.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Item already on wishlist"})
			return
		}

		entry.ItemID = &item.ID
		entry.CollectionID = &item.CollectionID
		if entry.Name == "" {
			entry.Name = item.Name
		}
		if entry.Image == "" {
			entry.Image = item.Image
		}
	} else if entry.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name required for free-standing wishlist entries"})
		return
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add wishlist item"})
		return
	}

	newAchievements, _ := services.CheckAchievements(userID.(string))

	c.JSON(http.StatusCreated, gin.H{
		"item":            entry,
		"newAchievements": newAchievements,
	})
}

// RemoveWishlistItem handles DELETE /wishlist/items/:id
func RemoveWishlistItem(c *gin.Context) {
	userID, _ := c.Get("userId")

	wishlist, err := loadOrCreateWishlist(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}

	result := database.DB.Where("id = ? AND wishlist_id = ?", c.Param("id"), wishlist.ID).
		Delete(&models.WishlistItem{})
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
}

type ShareWishlistInput struct {
	Enabled bool   `json:"enabled"`
	Email   string `json:"email"`
}

// ShareWishlist handles POST /wishlist/share. Enabling mints a token; an
// optional email gets a notification with the share link.
func ShareWishlist(c *gin.Context) {
	userID, _ := c.Get("userId")

	wishlist, err := loadOrCreateWishlist(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
		return
	}

	var input ShareWishlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Enabled {
		if wishlist.ShareToken == "" {
			wishlist.ShareToken = utils.GenerateShareToken()
		}
	} else {
		wishlist.ShareToken = ""
	}

	if err := database.DB.Save(wishlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	if input.Enabled && input.Email != "" {
		var user models.User
		if err := database.DB.First(&user, "id = ?", wishlist.UserID).Error; err == nil {
			mailer.SendWishlistShared(input.Email, user.Name, wishlist.ShareToken)
		}
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist})
}

// GetSharedWishlist handles GET /shared/wishlists/:token (no auth)
func GetSharedWishlist(c *gin.Context) {
	// Share tokens are uuids; skip the lookup for anything else
	token := c.Param("token")
	if !utils.IsUUID(token) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}

	var wishlist models.Wishlist
	if err := database.DB.Where("share_token = ?", token).First(&wishlist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}

	var items []models.WishlistItem
	database.DB.Where("wishlist_id = ?", wishlist.ID).Order("created_at desc").Find(&items)
	wishlist.Items = items

	var owner models.User
	ownerName := ""
	if err := database.DB.Select("name").First(&owner, "id = ?", wishlist.UserID).Error; err == nil {
		ownerName = owner.Name
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": wishlist, "owner": ownerName})
}
