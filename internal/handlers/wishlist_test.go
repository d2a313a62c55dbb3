package handlers

import (
	"net/http"
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func wishlistRouter(userID string) *gin.Engine {
	r := gin.New()
	authed := r.Group("", testUserMiddleware(userID))
	authed.GET("/wishlist", GetWishlist)
	authed.POST("/wishlist/items", AddWishlistItem)
	authed.DELETE("/wishlist/items/:id", RemoveWishlistItem)
	authed.POST("/wishlist/share", ShareWishlist)
	r.GET("/shared/wishlists/:token", GetSharedWishlist)
	return r
}

func TestGetWishlist_LazyCreate(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "wisher")
	r := wishlistRouter(user.ID)

	var count int64
	database.DB.Model(&models.Wishlist{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	w := jsonRequest(t, r, "GET", "/wishlist", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	database.DB.Model(&models.Wishlist{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// A second read does not create another one
	jsonRequest(t, r, "GET", "/wishlist", nil)
	database.DB.Model(&models.Wishlist{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddWishlistItem_FreeStanding(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "free-wisher")
	r := wishlistRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"name": "Holy Grail Issue"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Name is required when nothing is referenced
	w = jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"notes": "nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddWishlistItem_ReferencedItem(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "ref-wisher")
	r := wishlistRouter(user.ID)

	collection := models.Collection{
		ID:         utils.GenerateID(),
		UserID:     user.ID,
		Name:       "Wants",
		Tags:       "[]",
		ShareToken: utils.GenerateShareToken(),
	}
	database.DB.Create(&collection)
	item := models.Item{
		ID:                utils.GenerateID(),
		CollectionID:      collection.ID,
		Name:              "Missing Piece",
		AlternativeImages: "[]",
		CustomFields:      "{}",
	}
	database.DB.Create(&item)

	w := jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"itemId": item.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var entry models.WishlistItem
	database.DB.Where("item_id = ?", item.ID).First(&entry)
	assert.Equal(t, "Missing Piece", entry.Name)
	assert.Equal(t, collection.ID, *entry.CollectionID)

	// Same item twice conflicts
	w = jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"itemId": item.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddWishlistItem_SomeoneElsesItemIs404(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "wish-owner")
	intruder := createUser(t, "wish-intruder")

	collection := models.Collection{
		ID:         utils.GenerateID(),
		UserID:     owner.ID,
		Name:       "Not Yours",
		Tags:       "[]",
		ShareToken: utils.GenerateShareToken(),
	}
	database.DB.Create(&collection)
	item := models.Item{
		ID:                utils.GenerateID(),
		CollectionID:      collection.ID,
		Name:              "Private Item",
		AlternativeImages: "[]",
		CustomFields:      "{}",
	}
	database.DB.Create(&item)

	r := wishlistRouter(intruder.ID)
	w := jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"itemId": item.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShareWishlist_TokenLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "share-wisher")
	r := wishlistRouter(user.ID)

	jsonRequest(t, r, "POST", "/wishlist/items", gin.H{"name": "Wanted"})

	w := jsonRequest(t, r, "POST", "/wishlist/share", gin.H{"enabled": true})
	assert.Equal(t, http.StatusOK, w.Code)

	var wishlist models.Wishlist
	database.DB.Where("user_id = ?", user.ID).First(&wishlist)
	assert.NotEmpty(t, wishlist.ShareToken)

	// Public read works while enabled
	w = jsonRequest(t, r, "GET", "/shared/wishlists/"+wishlist.ShareToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, user.Name, body["owner"])

	// Disabling revokes the token
	token := wishlist.ShareToken
	w = jsonRequest(t, r, "POST", "/wishlist/share", gin.H{"enabled": false})
	assert.Equal(t, http.StatusOK, w.Code)

	w = jsonRequest(t, r, "GET", "/shared/wishlists/"+token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
