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

func collectionRouter(userID string) *gin.Engine {
	r := gin.New()
	authed := r.Group("", testUserMiddleware(userID))
	authed.GET("/collections", ListCollections)
	authed.POST("/collections", CreateCollection)
	authed.GET("/collections/:id", GetCollection)
	authed.PATCH("/collections/:id", UpdateCollection)
	authed.DELETE("/collections/:id", DeleteCollection)
	authed.POST("/collections/:id/items", CreateItem)
	authed.PATCH("/collections/:id/items/:itemId", UpdateItem)
	r.GET("/shared/collections/:token", GetSharedCollection)
	return r
}

func TestCreateCollection_NormalizesCategoryAndStripsTags(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "creator")
	r := collectionRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections", gin.H{
		"name":     "My Manga Shelf",
		"category": "manga",
		"tags":     []string{"comics", "shonen"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var saved models.Collection
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&saved).Error)
	assert.Equal(t, "Comics", *saved.Category)
	assert.Equal(t, `["shonen"]`, saved.Tags)
	assert.Equal(t, "other", saved.Template)
	assert.NotEmpty(t, saved.ShareToken)

	body := decodeResponse(t, w)
	assert.NotNil(t, body["newAchievements"])
}

func TestCreateCollection_UnknownCategoryBecomesOther(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "other-cat")
	r := collectionRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections", gin.H{
		"name":     "Oddities",
		"category": "rubber ducks",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var saved models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&saved)
	assert.Equal(t, "Other", *saved.Category)
}

func TestCreateCollection_RejectsUnknownTemplate(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "bad-template")
	r := collectionRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections", gin.H{
		"name":     "Bad",
		"template": "not-a-template",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCollection_NotOwnedIs404(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, "owner")
	intruder := createUser(t, "intruder")

	collection := models.Collection{
		ID:         utils.GenerateID(),
		UserID:     owner.ID,
		Name:       "Private",
		Tags:       "[]",
		ShareToken: utils.GenerateShareToken(),
	}
	database.DB.Create(&collection)

	r := collectionRouter(intruder.ID)
	w := jsonRequest(t, r, "GET", "/collections/"+collection.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCollection_PartialUpdate(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "updater")
	r := collectionRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections", gin.H{"name": "Before", "description": "keep me"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)

	w = jsonRequest(t, r, "PATCH", "/collections/"+collection.ID, gin.H{"name": "After"})
	assert.Equal(t, http.StatusOK, w.Code)

	var saved models.Collection
	database.DB.First(&saved, "id = ?", collection.ID)
	assert.Equal(t, "After", saved.Name)
	assert.Equal(t, "keep me", saved.Description)
}

func TestDeleteCollection_RemovesItems(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "deleter")
	r := collectionRouter(user.ID)

	jsonRequest(t, r, "POST", "/collections", gin.H{"name": "Doomed"})
	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)

	w := jsonRequest(t, r, "POST", "/collections/"+collection.ID+"/items", gin.H{"name": "Going too"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, r, "DELETE", "/collections/"+collection.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var itemCount int64
	database.DB.Model(&models.Item{}).Where("collection_id = ?", collection.ID).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestItemOwnershipToggleSetsLogDate(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "toggler")
	r := collectionRouter(user.ID)

	jsonRequest(t, r, "POST", "/collections", gin.H{"name": "Toggles"})
	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)

	w := jsonRequest(t, r, "POST", "/collections/"+collection.ID+"/items", gin.H{"name": "Thing"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.Item
	database.DB.Where("collection_id = ?", collection.ID).First(&item)
	assert.False(t, item.IsOwned)
	assert.Nil(t, item.LogDate)

	w = jsonRequest(t, r, "PATCH", "/collections/"+collection.ID+"/items/"+item.ID, gin.H{"isOwned": true})
	assert.Equal(t, http.StatusOK, w.Code)

	// Reload into fresh structs: a NULL column leaves a reused struct's old
	// value in place
	var owned models.Item
	database.DB.First(&owned, "id = ?", item.ID)
	assert.True(t, owned.IsOwned)
	assert.NotNil(t, owned.LogDate)

	// Toggling back off clears the log date
	w = jsonRequest(t, r, "PATCH", "/collections/"+collection.ID+"/items/"+item.ID, gin.H{"isOwned": false})
	assert.Equal(t, http.StatusOK, w.Code)

	var unowned models.Item
	database.DB.First(&unowned, "id = ?", item.ID)
	assert.False(t, unowned.IsOwned)
	assert.Nil(t, unowned.LogDate)
}

func TestSharedCollection_PublicReadByToken(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "sharer")
	r := collectionRouter(user.ID)

	jsonRequest(t, r, "POST", "/collections", gin.H{"name": "Showcase"})
	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)

	// Private by default: the token resolves nothing
	w := jsonRequest(t, r, "GET", "/shared/collections/"+collection.ShareToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	jsonRequest(t, r, "PATCH", "/collections/"+collection.ID, gin.H{"isPublic": true})

	// Tokens are uuids; junk never resolves
	w = jsonRequest(t, r, "GET", "/shared/collections/not-a-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = jsonRequest(t, r, "GET", "/shared/collections/"+collection.ShareToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeResponse(t, w)
	shared := body["collection"].(map[string]interface{})
	assert.Equal(t, "Showcase", shared["name"])
}
