package handlers

import (
	"net/http"
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func importRouter(userID string) *gin.Engine {
	r := gin.New()
	authed := r.Group("", testUserMiddleware(userID))
	authed.POST("/collections/import/json", ImportJSON)
	return r
}

func TestImportJSON_CreatesCollection(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "importer")
	r := importRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections/import/json", gin.H{
		"collections": []gin.H{
			{
				"name": "Imported",
				"items": []gin.H{
					{"name": "Item 1", "number": 1, "isOwned": "true"},
				},
			},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeResponse(t, w)
	assert.Equal(t, float64(1), body["created"])
	assert.Equal(t, float64(0), body["failed"])

	var collection models.Collection
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&collection).Error)
	assert.Equal(t, "Imported", collection.Name)

	var item models.Item
	assert.NoError(t, database.DB.Where("collection_id = ?", collection.ID).First(&item).Error)
	assert.True(t, item.IsOwned)
}

func TestImportJSON_EmptyBodyIs400(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "importer-empty")
	r := importRouter(user.ID)

	w := jsonRequest(t, r, "POST", "/collections/import/json", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
