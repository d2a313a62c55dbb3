package services

import (
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestImportJSON_MultiCollectionShape(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-multi")

	payload := `{"collections":[{"name":"Test","items":[{"name":"Item 1","number":1,"isOwned":"true"}]}]}`
	result := ImportJSON(user.ID, []byte(payload))

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	var collection models.Collection
	assert.NoError(t, database.DB.Where("user_id = ? AND name = ?", user.ID, "Test").First(&collection).Error)

	var items []models.Item
	database.DB.Where("collection_id = ?", collection.ID).Find(&items)
	assert.Len(t, items, 1)
	assert.Equal(t, "Item 1", items[0].Name)
	assert.Equal(t, 1, *items[0].Number)
	assert.True(t, items[0].IsOwned)
	assert.NotNil(t, items[0].LogDate)
}

func TestImportJSON_SingleObjectAndBareArray(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-shapes")

	single := `{"name":"Single","items":[]}`
	result := ImportJSON(user.ID, []byte(single))
	assert.Equal(t, 1, result.Created)

	bare := `[{"name":"First"},{"name":"Second"}]`
	result = ImportJSON(user.ID, []byte(bare))
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
}

func TestImportJSON_BestEffortBatch(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-batch")

	// Second entry has no name; the other two still import
	payload := `{"collections":[
		{"name":"Good One"},
		{"description":"nameless"},
		{"name":"Good Two"}
	]}`
	result := ImportJSON(user.ID, []byte(payload))

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "missing collection name")
}

func TestImportJSON_ItemDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-defaults")

	payload := `{"collections":[{"name":"Defaults","items":[
		{"number":5},
		{"name":"Named","isOwned":"YES"},
		{"name":"NotOwned","isOwned":"nope"}
	]}]}`
	result := ImportJSON(user.ID, []byte(payload))
	assert.Equal(t, 1, result.Created)

	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)

	var items []models.Item
	database.DB.Where("collection_id = ?", collection.ID).Order("created_at asc").Find(&items)
	assert.Len(t, items, 3)

	byName := map[string]models.Item{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.Contains(t, byName, "Unnamed Item")
	assert.True(t, byName["Named"].IsOwned)
	assert.False(t, byName["NotOwned"].IsOwned)
}

func TestImportJSON_CategoryNormalizedAndTagStripped(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-category")

	payload := `{"collections":[{"name":"Shelf","category":"manga","tags":["comics","shonen"]}]}`
	result := ImportJSON(user.ID, []byte(payload))
	assert.Equal(t, 1, result.Created)

	var collection models.Collection
	database.DB.Where("user_id = ?", user.ID).First(&collection)
	assert.NotNil(t, collection.Category)
	assert.Equal(t, "Comics", *collection.Category)
	// "comics" duplicates the category label and must not survive as a tag
	assert.Equal(t, `["shonen"]`, collection.Tags)
}

func TestImportJSON_Garbage(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-garbage")

	result := ImportJSON(user.ID, []byte("this is not json"))
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Failed)
}

func TestImportCSV_SectionedFormat(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-csv")

	csvData := `Collection: Star Wars Figures
Description: Vintage Kenner line
Category: Action Figures
Number,Name,Owned,Image,Notes,Wear,Rating,LogDate
1,Luke Skywalker,true,,,good,8,
2,Darth Vader,no,,,mint,,
3,"Han Solo, Smuggler",yes,,,,,

Collection: Bottle Caps
Number,Name,Owned
1,Cola Cap,false
`
	result := ImportCSV(user.ID, []byte(csvData))
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)

	var starWars models.Collection
	assert.NoError(t, database.DB.Where("user_id = ? AND name = ?", user.ID, "Star Wars Figures").First(&starWars).Error)
	assert.Equal(t, "Vintage Kenner line", starWars.Description)
	assert.Equal(t, "Action Figures", *starWars.Category)

	var items []models.Item
	database.DB.Where("collection_id = ?", starWars.ID).Find(&items)
	assert.Len(t, items, 3)

	byName := map[string]models.Item{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.True(t, byName["Luke Skywalker"].IsOwned)
	assert.Equal(t, 8, byName["Luke Skywalker"].PersonalRating)
	assert.False(t, byName["Darth Vader"].IsOwned)
	assert.True(t, byName["Han Solo, Smuggler"].IsOwned)
}

func TestImportCSV_Empty(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "import-csv-empty")

	result := ImportCSV(user.ID, []byte("no sections here\njust noise"))
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors[0], "no collections found")
}
