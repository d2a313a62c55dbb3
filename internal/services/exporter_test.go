package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/colletro/colletro-backend/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestExportJSON_ShapeRoundTripsThroughImporter(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "export-json")

	col := createTestCollection(t, user.ID, "Shelf")
	database.DB.Model(col).Update("tags", `["graded"]`)
	createTestItem(t, col.ID, "Issue 1", true)
	createTestItem(t, col.ID, "Issue 2", false)

	data, err := ExportJSON(user.ID)
	assert.NoError(t, err)

	var parsed struct {
		Collections []struct {
			Name  string   `json:"name"`
			Tags  []string `json:"tags"`
			Items []struct {
				Name    string `json:"name"`
				IsOwned bool   `json:"isOwned"`
			} `json:"items"`
		} `json:"collections"`
	}
	assert.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed.Collections, 1)
	assert.Equal(t, "Shelf", parsed.Collections[0].Name)
	assert.Equal(t, []string{"graded"}, parsed.Collections[0].Tags)
	assert.Len(t, parsed.Collections[0].Items, 2)

	// The export feeds back through the importer unchanged
	other := createTestUser(t, "export-json-reimport")
	result := ImportJSON(other.ID, data)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)
}

func TestExportCSV_SectionedFormat(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "export-csv")

	col := createTestCollection(t, user.ID, "Caps")
	database.DB.Model(col).Updates(map[string]interface{}{
		"description": "Bottle caps",
		"category":    "Other",
	})
	item := createTestItem(t, col.ID, "Cola, Classic", true)
	database.DB.Model(item).Update("number", 1)

	data, err := ExportCSV(user.ID)
	assert.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Collection: Caps\n"))
	assert.Contains(t, text, "Description: Bottle caps\n")
	assert.Contains(t, text, "Category: Other\n")
	assert.Contains(t, text, "Number,Name,Owned,Image,Notes,Wear,Rating,LogDate\n")
	// Comma in the name forces quoting
	assert.Contains(t, text, `1,"Cola, Classic",true`)

	// And it reimports cleanly
	other := createTestUser(t, "export-csv-reimport")
	result := ImportCSV(other.ID, data)
	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Errors)
}
