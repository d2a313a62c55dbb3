package handlers

import (
	"net/http"

	"github.com/colletro/colletro-backend/internal/catalog"
	"github.com/colletro/colletro-backend/internal/database"
	"github.com/colletro/colletro-backend/internal/models"
	"github.com/colletro/colletro-backend/internal/services"
	"github.com/colletro/colletro-backend/pkg/jsonx"
	"github.com/colletro/colletro-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -- Inputs --

type CreateCollectionInput struct {
	Name                   string   `json:"name" binding:"required"`
	Description            string   `json:"description"`
	Category               string   `json:"category"`
	Template               string   `json:"template"`
	Tags                   []string `json:"tags"`
	FolderID               string   `json:"folderId"`
	CoverImage             string   `json:"coverImage"`
	CoverAspect            string   `json:"coverAspect"`
	CoverFit               string   `json:"coverFit"`
	CustomFieldDefinitions string   `json:"customFieldDefinitions"`
}

type UpdateCollectionInput struct {
	Name                   *string   `json:"name"`
	Description            *string   `json:"description"`
	Category               *string   `json:"category"`
	Template               *string   `json:"template"`
	Tags                   *[]string `json:"tags"`
	FolderID               *string   `json:"folderId"`
	CoverImage             *string   `json:"coverImage"`
	CoverAspect            *string   `json:"coverAspect"`
	CoverFit               *string   `json:"coverFit"`
	CustomFieldDefinitions *string   `json:"customFieldDefinitions"`
	IsPublic               *bool     `json:"isPublic"`
}

// normalizeInputCategory maps free text to the closed category list,
// defaulting anything unrecognized to "Other"
func normalizeInputCategory(input string) *string {
	if input == "" {
		return nil
	}
	normalized := catalog.NormalizeCategory(input)
	if normalized == "" {
		normalized = catalog.CategoryOther
	}
	return &normalized
}

// stripCategoryTags drops tags that duplicate category labels; those belong
// in Collection.Category
func stripCategoryTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if !catalog.IsCategoryLabel(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// ownedCollection loads a collection and enforces ownership. Not-owned is
// reported as 404 so resource existence never leaks.
func ownedCollection(c *gin.Context) (*models.Collection, bool) {
	userID, _ := c.Get("userId")
	id := c.Param("id")

	var collection models.Collection
	if err := database.DB.First(&collection, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return nil, false
	}
	if collection.UserID != userID.(string) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return nil, false
	}
	return &collection, true
}

// -- Handlers --

// ListCollections handles GET /collections
func ListCollections(c *gin.Context) {
	userID, _ := c.Get("userId")

	query := database.DB.Model(&models.Collection{}).Where("user_id = ?", userID)

	if search := c.Query("search"); search != "" {
		like := utils.SanitizeSearchQuery(search)
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if folderID := c.Query("folderId"); folderID != "" {
		query = query.Where("folder_id = ?", folderID)
	}

	switch c.Query("orderBy") {
	case "oldest":
		query = query.Order("created_at asc")
	case "name":
		query = query.Order("name asc")
	default:
		query = query.Order("created_at desc")
	}

	var collections []models.Collection
	if result := query.Find(&collections); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
		return
	}

	// Tag filtering happens after load: tags are a JSON blob, and malformed
	// blobs must degrade instead of erroring
	if tag := c.Query("tag"); tag != "" {
		filtered := collections[:0]
		for _, col := range collections {
			for _, t := range jsonx.StringArray(col.Tags) {
				if t == tag {
					filtered = append(filtered, col)
					break
				}
			}
		}
		collections = filtered
	}

	for i := range collections {
		services.AttachCompletion(&collections[i])
	}

	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// CreateCollection handles POST /collections
func CreateCollection(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template := input.Template
	if template == "" {
		template = "other"
	}
	if !catalog.IsValidTemplate(template) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
		return
	}

	collection := models.Collection{
		ID:          utils.GenerateID(),
		UserID:      userID.(string),
		Name:        input.Name,
		Description: input.Description,
		Category:    normalizeInputCategory(input.Category),
		Template:    template,
		Tags:        jsonx.MarshalStringArray(stripCategoryTags(input.Tags)),
		CoverImage:  input.CoverImage,
		ShareToken:  utils.GenerateShareToken(),
	}
	if input.CoverAspect != "" {
		collection.CoverAspect = input.CoverAspect
	}
	if input.CoverFit != "" {
		collection.CoverFit = input.CoverFit
	}
	if input.FolderID != "" {
		var folder models.Folder
		if err := database.DB.First(&folder, "id = ? AND user_id = ?", input.FolderID, userID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Folder not found"})
			return
		}
		collection.FolderID = &input.FolderID
	}
	if template == "custom" && input.CustomFieldDefinitions != "" {
		// Stored as-is; reads go through jsonx and tolerate malformed blobs
		collection.CustomFieldDefinitions = input.CustomFieldDefinitions
	}

	if result := database.DB.Create(&collection); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	newAchievements, _ := services.CheckAchievements(userID.(string))

	c.JSON(http.StatusCreated, gin.H{
		"collection":      collection,
		"newAchievements": newAchievements,
	})
}

// GetCollection handles GET /collections/:id
func GetCollection(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	if err := database.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc, name asc")
	}).First(collection, "id = ?", collection.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	services.AttachCompletion(collection)

	c.JSON(http.StatusOK, gin.H{
		"collection":     collection,
		"templateFields": catalog.TemplateFields(collection.Template),
	})
}

// UpdateCollection handles PATCH /collections/:id
func UpdateCollection(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	var input UpdateCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil && *input.Name != "" {
		collection.Name = *input.Name
	}
	if input.Description != nil {
		collection.Description = *input.Description
	}
	if input.Category != nil {
		collection.Category = normalizeInputCategory(*input.Category)
	}
	if input.Template != nil && *input.Template != "" {
		if !catalog.IsValidTemplate(*input.Template) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
			return
		}
		collection.Template = *input.Template
	}
	if input.Tags != nil {
		collection.Tags = jsonx.MarshalStringArray(stripCategoryTags(*input.Tags))
	}
	if input.FolderID != nil {
		if *input.FolderID == "" {
			collection.FolderID = nil
		} else {
			userID, _ := c.Get("userId")
			var folder models.Folder
			if err := database.DB.First(&folder, "id = ? AND user_id = ?", *input.FolderID, userID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Folder not found"})
				return
			}
			collection.FolderID = input.FolderID
		}
	}
	if input.CoverImage != nil {
		collection.CoverImage = *input.CoverImage
	}
	if input.CoverAspect != nil && *input.CoverAspect != "" {
		collection.CoverAspect = *input.CoverAspect
	}
	if input.CoverFit != nil && *input.CoverFit != "" {
		collection.CoverFit = *input.CoverFit
	}
	if input.CustomFieldDefinitions != nil {
		collection.CustomFieldDefinitions = *input.CustomFieldDefinitions
	}
	if input.IsPublic != nil {
		collection.IsPublic = *input.IsPublic
	}

	if err := database.DB.Save(collection).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": collection})
}

// DeleteCollection handles DELETE /collections/:id
func DeleteCollection(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	database.DB.Where("collection_id = ?", collection.ID).Delete(&models.Item{})
	database.DB.Unscoped().Delete(collection)

	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

// SyncCollection handles POST /collections/:id/sync against the linked
// recommended collection
func SyncCollection(c *gin.Context) {
	collection, ok := ownedCollection(c)
	if !ok {
		return
	}

	if collection.RecommendedCollectionID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Collection is not linked to a recommended collection"})
		return
	}

	result, err := services.SyncWithRecommended(collection)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recommended collection no longer exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sync failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sync": result})
}

// GetSharedCollection handles GET /shared/collections/:token (no auth).
// Resolves only collections whose owner made them public.
func GetSharedCollection(c *gin.Context) {
	// Share tokens are uuids; skip the lookup for anything else
	token := c.Param("token")
	if !utils.IsUUID(token) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}

	var collection models.Collection
	if err := database.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("number asc, name asc")
	}).First(&collection, "share_token = ? AND is_public = ?", token, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		return
	}

	services.AttachCompletion(&collection)

	c.JSON(http.StatusOK, gin.H{
		"collection":     collection,
		"templateFields": catalog.TemplateFields(collection.Template),
	})
}

// -- Folders --

type FolderInput struct {
	Name string `json:"name" binding:"required"`
}

// ListFolders handles GET /folders
func ListFolders(c *gin.Context) {
	userID, _ := c.Get("userId")

	var folders []models.Folder
	if err := database.DB.Where("user_id = ?", userID).Order("name asc").Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// CreateFolder handles POST /folders
func CreateFolder(c *gin.Context) {
	userID, _ := c.Get("userId")

	var input FolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder := models.Folder{
		ID:     utils.GenerateID(),
		UserID: userID.(string),
		Name:   input.Name,
	}
	if err := database.DB.Create(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"folder": folder})
}

// UpdateFolder handles PATCH /folders/:id
func UpdateFolder(c *gin.Context) {
	userID, _ := c.Get("userId")

	var folder models.Folder
	if err := database.DB.First(&folder, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	var input FolderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder.Name = input.Name
	database.DB.Save(&folder)

	c.JSON(http.StatusOK, gin.H{"folder": folder})
}

// DeleteFolder handles DELETE /folders/:id. Collections inside are unfiled,
// not deleted.
func DeleteFolder(c *gin.Context) {
	userID, _ := c.Get("userId")

	var folder models.Folder
	if err := database.DB.First(&folder, "id = ? AND user_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
		return
	}

	database.DB.Model(&models.Collection{}).Where("folder_id = ?", folder.ID).Update("folder_id", nil)
	database.DB.Delete(&folder)

	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted"})
}
