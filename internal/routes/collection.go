package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterCollectionRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/collections")
	collections.Use(middleware.AuthMiddleware())

	collections.GET("", handlers.ListCollections)
	collections.POST("", handlers.CreateCollection)
	collections.GET("/:id", handlers.GetCollection)
	collections.PATCH("/:id", handlers.UpdateCollection)
	collections.DELETE("/:id", handlers.DeleteCollection)
	collections.POST("/:id/sync", handlers.SyncCollection)

	// Items
	collections.POST("/:id/items", handlers.CreateItem)
	collections.PATCH("/:id/items/:itemId", handlers.UpdateItem)
	collections.DELETE("/:id/items/:itemId", handlers.DeleteItem)
	collections.POST("/:id/items/bulk-owned", handlers.BulkToggleOwned)

	// Import/export
	collections.POST("/import/json", middleware.ImportRateLimit(), handlers.ImportJSON)
	collections.POST("/import/csv", middleware.ImportRateLimit(), handlers.ImportCSV)
	collections.GET("/export/json", handlers.ExportJSON)
	collections.GET("/export/csv", handlers.ExportCSV)

	// Folders
	folders := rg.Group("/folders")
	folders.Use(middleware.AuthMiddleware())
	folders.GET("", handlers.ListFolders)
	folders.POST("", handlers.CreateFolder)
	folders.PATCH("/:id", handlers.UpdateFolder)
	folders.DELETE("/:id", handlers.DeleteFolder)

	// Public share links
	rg.GET("/shared/collections/:token", handlers.GetSharedCollection)
}
