package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterWishlistRoutes(rg *gin.RouterGroup) {
	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware())

	wishlist.GET("", handlers.GetWishlist)
	wishlist.POST("/items", handlers.AddWishlistItem)
	wishlist.DELETE("/items/:id", handlers.RemoveWishlistItem)
	wishlist.POST("/share", handlers.ShareWishlist)

	// Public share link
	rg.GET("/shared/wishlists/:token", handlers.GetSharedWishlist)
}
