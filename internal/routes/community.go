package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterCommunityRoutes(rg *gin.RouterGroup) {
	community := rg.Group("/community")
	community.Use(middleware.RequireCommunityEnabled())

	// Browsing works anonymously; upvote state resolves when a token is sent
	community.GET("", middleware.OptionalAuthMiddleware(), handlers.ListCommunityCollections)
	community.GET("/:id", middleware.OptionalAuthMiddleware(), handlers.GetCommunityCollection)

	authed := community.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.POST("", handlers.PublishCollection)
	authed.PATCH("/:id", handlers.UpdateCommunityCollection)
	authed.DELETE("/:id", handlers.DeleteCommunityCollection)
	authed.POST("/:id/upvote", handlers.UpvoteCollection)
	authed.DELETE("/:id/upvote", handlers.RemoveUpvote)
}
