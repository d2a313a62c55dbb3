package routes

import (
	"github.com/colletro/colletro-backend/internal/handlers"
	"github.com/colletro/colletro-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.Use(middleware.AuthRateLimit())

	auth.POST("/register", middleware.RequireRegistrationOpen(), handlers.Register)
	auth.POST("/login", handlers.Login)
	auth.POST("/logout", handlers.Logout)
	auth.GET("/me", middleware.AuthMiddleware(), handlers.GetProfile)
	auth.GET("/verify-email", handlers.VerifyEmail)

	// OAuth
	auth.GET("/google/login", handlers.GoogleLogin)
	auth.GET("/google/callback", handlers.GoogleCallback)
}
