package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ThePeregrineCo/carstarz-registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Event ingestion (open; callers are trusted chain infrastructure)
		v1.POST("/blockchain-events", handler.IngestEvent)
		v1.GET("/blockchain-events", handler.SweepPendingEvents)
		v1.GET("/blockchain-events/:id", handler.GetEvent)

		// Failed-event reset (requires authentication)
		v1.POST("/blockchain-events/reset", middleware.Auth(authCfg), handler.ResetFailedEvents)

		// Mint confirmation from the minting client
		v1.POST("/process-events", handler.ServerMint)

		// Identity profiles (writes carry the caller wallet in a header)
		v1.POST("/profiles", middleware.RequireWallet(), handler.CreateProfile)
		v1.GET("/profiles", handler.GetProfile)
		v1.GET("/profiles/:id", handler.GetProfileByID)
		v1.PATCH("/profiles/:id", middleware.RequireWallet(), handler.UpdateProfile)

		// Follow graph
		v1.POST("/follows", middleware.RequireWallet(), handler.Follow)
		v1.DELETE("/follows/:wallet", middleware.RequireWallet(), handler.Unfollow)
		v1.GET("/follows", handler.ListFollows)

		// Vehicle profiles (writes are ownership-gated in the service layer)
		v1.GET("/vehicles", handler.ListVehicles)
		v1.POST("/vehicles", middleware.RequireWallet(), handler.CreateVehicle)
		v1.GET("/vehicles/:token_id", handler.GetVehicle)
		v1.PATCH("/vehicles/:token_id", middleware.RequireWallet(), handler.UpdateVehicle)
		v1.POST("/vehicles/:token_id/transfer", middleware.RequireWallet(), handler.TransferVehicle)

		// Vehicle media
		v1.GET("/vehicles/:token_id/media", handler.ListMedia)
		v1.POST("/vehicles/:token_id/media", middleware.RequireWallet(), handler.AddMedia)
		v1.DELETE("/vehicles/:token_id/media/:media_id", middleware.RequireWallet(), handler.DeleteMedia)
	}
}
