package routes

import (
	"challengecards/controllers"
	"challengecards/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the bearer-token-protected console surface.
func SetupAdminRoutes(router *gin.Engine, c *controllers.Controllers, jwtSecret string) {
	// Login is the only public admin route.
	router.POST("/admin/auth/login", c.Auth.Login)

	admin := router.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(jwtSecret, c.AdminService()))
	{
		// Account management (admin role only)
		admin.POST("/auth/register", middlewares.RBACMiddleware("users", "manage"), c.Auth.Register)
		admin.GET("/auth/users", middlewares.RBACMiddleware("users", "manage"), c.Auth.ListUsers)

		content := admin.Group("", middlewares.RBACMiddleware("content", "write"))
		{
			content.POST("/modes", c.Modes.Create)
			content.GET("/modes", c.Modes.List)
			content.GET("/modes/:id", c.Modes.Get)
			content.PUT("/modes/:id", c.Modes.Update)
			content.DELETE("/modes/:id", c.Modes.Remove)

			content.POST("/packs", c.Packs.Create)
			content.GET("/packs", c.Packs.List)
			content.GET("/packs/:id", c.Packs.Get)
			content.PUT("/packs/:id", c.Packs.Update)
			content.DELETE("/packs/:id", c.Packs.Remove)

			content.POST("/cards", c.Cards.Create)
			content.POST("/cards/image", c.Cards.CreateFromImage)
			content.GET("/cards", c.Cards.List)
			content.GET("/cards/:id", c.Cards.Get)
			content.PUT("/cards/:id", c.Cards.Update)
			content.DELETE("/cards/:id", c.Cards.Remove)

			content.GET("/local-ads", c.LocalAds.List)
			content.POST("/local-ads", c.LocalAds.Create)
			content.POST("/local-ads/reorder", c.LocalAds.Reorder)
			content.PUT("/local-ads/:id", c.LocalAds.Update)
			content.PATCH("/local-ads/:id/toggle", c.LocalAds.Toggle)
			content.DELETE("/local-ads/:id", c.LocalAds.Remove)
			content.POST("/local-ads/upload-image", c.Uploads.UploadAdImage)

			content.GET("/config", c.Config.Get)
			content.PUT("/config", c.Config.Update)

			content.POST("/publish", c.Publish.Publish)

			content.POST("/uploads/card-image", c.Uploads.UploadCardImage)
		}
	}
}
