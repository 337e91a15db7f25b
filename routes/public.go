package routes

import (
	"challengecards/controllers"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes registers the read-only, unauthenticated surface mobile
// clients consume.
func SetupPublicRoutes(router *gin.Engine, c *controllers.Controllers) {
	public := router.Group("/public")
	{
		public.GET("/modes", c.Modes.ListPublic)
		public.GET("/packs", c.Packs.ListPublic)
		public.GET("/packs/:id", c.Packs.GetPublic)
		public.GET("/cards", c.Cards.ListPublic)
		public.GET("/cards/:id", c.Cards.GetPublic)
		public.GET("/config", c.Config.Get)
		public.GET("/local-ads", c.LocalAds.ListPublic)
	}
}
