package routes

import (
	"net/http"
	"time"

	"ablecare/handlers"
	"ablecare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// registerResourceRoutes mounts the admin CRUD endpoints for one resource
// kind under the given group.
func registerResourceRoutes(group *gin.RouterGroup, h *handlers.ResourceHandler) {
	group.GET("", h.ListHandler)
	group.POST("", h.CreateHandler)
	group.PUT("/:id", h.UpdateHandler)
	group.DELETE("/:id", h.DeleteHandler)
}

// RegisterAdminRoutes sets up the authenticated admin endpoints. The token
// check runs before any handler.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.POST("/auth/login", hb.Auth.LoginHandler)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware())
	{
		registerResourceRoutes(protected.Group("/services"), hb.Services)
		registerResourceRoutes(protected.Group("/support-models"), hb.SupportModels)

		protected.GET("/profile", hb.Auth.GetProfileHandler)
		protected.PUT("/profile", hb.Auth.UpdateProfileHandler)
		protected.PUT("/profile/password", hb.Auth.ChangePasswordHandler)

		protected.GET("/banners", hb.Banners.ListHandler)
		protected.POST("/banners", hb.Banners.CreateHandler)
		protected.PUT("/banners/:id", hb.Banners.UpdateHandler)
		protected.DELETE("/banners/:id", hb.Banners.DeleteHandler)

		protected.GET("/settings", hb.Site.GetSettingsHandler)
		protected.PUT("/settings", hb.Site.SaveSettingsHandler)
		protected.GET("/contact", hb.Site.GetContactHandler)
		protected.PUT("/contact", hb.Site.SaveContactHandler)
		protected.GET("/seo/:page", hb.Site.GetSEOPageHandler)
		protected.PUT("/seo/:page", hb.Site.SaveSEOPageHandler)
	}
}

// RegisterPublicRoutes sets up the unauthenticated read-only endpoints the
// marketing site consumes.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.PublicServices.ListHandler)
		api.GET("/services/:slug", hb.PublicServices.GetBySlugHandler)
		api.GET("/support-models", hb.PublicSupportModels.ListHandler)
		api.GET("/support-models/:slug", hb.PublicSupportModels.GetBySlugHandler)
		api.GET("/banners", hb.Banners.PublicListHandler)
		api.GET("/settings", hb.Site.GetSettingsHandler)
		api.GET("/contact", hb.Site.GetContactHandler)
		api.GET("/seo/:page", hb.Site.GetSEOPageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
