package routes

import (
	"net/http"
	"time"

	"habi/handlers"
	"habi/middleware"
	"habi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/categories", hb.ListCategoriesHandler)
		api.GET("/providers", hb.ProvidersByCategoryHandler)
		api.GET("/search", hb.SearchProvidersHandler)
		api.GET("/laundry", hb.LaundryMenuHandler)
	}
}

// RegisterAssistantRoutes registers the chat assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.ProfileRepo))
		api.POST("/chat", hb.ChatHandler)
		api.GET("/conversation", hb.GetConversationHandler)
		api.DELETE("/conversation", hb.ClearConversationHandler)
	}
}

// RegisterBookingRoutes registers the booking submission and listing endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.ProfileRepo))
		api.POST("", hb.CreateGeneralBookingHandler)
		api.POST("/laundry", hb.CreateLaundryBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoint.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.ProfileRepo))
		api.GET("", hb.GetProfileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterHealthRoute(r)
}
