package handlers

import (
	profileRepoPkg "habi/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all handler functions and the repositories the route
// middleware needs.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	// Catalog endpoints
	ListCategoriesHandler      gin.HandlerFunc
	ProvidersByCategoryHandler gin.HandlerFunc
	SearchProvidersHandler     gin.HandlerFunc
	LaundryMenuHandler         gin.HandlerFunc

	// Assistant endpoints
	ChatHandler              gin.HandlerFunc
	GetConversationHandler   gin.HandlerFunc
	ClearConversationHandler gin.HandlerFunc

	// Booking endpoints
	CreateGeneralBookingHandler gin.HandlerFunc
	CreateLaundryBookingHandler gin.HandlerFunc
	UpdateBookingStatusHandler  gin.HandlerFunc
	ListMyBookingsHandler       gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler gin.HandlerFunc
}
