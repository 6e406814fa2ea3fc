package handlers

import (
	"net/http"

	profileRepo "habi/database/repository/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the authenticated user's profile.
type ProfileHandler struct {
	Profiles profileRepo.ProfileRepository
	Logger   *zap.Logger
}

func NewProfileHandler(profiles profileRepo.ProfileRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Logger: logger}
}

// GetProfile handles GET /api/profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	profile, err := h.Profiles.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("profile handler: lookup failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
