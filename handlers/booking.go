package handlers

import (
	"errors"
	"net/http"

	"habi/models"
	"habi/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking submission and lifecycle endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateGeneral handles POST /api/bookings.
func (h *BookingHandler) CreateGeneral(c *gin.Context) {
	var in models.GeneralBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Svc.SubmitGeneral(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// CreateLaundry handles POST /api/bookings/laundry.
func (h *BookingHandler) CreateLaundry(c *gin.Context) {
	var in models.LaundryBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Svc.SubmitLaundry(c.Request.Context(), c.GetString("userID"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ListMine handles GET /api/bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListForClient(c.Request.Context(), c.GetString("userID")))
}

// LaundryMenu handles GET /api/services/laundry.
func (h *BookingHandler) LaundryMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.LaundryMenu(c.Request.Context()))
}

// respondError maps service errors onto HTTP responses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}
	if errors.Is(err, booking.ErrNotAuthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": booking.ErrNotAuthenticated.Message})
		return
	}
	var bErr *booking.BookingError
	if errors.As(err, &bErr) {
		status := http.StatusInternalServerError
		if bErr.Code == "providerNotFound" {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": bErr.Message})
		return
	}
	h.Logger.Error("booking handler: unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking. Please try again."})
}
