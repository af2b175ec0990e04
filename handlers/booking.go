package handlers

import (
	"net/http"

	"mentorsetu/models"
	"mentorsetu/services/booking"
	"mentorsetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Bookings booking.BookingSessionService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookings booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// bookingStatusCode maps a failed result's error string to an HTTP status.
func bookingStatusCode(result string) int {
	switch result {
	case "Missing required fields":
		return http.StatusBadRequest
	case "Booking not found":
		return http.StatusNotFound
	case "Booking slot is no longer available",
		"Only upcoming bookings can be rescheduled":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// BookSessionHandler creates a new booking.
func (h *BookingHandler) BookSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Bookings.BookSession(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to book session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book session"})
		return
	}
	if !result.Success {
		c.JSON(bookingStatusCode(result.Error), result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListBookingsHandler returns the bookings of one student.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	studentEmail := c.Query("studentEmail")
	if studentEmail == "" {
		utils.JSONError(c, http.StatusBadRequest, "studentEmail query parameter is required", "")
		return
	}

	bookings, err := h.Bookings.GetBookings(c.Request.Context(), studentEmail)
	if err != nil {
		logger.Error("Failed to retrieve bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler cancels a booking by id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	result, err := h.Bookings.CancelBooking(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to cancel booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		return
	}
	if !result.Success {
		c.JSON(bookingStatusCode(result.Error), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RescheduleBookingHandler moves an upcoming booking to a new slot.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var input struct {
		NewDate string `json:"newDate"`
		NewTime string `json:"newTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Bookings.RescheduleBooking(c.Request.Context(), id, input.NewDate, input.NewTime)
	if err != nil {
		logger.Error("Failed to reschedule booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule booking"})
		return
	}
	if !result.Success {
		c.JSON(bookingStatusCode(result.Error), result)
		return
	}
	c.JSON(http.StatusOK, result)
}
