package routes

import (
	"net/http"
	"time"

	"mentorsetu/handlers"
	"mentorsetu/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMentorRoutes registers mentor directory endpoints.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentors")
	{
		api.GET("", hb.Mentor.ListMentorsHandler)
		api.GET("/search", hb.Mentor.SearchMentorsHandler)
		api.GET("/:id", hb.Mentor.GetMentorHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.BookSessionHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.DELETE("/:id", hb.Booking.CancelBookingHandler)
		api.PUT("/:id/reschedule", hb.Booking.RescheduleBookingHandler)
	}
}

// RegisterPaymentRoutes registers the payment simulation endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/payments", hb.Payment.ProcessPaymentHandler)
}

// RegisterApplicationRoutes registers mentor application endpoints.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.POST("", hb.Application.SubmitApplicationHandler)
		api.GET("", hb.Application.ListApplicationsHandler)
		api.PATCH("/:id/status", hb.Application.UpdateApplicationStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
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
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMentorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterHealthRoute(r)
}
