package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	applicationRepo "mentorsetu/database/repository/applications"
	bookingRepo "mentorsetu/database/repository/bookings"
	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/database/seed"
	"mentorsetu/models"
	"mentorsetu/services/application"
	"mentorsetu/services/booking"
	"mentorsetu/services/mentor"
	"mentorsetu/services/payment"
	"mentorsetu/services/simulation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := kvstore.NewMemoryStore()
	bookingStore := bookingRepo.NewKVBookingStore(kv, seed.Bookings())
	applicationStore := applicationRepo.NewKVApplicationStore(kv, seed.Applications())
	require.NoError(t, bookingStore.Initialize(context.Background()))
	require.NoError(t, applicationStore.Initialize(context.Background()))

	bundle := &HandlerBundle{
		Mentor: NewMentorHandler(&mentor.DefaultCatalogService{
			Catalog: seed.Mentors(),
			Latency: simulation.NoLatency{},
		}),
		Booking: NewBookingHandler(&booking.DefaultBookingSessionService{
			Store:    bookingStore,
			Failures: simulation.NoFailurePolicy{},
			Latency:  simulation.NoLatency{},
		}),
		Payment: NewPaymentHandler(&payment.DefaultPaymentService{
			Failures: simulation.NoFailurePolicy{},
			Latency:  simulation.NoLatency{},
		}),
		Application: NewApplicationHandler(&application.DefaultApplicationService{
			Store:    applicationStore,
			Failures: simulation.NoFailurePolicy{},
			Latency:  simulation.NoLatency{},
		}),
	}

	r := gin.New()
	r.GET("/api/mentors", bundle.Mentor.ListMentorsHandler)
	r.GET("/api/mentors/search", bundle.Mentor.SearchMentorsHandler)
	r.GET("/api/mentors/:id", bundle.Mentor.GetMentorHandler)
	r.POST("/api/bookings", bundle.Booking.BookSessionHandler)
	r.GET("/api/bookings", bundle.Booking.ListBookingsHandler)
	r.DELETE("/api/bookings/:id", bundle.Booking.CancelBookingHandler)
	r.PUT("/api/bookings/:id/reschedule", bundle.Booking.RescheduleBookingHandler)
	r.POST("/api/payments", bundle.Payment.ProcessPaymentHandler)
	r.POST("/api/applications", bundle.Application.SubmitApplicationHandler)
	r.GET("/api/applications", bundle.Application.ListApplicationsHandler)
	r.PATCH("/api/applications/:id/status", bundle.Application.UpdateApplicationStatusHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListMentorsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/mentors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mentors []models.Mentor `json:"mentors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Mentors, 6)
}

func TestGetMentorEndpointNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/mentors/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchMentorsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/mentors/search?maxPrice=140", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mentors []models.Mentor `json:"mentors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Mentors, 2)
	assert.Equal(t, "Marcus Rodriguez", resp.Mentors[0].Name)
}

func TestBookSessionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	input := models.BookingInput{
		MentorID:    "1",
		MentorName:  "Sarah Chen",
		StudentName: "Jane Roe",
		StudentMail: "jane@example.com",
		Date:        "2024-03-01",
		Time:        "09:00",
		Amount:      150,
		SessionType: models.SessionTypeVideo,
	}
	w := doJSON(t, r, http.MethodPost, "/api/bookings", input)
	require.Equal(t, http.StatusCreated, w.Code)

	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.BookingID)
}

func TestBookSessionEndpointValidation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", models.BookingInput{
		MentorID: "1",
		Date:     "2024-03-01",
		Time:     "09:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var result models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Missing required fields", result.Error)
}

func TestListBookingsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?studentEmail=john@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bookings []models.BookingSession `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 3)

	missing := doJSON(t, r, http.MethodGet, "/api/bookings", nil)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestCancelBookingEndpointNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/bookings/booking-999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRescheduleEndpointConflict(t *testing.T) {
	r := newTestRouter(t)

	// booking-2 is completed and must not be reschedulable.
	w := doJSON(t, r, http.MethodPut, "/api/bookings/booking-2/reschedule", gin.H{
		"newDate": "2024-03-10",
		"newTime": "16:30",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var result models.OperationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Only upcoming bookings can be rescheduled", result.Error)
}

func TestProcessPaymentEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/payments", gin.H{"amount": 150, "method": "card"})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TransactionID)
}

func TestApplicationEndpoints(t *testing.T) {
	r := newTestRouter(t)

	submit := doJSON(t, r, http.MethodPost, "/api/applications", models.ApplicationInput{
		Name:     "Dana Lee",
		Email:    "dana@example.com",
		Company:  "Stripe",
		Position: "Staff Engineer",
	})
	require.Equal(t, http.StatusCreated, submit.Code)

	list := doJSON(t, r, http.MethodGet, "/api/applications", nil)
	require.Equal(t, http.StatusOK, list.Code)

	var resp struct {
		Applications []models.MentorApplication `json:"applications"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	assert.Len(t, resp.Applications, 2)

	update := doJSON(t, r, http.MethodPatch, "/api/applications/app-1/status", gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, update.Code)

	invalid := doJSON(t, r, http.MethodPatch, "/api/applications/app-1/status", gin.H{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
}
