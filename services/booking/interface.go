package booking

import (
	"context"
	"time"

	bookingRepo "mentorsetu/database/repository/bookings"
	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"go.uber.org/zap"
)

// BookingSessionService manages the booking lifecycle. Expected failures
// (validation, not-found, state conflicts, injected unavailability) come
// back inside the result structs; a non-nil error means storage itself
// failed.
type BookingSessionService interface {
	BookSession(ctx context.Context, input models.BookingInput) (*models.BookingResult, error)
	// GetBookings returns all bookings whose student email exactly matches
	// the argument, in storage order. Email equality is the only access
	// filter there is.
	GetBookings(ctx context.Context, studentEmail string) ([]models.BookingSession, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.OperationResult, error)
	RescheduleBooking(ctx context.Context, bookingID, newDate, newTime string) (*models.OperationResult, error)
	// CompletePastSessions transitions upcoming bookings whose slot has
	// passed to completed. Driven by the background worker.
	CompletePastSessions(ctx context.Context, now time.Time) (int, error)
}

// ReminderScheduler enqueues a session reminder for a confirmed booking.
// Optional; a nil scheduler disables reminders.
type ReminderScheduler interface {
	ScheduleSessionReminder(ctx context.Context, b models.BookingSession) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store     bookingRepo.BookingStore
	Failures  simulation.FailurePolicy
	Latency   simulation.LatencyPolicy
	Reminders ReminderScheduler
	Logger    *zap.Logger
}
