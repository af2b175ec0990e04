package booking

import (
	"context"
	"fmt"
	"time"

	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Simulated latencies per booking operation.
const (
	bookDelay       = 800 * time.Millisecond
	listDelay       = 400 * time.Millisecond
	cancelDelay     = 500 * time.Millisecond
	rescheduleDelay = 500 * time.Millisecond
)

// bookFailureRate is the injected chance that a booking attempt loses its
// slot, emulating an availability race.
const bookFailureRate = 0.10

// User-facing error strings carried in result structs.
const (
	errMissingFields    = "Missing required fields"
	errSlotUnavailable  = "Booking slot is no longer available"
	errBookingNotFound  = "Booking not found"
	errNotReschedulable = "Only upcoming bookings can be rescheduled"
)

// BookSession validates the input, applies failure injection, then appends
// a new upcoming booking to the store.
func (svc *DefaultBookingSessionService) BookSession(ctx context.Context, input models.BookingInput) (*models.BookingResult, error) {
	if err := svc.Latency.Wait(ctx, bookDelay); err != nil {
		return nil, err
	}

	if input.StudentName == "" || input.StudentMail == "" || input.Date == "" || input.Time == "" {
		return &models.BookingResult{Success: false, Error: errMissingFields}, nil
	}

	if svc.Failures.ShouldFail(simulation.OpBookSession, bookFailureRate) {
		return &models.BookingResult{Success: false, Error: errSlotUnavailable}, nil
	}

	newBooking := models.BookingSession{
		ID:          newBookingID(),
		MentorID:    input.MentorID,
		MentorName:  input.MentorName,
		StudentName: input.StudentName,
		StudentMail: input.StudentMail,
		Date:        input.Date,
		Time:        input.Time,
		Reason:      input.Reason,
		Status:      models.BookingStatusUpcoming,
		Amount:      input.Amount,
		SessionType: input.SessionType,
	}

	bookings, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}
	bookings = append(bookings, newBooking)
	if err := svc.Store.WriteAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if svc.Reminders != nil {
		// Reminders are best effort; a queue outage must not fail the booking.
		if err := svc.Reminders.ScheduleSessionReminder(ctx, newBooking); err != nil && svc.Logger != nil {
			svc.Logger.Warn("failed to schedule session reminder",
				zap.String("bookingId", newBooking.ID), zap.Error(err))
		}
	}

	return &models.BookingResult{Success: true, BookingID: newBooking.ID}, nil
}

// GetBookings returns the bookings whose student email exactly matches.
func (svc *DefaultBookingSessionService) GetBookings(ctx context.Context, studentEmail string) ([]models.BookingSession, error) {
	if err := svc.Latency.Wait(ctx, listDelay); err != nil {
		return nil, err
	}

	all, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	matched := make([]models.BookingSession, 0, len(all))
	for _, b := range all {
		if b.StudentMail == studentEmail {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// CancelBooking marks the booking cancelled. The transition is applied
// unconditionally, matching the historical behavior of the system.
func (svc *DefaultBookingSessionService) CancelBooking(ctx context.Context, bookingID string) (*models.OperationResult, error) {
	if err := svc.Latency.Wait(ctx, cancelDelay); err != nil {
		return nil, err
	}

	bookings, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	idx := findBooking(bookings, bookingID)
	if idx < 0 {
		return &models.OperationResult{Success: false, Error: errBookingNotFound}, nil
	}

	bookings[idx].Status = models.BookingStatusCancelled
	if err := svc.Store.WriteAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to persist cancellation: %w", err)
	}
	return &models.OperationResult{Success: true}, nil
}

// RescheduleBooking moves an upcoming booking to a new date and time.
// Completed and cancelled bookings are terminal and cannot move.
func (svc *DefaultBookingSessionService) RescheduleBooking(ctx context.Context, bookingID, newDate, newTime string) (*models.OperationResult, error) {
	if err := svc.Latency.Wait(ctx, rescheduleDelay); err != nil {
		return nil, err
	}

	bookings, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	idx := findBooking(bookings, bookingID)
	if idx < 0 {
		return &models.OperationResult{Success: false, Error: errBookingNotFound}, nil
	}
	if bookings[idx].Status != models.BookingStatusUpcoming {
		return &models.OperationResult{Success: false, Error: errNotReschedulable}, nil
	}

	bookings[idx].Date = newDate
	bookings[idx].Time = newTime
	if err := svc.Store.WriteAll(ctx, bookings); err != nil {
		return nil, fmt.Errorf("failed to persist reschedule: %w", err)
	}
	return &models.OperationResult{Success: true}, nil
}

func findBooking(bookings []models.BookingSession, id string) int {
	for i, b := range bookings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// newBookingID generates a unique, time-ordered booking identifier.
func newBookingID() string {
	return fmt.Sprintf("booking-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
