package booking

import (
	"context"
	"fmt"
	"time"

	"mentorsetu/models"
)

// slotLayout parses the stored date and time strings as one instant.
const slotLayout = "2006-01-02 15:04"

// CompletePastSessions transitions upcoming bookings whose scheduled slot
// has passed to completed, and returns how many were transitioned. Records
// with unparseable slots are left alone. Internal maintenance operation:
// no latency or failure simulation applies.
func (svc *DefaultBookingSessionService) CompletePastSessions(ctx context.Context, now time.Time) (int, error) {
	bookings, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read bookings: %w", err)
	}

	completed := 0
	for i, b := range bookings {
		if b.Status != models.BookingStatusUpcoming {
			continue
		}
		slot, err := time.ParseInLocation(slotLayout, b.Date+" "+b.Time, now.Location())
		if err != nil {
			continue
		}
		if slot.Before(now) {
			bookings[i].Status = models.BookingStatusCompleted
			completed++
		}
	}

	if completed == 0 {
		return 0, nil
	}
	if err := svc.Store.WriteAll(ctx, bookings); err != nil {
		return 0, fmt.Errorf("failed to persist completed sessions: %w", err)
	}
	return completed, nil
}
