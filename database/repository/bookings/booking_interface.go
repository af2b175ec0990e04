package bookingRepo

import (
	"context"

	"mentorsetu/models"
)

// StorageKey is the fixed key the booking collection is stored under.
const StorageKey = "mentorsetu_bookings"

// BookingStore defines persisted access to the booking collection. The
// collection is read and written whole; callers own the read-modify-write
// cycle and must call Initialize before any read or write.
type BookingStore interface {
	// Initialize seeds the collection on first-ever access. Idempotent.
	Initialize(ctx context.Context) error
	// ReadAll returns all bookings in insertion order.
	ReadAll(ctx context.Context) ([]models.BookingSession, error)
	// WriteAll fully overwrites the stored collection.
	WriteAll(ctx context.Context, bookings []models.BookingSession) error
}
