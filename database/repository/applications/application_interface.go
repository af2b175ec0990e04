package applicationRepo

import (
	"context"

	"mentorsetu/models"
)

// StorageKey is the fixed key the application collection is stored under.
const StorageKey = "mentorsetu_applications"

// ApplicationStore defines persisted access to the mentor application
// collection, with the same whole-collection contract as BookingStore.
type ApplicationStore interface {
	// Initialize seeds the collection on first-ever access. Idempotent.
	Initialize(ctx context.Context) error
	// ReadAll returns all applications in insertion order.
	ReadAll(ctx context.Context) ([]models.MentorApplication, error)
	// WriteAll fully overwrites the stored collection.
	WriteAll(ctx context.Context, applications []models.MentorApplication) error
}
