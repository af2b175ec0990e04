package bookingRepo

import (
	"context"
	"testing"

	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/database/seed"
	"mentorsetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSeedsEmptyStore(t *testing.T) {
	store := NewKVBookingStore(kvstore.NewMemoryStore(), seed.Bookings())
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))

	bookings, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 3)
	assert.Equal(t, "booking-1", bookings[0].ID)
}

func TestInitializeIsIdempotent(t *testing.T) {
	store := NewKVBookingStore(kvstore.NewMemoryStore(), seed.Bookings())
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	bookings, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 3, "double initialization must not duplicate seed records")
}

func TestInitializeKeepsExistingData(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	first := NewKVBookingStore(kv, seed.Bookings())
	require.NoError(t, first.Initialize(ctx))

	bookings, err := first.ReadAll(ctx)
	require.NoError(t, err)
	bookings[0].Status = models.BookingStatusCancelled
	require.NoError(t, first.WriteAll(ctx, bookings))

	// A new store on the same backend must not reset the collection.
	second := NewKVBookingStore(kv, seed.Bookings())
	require.NoError(t, second.Initialize(ctx))

	after, err := second.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, after[0].Status)
}

func TestReadAllOnMissingCollection(t *testing.T) {
	store := NewKVBookingStore(kvstore.NewMemoryStore(), nil)

	bookings, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store := NewKVBookingStore(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	records := []models.BookingSession{
		{
			ID:          "booking-a",
			MentorID:    "6",
			MentorName:  "David Wilson",
			StudentName: "Jane Roe",
			StudentMail: "jane@example.com",
			Date:        "2024-06-01",
			Time:        "08:00",
			Reason:      "Cloud migration plan",
			Status:      models.BookingStatusUpcoming,
			Amount:      170,
			SessionType: models.SessionTypePhone,
		},
		{
			ID:          "booking-b",
			MentorID:    "5",
			MentorName:  "Angela Kim",
			StudentName: "Jane Roe",
			StudentMail: "jane@example.com",
			Date:        "2024-06-02",
			Time:        "18:00",
			Reason:      "Launch campaign review",
			Status:      models.BookingStatusCancelled,
			Amount:      140,
			SessionType: models.SessionTypeChat,
		},
	}
	require.NoError(t, store.WriteAll(ctx, records))

	got, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got, "serialization must be lossless")
}
