package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"

	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/models"
)

// KVBookingStore implements BookingStore over a KeyValueStore. The
// collection is serialized as one JSON array under StorageKey.
type KVBookingStore struct {
	kv   kvstore.KeyValueStore
	seed []models.BookingSession
}

// NewKVBookingStore creates a BookingStore on the given backend. seed is
// written on first access; pass nil to start empty.
func NewKVBookingStore(kv kvstore.KeyValueStore, seed []models.BookingSession) *KVBookingStore {
	return &KVBookingStore{kv: kv, seed: seed}
}

// Initialize seeds the collection if it does not exist yet.
func (s *KVBookingStore) Initialize(ctx context.Context) error {
	_, exists, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to probe booking collection: %w", err)
	}
	if exists {
		return nil
	}
	return s.WriteAll(ctx, s.seed)
}

// ReadAll returns every stored booking in insertion order.
func (s *KVBookingStore) ReadAll(ctx context.Context) ([]models.BookingSession, error) {
	raw, exists, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking collection: %w", err)
	}
	if !exists {
		return []models.BookingSession{}, nil
	}

	var bookings []models.BookingSession
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode booking collection: %w", err)
	}
	return bookings, nil
}

// WriteAll overwrites the stored collection.
func (s *KVBookingStore) WriteAll(ctx context.Context, bookings []models.BookingSession) error {
	if bookings == nil {
		bookings = []models.BookingSession{}
	}
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode booking collection: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("failed to write booking collection: %w", err)
	}
	return nil
}
