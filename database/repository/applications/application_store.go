package applicationRepo

import (
	"context"
	"encoding/json"
	"fmt"

	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/models"
)

// KVApplicationStore implements ApplicationStore over a KeyValueStore.
type KVApplicationStore struct {
	kv   kvstore.KeyValueStore
	seed []models.MentorApplication
}

// NewKVApplicationStore creates an ApplicationStore on the given backend.
// seed is written on first access; pass nil to start empty.
func NewKVApplicationStore(kv kvstore.KeyValueStore, seed []models.MentorApplication) *KVApplicationStore {
	return &KVApplicationStore{kv: kv, seed: seed}
}

// Initialize seeds the collection if it does not exist yet.
func (s *KVApplicationStore) Initialize(ctx context.Context) error {
	_, exists, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to probe application collection: %w", err)
	}
	if exists {
		return nil
	}
	return s.WriteAll(ctx, s.seed)
}

// ReadAll returns every stored application in insertion order.
func (s *KVApplicationStore) ReadAll(ctx context.Context) ([]models.MentorApplication, error) {
	raw, exists, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read application collection: %w", err)
	}
	if !exists {
		return []models.MentorApplication{}, nil
	}

	var applications []models.MentorApplication
	if err := json.Unmarshal(raw, &applications); err != nil {
		return nil, fmt.Errorf("failed to decode application collection: %w", err)
	}
	return applications, nil
}

// WriteAll overwrites the stored collection.
func (s *KVApplicationStore) WriteAll(ctx context.Context, applications []models.MentorApplication) error {
	if applications == nil {
		applications = []models.MentorApplication{}
	}
	raw, err := json.Marshal(applications)
	if err != nil {
		return fmt.Errorf("failed to encode application collection: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("failed to write application collection: %w", err)
	}
	return nil
}
