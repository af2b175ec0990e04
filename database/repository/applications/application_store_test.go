package applicationRepo

import (
	"context"
	"testing"

	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/database/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeIsIdempotent(t *testing.T) {
	store := NewKVApplicationStore(kvstore.NewMemoryStore(), seed.Applications())
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))
	require.NoError(t, store.Initialize(ctx))

	applications, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "app-1", applications[0].ID)
}

func TestRoundTripPreservesAllFields(t *testing.T) {
	store := NewKVApplicationStore(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	records := seed.Applications()
	require.NoError(t, store.WriteAll(ctx, records))

	got, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
