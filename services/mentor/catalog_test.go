package mentor

import (
	"context"
	"testing"

	"mentorsetu/database/seed"
	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *DefaultCatalogService {
	return &DefaultCatalogService{
		Catalog: seed.Mentors(),
		Latency: simulation.NoLatency{},
	}
}

func TestGetMentorsReturnsFullCatalog(t *testing.T) {
	svc := newCatalog()

	mentors, err := svc.GetMentors(context.Background())
	require.NoError(t, err)
	assert.Len(t, mentors, 6)
	assert.Equal(t, "Sarah Chen", mentors[0].Name)
}

func TestGetMentorByID(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	m, err := svc.GetMentorByID(ctx, "3")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "Dr. Priya Patel", m.Name)

	missing, err := svc.GetMentorByID(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSearchMentors(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	tests := []struct {
		name    string
		filters models.SearchFilters
		wantIDs []string
	}{
		{
			name:    "no filters returns everyone",
			filters: models.SearchFilters{},
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "category matches expertise substring case-insensitively",
			filters: models.SearchFilters{Category: "design"},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "min rating is inclusive",
			filters: models.SearchFilters{MinRating: 4.9},
			wantIDs: []string{"1", "3", "6"},
		},
		{
			name:    "max price is inclusive",
			filters: models.SearchFilters{MaxPrice: 140},
			wantIDs: []string{"2", "5"},
		},
		{
			name:    "query matches name",
			filters: models.SearchFilters{Query: "priya"},
			wantIDs: []string{"3"},
		},
		{
			name:    "query matches bio",
			filters: models.SearchFilters{Query: "netflix"},
			wantIDs: []string{"2"},
		},
		{
			name:    "query matches expertise tag",
			filters: models.SearchFilters{Query: "devops"},
			wantIDs: []string{"6"},
		},
		{
			name:    "filters combine with AND",
			filters: models.SearchFilters{Category: "machine learning", MinRating: 4.9, MaxPrice: 180},
			wantIDs: []string{"3"},
		},
		{
			name:    "conflicting filters match nothing",
			filters: models.SearchFilters{Category: "devops", MaxPrice: 120},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mentors, err := svc.Search(ctx, tt.filters)
			require.NoError(t, err)

			ids := make([]string, 0, len(mentors))
			for _, m := range mentors {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
