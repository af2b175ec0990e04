package mentor

import (
	"context"

	"mentorsetu/models"
	"mentorsetu/services/simulation"
)

// CatalogService exposes the published mentor directory. The catalog is
// read-only; queries carry the simulated latency of a backend call but no
// failure injection.
type CatalogService interface {
	GetMentors(ctx context.Context) ([]models.Mentor, error)
	// GetMentorByID returns nil (and no error) when no mentor matches.
	GetMentorByID(ctx context.Context, id string) (*models.Mentor, error)
	Search(ctx context.Context, filters models.SearchFilters) ([]models.Mentor, error)
}

// DefaultCatalogService implements CatalogService over an in-memory catalog.
type DefaultCatalogService struct {
	Catalog []models.Mentor
	Latency simulation.LatencyPolicy
}
