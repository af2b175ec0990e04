package mentor

import (
	"context"
	"strings"
	"time"

	"mentorsetu/models"
)

// Simulated latencies per catalog operation.
const (
	listDelay   = 500 * time.Millisecond
	getDelay    = 300 * time.Millisecond
	searchDelay = 400 * time.Millisecond
)

// GetMentors returns the full catalog.
func (svc *DefaultCatalogService) GetMentors(ctx context.Context) ([]models.Mentor, error) {
	if err := svc.Latency.Wait(ctx, listDelay); err != nil {
		return nil, err
	}

	out := make([]models.Mentor, len(svc.Catalog))
	copy(out, svc.Catalog)
	return out, nil
}

// GetMentorByID returns the matching mentor, or nil if none matches.
func (svc *DefaultCatalogService) GetMentorByID(ctx context.Context, id string) (*models.Mentor, error) {
	if err := svc.Latency.Wait(ctx, getDelay); err != nil {
		return nil, err
	}

	for _, m := range svc.Catalog {
		if m.ID == id {
			mentor := m
			return &mentor, nil
		}
	}
	return nil, nil
}

// Search filters the catalog. Absent filters (zero values) are skipped;
// present ones must all match.
func (svc *DefaultCatalogService) Search(ctx context.Context, filters models.SearchFilters) ([]models.Mentor, error) {
	if err := svc.Latency.Wait(ctx, searchDelay); err != nil {
		return nil, err
	}

	filtered := make([]models.Mentor, 0, len(svc.Catalog))
	for _, m := range svc.Catalog {
		if matchesFilters(m, filters) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func matchesFilters(m models.Mentor, filters models.SearchFilters) bool {
	if filters.Category != "" && !anyTagContains(m.Expertise, filters.Category) {
		return false
	}
	if filters.MinRating > 0 && m.Rating < filters.MinRating {
		return false
	}
	if filters.MaxPrice > 0 && m.Price > filters.MaxPrice {
		return false
	}
	if filters.Query != "" {
		query := strings.ToLower(filters.Query)
		if !strings.Contains(strings.ToLower(m.Name), query) &&
			!strings.Contains(strings.ToLower(m.Bio), query) &&
			!anyTagContains(m.Expertise, query) {
			return false
		}
	}
	return true
}

// anyTagContains reports whether any expertise tag contains needle,
// case-insensitively.
func anyTagContains(tags []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
