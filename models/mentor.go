package models

// Mentor represents a published mentor profile. The catalog is immutable
// seed data; the service layer never mutates it.
type Mentor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Expertise    []string `json:"expertise"`
	Bio          string   `json:"bio"`
	AboutFull    string   `json:"aboutFull"`
	Rating       float64  `json:"rating"`      // 0-5
	ReviewCount  int      `json:"reviewCount"`
	Price        int      `json:"price"` // per-session price
	Experience   string   `json:"experience"`
	Avatar       string   `json:"avatar"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Sessions     int      `json:"sessions"`
	ResponseTime string   `json:"responseTime"`
	Languages    []string `json:"languages"`
	Education    string   `json:"education"`
}

// SearchFilters narrows the mentor catalog. Every field is optional;
// filters present are combined with AND.
type SearchFilters struct {
	Category  string  `json:"category,omitempty" form:"category"`
	MinRating float64 `json:"minRating,omitempty" form:"minRating"`
	MaxPrice  int     `json:"maxPrice,omitempty" form:"maxPrice"`
	Query     string  `json:"query,omitempty" form:"query"`
}
