package models

// Application status values. An application starts pending; approved and
// rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// MentorApplication is a submission from a prospective mentor requesting
// approval to join the marketplace.
type MentorApplication struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Experience   string   `json:"experience"`
	Expertise    []string `json:"expertise"`
	Bio          string   `json:"bio"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	HourlyRate   int      `json:"hourlyRate"`
	Availability string   `json:"availability"`
	Languages    []string `json:"languages"`
	Timezone     string   `json:"timezone"`
	Motivation   string   `json:"motivation"`
	Status       string   `json:"status"`
	AppliedAt    string   `json:"appliedAt"` // "YYYY-MM-DD"
}

// ApplicationInput carries the client-supplied fields of a new mentor
// application. ID, status and appliedAt are assigned by the service.
type ApplicationInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Experience   string   `json:"experience"`
	Expertise    []string `json:"expertise"`
	Bio          string   `json:"bio"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	HourlyRate   int      `json:"hourlyRate"`
	Availability string   `json:"availability"`
	Languages    []string `json:"languages"`
	Timezone     string   `json:"timezone"`
	Motivation   string   `json:"motivation"`
}

// ApplicationResult is returned by application mutations.
type ApplicationResult struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId,omitempty"`
	Error         string `json:"error,omitempty"`
}
