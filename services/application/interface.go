package application

import (
	"context"
	"time"

	applicationRepo "mentorsetu/database/repository/applications"
	"mentorsetu/models"
	"mentorsetu/services/simulation"
)

// ApplicationService manages mentor applications: submission by
// prospective mentors and review by the marketplace.
type ApplicationService interface {
	Submit(ctx context.Context, input models.ApplicationInput) (*models.ApplicationResult, error)
	GetAll(ctx context.Context) ([]models.MentorApplication, error)
	// UpdateStatus sets an application to approved or rejected.
	UpdateStatus(ctx context.Context, applicationID, status string) (*models.OperationResult, error)
}

// DefaultApplicationService implements ApplicationService.
type DefaultApplicationService struct {
	Store    applicationRepo.ApplicationStore
	Failures simulation.FailurePolicy
	Latency  simulation.LatencyPolicy
	// Now returns the current time; tests pin it. Nil means time.Now.
	Now func() time.Time
}
