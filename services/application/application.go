package application

import (
	"context"
	"fmt"
	"time"

	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"github.com/google/uuid"
)

// Simulated latencies per application operation.
const (
	submitDelay = 1000 * time.Millisecond
	listDelay   = 400 * time.Millisecond
	updateDelay = 500 * time.Millisecond
)

// submitFailureRate is the injected chance that a submission is lost.
const submitFailureRate = 0.05

const (
	errMissingFields       = "Missing required fields"
	errSubmissionFailed    = "Application submission failed. Please try again."
	errApplicationNotFound = "Application not found"
	errInvalidStatus       = "Invalid application status"
)

// Submit validates the input, applies failure injection, then appends a
// pending application stamped with the submission date.
func (svc *DefaultApplicationService) Submit(ctx context.Context, input models.ApplicationInput) (*models.ApplicationResult, error) {
	if err := svc.Latency.Wait(ctx, submitDelay); err != nil {
		return nil, err
	}

	if input.Name == "" || input.Email == "" || input.Company == "" || input.Position == "" {
		return &models.ApplicationResult{Success: false, Error: errMissingFields}, nil
	}

	if svc.Failures.ShouldFail(simulation.OpSubmitApplication, submitFailureRate) {
		return &models.ApplicationResult{Success: false, Error: errSubmissionFailed}, nil
	}

	newApplication := models.MentorApplication{
		ID:           newApplicationID(),
		Name:         input.Name,
		Email:        input.Email,
		Company:      input.Company,
		Position:     input.Position,
		Experience:   input.Experience,
		Expertise:    input.Expertise,
		Bio:          input.Bio,
		LinkedinURL:  input.LinkedinURL,
		GithubURL:    input.GithubURL,
		PortfolioURL: input.PortfolioURL,
		HourlyRate:   input.HourlyRate,
		Availability: input.Availability,
		Languages:    input.Languages,
		Timezone:     input.Timezone,
		Motivation:   input.Motivation,
		Status:       models.ApplicationStatusPending,
		AppliedAt:    svc.now().Format("2006-01-02"),
	}

	applications, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	applications = append(applications, newApplication)
	if err := svc.Store.WriteAll(ctx, applications); err != nil {
		return nil, fmt.Errorf("failed to persist application: %w", err)
	}

	return &models.ApplicationResult{Success: true, ApplicationID: newApplication.ID}, nil
}

// GetAll returns every stored application, unfiltered.
func (svc *DefaultApplicationService) GetAll(ctx context.Context) ([]models.MentorApplication, error) {
	if err := svc.Latency.Wait(ctx, listDelay); err != nil {
		return nil, err
	}
	return svc.Store.ReadAll(ctx)
}

// UpdateStatus sets an application to approved or rejected. The overwrite
// is unconditional, matching the historical behavior of the system.
func (svc *DefaultApplicationService) UpdateStatus(ctx context.Context, applicationID, status string) (*models.OperationResult, error) {
	if err := svc.Latency.Wait(ctx, updateDelay); err != nil {
		return nil, err
	}

	if status != models.ApplicationStatusApproved && status != models.ApplicationStatusRejected {
		return &models.OperationResult{Success: false, Error: errInvalidStatus}, nil
	}

	applications, err := svc.Store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}

	idx := -1
	for i, a := range applications {
		if a.ID == applicationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &models.OperationResult{Success: false, Error: errApplicationNotFound}, nil
	}

	applications[idx].Status = status
	if err := svc.Store.WriteAll(ctx, applications); err != nil {
		return nil, fmt.Errorf("failed to persist status update: %w", err)
	}
	return &models.OperationResult{Success: true}, nil
}

func (svc *DefaultApplicationService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// newApplicationID generates a unique, time-ordered application identifier.
func newApplicationID() string {
	return fmt.Sprintf("app-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
