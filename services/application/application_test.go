package application

import (
	"context"
	"testing"
	"time"

	applicationRepo "mentorsetu/database/repository/applications"
	kvstore "mentorsetu/database/repository/store"
	"mentorsetu/database/seed"
	"mentorsetu/models"
	"mentorsetu/services/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seedApps []models.MentorApplication) (*DefaultApplicationService, applicationRepo.ApplicationStore) {
	t.Helper()

	store := applicationRepo.NewKVApplicationStore(kvstore.NewMemoryStore(), seedApps)
	require.NoError(t, store.Initialize(context.Background()))

	svc := &DefaultApplicationService{
		Store:    store,
		Failures: simulation.NoFailurePolicy{},
		Latency:  simulation.NoLatency{},
		Now:      func() time.Time { return time.Date(2024, 2, 5, 10, 30, 0, 0, time.UTC) },
	}
	return svc, store
}

func validInput() models.ApplicationInput {
	return models.ApplicationInput{
		Name:         "Dana Lee",
		Email:        "dana@example.com",
		Company:      "Stripe",
		Position:     "Staff Engineer",
		Experience:   "11 years",
		Expertise:    []string{"Payments", "API Design"},
		Bio:          "Engineer focused on developer platforms.",
		HourlyRate:   160,
		Availability: "Evenings",
		Languages:    []string{"English"},
		Timezone:     "EST",
		Motivation:   "Give back to the community.",
	}
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	svc, store := newTestService(t, seed.Applications())
	ctx := context.Background()

	result, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotEmpty(t, result.ApplicationID)

	applications, err := store.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, applications, 2)

	created := applications[1]
	assert.Equal(t, result.ApplicationID, created.ID)
	assert.Equal(t, models.ApplicationStatusPending, created.Status)
	assert.Equal(t, "2024-02-05", created.AppliedAt)
	assert.Equal(t, "Dana Lee", created.Name)
}

func TestSubmitMissingFields(t *testing.T) {
	svc, store := newTestService(t, seed.Applications())
	ctx := context.Background()

	mutations := []func(*models.ApplicationInput){
		func(in *models.ApplicationInput) { in.Name = "" },
		func(in *models.ApplicationInput) { in.Email = "" },
		func(in *models.ApplicationInput) { in.Company = "" },
		func(in *models.ApplicationInput) { in.Position = "" },
	}
	for _, mutate := range mutations {
		input := validInput()
		mutate(&input)

		result, err := svc.Submit(ctx, input)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, errMissingFields, result.Error)
	}

	applications, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, applications, 1, "failed submissions must not persist anything")
}

func TestSubmitInjectedFailure(t *testing.T) {
	svc, store := newTestService(t, nil)
	svc.Failures = simulation.ForcedFailurePolicy{
		Ops: map[string]bool{simulation.OpSubmitApplication: true},
	}

	result, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, errSubmissionFailed, result.Error)

	applications, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applications)
}

func TestGetAllReturnsEverything(t *testing.T) {
	svc, _ := newTestService(t, seed.Applications())

	applications, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "app-1", applications[0].ID)
}

func TestUpdateStatusApprovesPendingApplication(t *testing.T) {
	svc, store := newTestService(t, seed.Applications())
	ctx := context.Background()

	before, err := store.ReadAll(ctx)
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, "app-1", models.ApplicationStatusApproved)
	require.NoError(t, err)
	require.True(t, result.Success)

	after, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusApproved, after[0].Status)

	// Status is the only field that changes.
	expected := before[0]
	expected.Status = models.ApplicationStatusApproved
	assert.Equal(t, expected, after[0])
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t, seed.Applications())

	result, err := svc.UpdateStatus(context.Background(), "app-1", "archived")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, errInvalidStatus, result.Error)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _ := newTestService(t, seed.Applications())

	result, err := svc.UpdateStatus(context.Background(), "app-999", models.ApplicationStatusRejected)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, errApplicationNotFound, result.Error)
}

func TestUpdateStatusOverwritesTerminalState(t *testing.T) {
	// Re-reviewing an already-approved application is allowed; the
	// overwrite is unconditional.
	svc, store := newTestService(t, seed.Applications())
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "app-1", models.ApplicationStatusApproved)
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, "app-1", models.ApplicationStatusRejected)
	require.NoError(t, err)
	require.True(t, result.Success)

	after, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, after[0].Status)
}
