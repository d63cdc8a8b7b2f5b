package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
	"github.com/m04kA/SMC-ReservationService/internal/service/policy/models"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

type fakePolicyRepo struct {
	hierarchyPolicy *domain.ResourceBookingPolicy
	resourcePolicy  *domain.ResourceBookingPolicy

	upserted *domain.ResourceBookingPolicy
}

func (f *fakePolicyRepo) GetPolicyWithHierarchy(_ context.Context, _ int64, _ string) (*domain.ResourceBookingPolicy, error) {
	if f.hierarchyPolicy == nil {
		return nil, policyStorage.ErrPolicyNotFound
	}
	return f.hierarchyPolicy, nil
}

func (f *fakePolicyRepo) GetByResourceID(_ context.Context, _ int64) (*domain.ResourceBookingPolicy, error) {
	if f.resourcePolicy == nil {
		return nil, policyStorage.ErrPolicyNotFound
	}
	return f.resourcePolicy, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, policy *domain.ResourceBookingPolicy) (*domain.ResourceBookingPolicy, error) {
	stored := *policy
	if stored.ID == 0 {
		stored.ID = 77
	}
	f.upserted = &stored
	return &stored, nil
}

type fakeResourceClient struct {
	managerIDs []int64
	err        error
}

func (f *fakeResourceClient) GetResource(_ context.Context, resourceID int64) (*resourceservice.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &resourceservice.Resource{
		ID:         resourceID,
		Type:       resourceservice.TypeDesk,
		ManagerIDs: f.managerIDs,
		IsActive:   true,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetEffectivePolicy_ResourceLevel(t *testing.T) {
	repo := &fakePolicyRepo{
		hierarchyPolicy: &domain.ResourceBookingPolicy{
			ID:                 5,
			ResourceID:         ptr.Ptr(int64(10)),
			AdvanceBookingDays: 30,
			MinNoticeMinutes:   60,
		},
	}
	svc := NewService(repo, &fakeResourceClient{}, nopLogger{})

	resp, err := svc.GetEffectivePolicy(context.Background(), &models.GetPolicyRequest{ResourceID: 10})

	require.NoError(t, err)
	assert.Equal(t, "resource", resp.Level)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
}

func TestGetEffectivePolicy_DefaultWhenUnconfigured(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeResourceClient{}, nopLogger{})

	resp, err := svc.GetEffectivePolicy(context.Background(), &models.GetPolicyRequest{ResourceID: 10})

	require.NoError(t, err)
	assert.Equal(t, "default", resp.Level)
	assert.Equal(t, domain.DefaultAdvanceBookingDays, resp.AdvanceBookingDays)
}

func TestGetEffectivePolicy_ResourceNotFound(t *testing.T) {
	client := &fakeResourceClient{err: resourceservice.ErrResourceNotFound}
	svc := NewService(&fakePolicyRepo{}, client, nopLogger{})

	_, err := svc.GetEffectivePolicy(context.Background(), &models.GetPolicyRequest{ResourceID: 10})

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdatePolicy_ManagerCreatesResourcePolicy(t *testing.T) {
	repo := &fakePolicyRepo{}
	svc := NewService(repo, &fakeResourceClient{managerIDs: []int64{500}}, nopLogger{})

	req := &models.UpdatePolicyRequest{
		UserID:             500,
		ResourceID:         10,
		AdvanceBookingDays: ptr.Ptr(14),
	}

	resp, err := svc.UpdatePolicy(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 14, resp.AdvanceBookingDays)
	require.NotNil(t, repo.upserted.ResourceID)
	assert.Equal(t, int64(10), *repo.upserted.ResourceID)
}

func TestUpdatePolicy_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := &fakePolicyRepo{
		resourcePolicy: &domain.ResourceBookingPolicy{
			ID:                 5,
			ResourceID:         ptr.Ptr(int64(10)),
			AdvanceBookingDays: 30,
			MinNoticeMinutes:   60,
		},
	}
	svc := NewService(repo, &fakeResourceClient{managerIDs: []int64{500}}, nopLogger{})

	req := &models.UpdatePolicyRequest{
		UserID:           500,
		ResourceID:       10,
		MinNoticeMinutes: ptr.Ptr(120),
	}

	resp, err := svc.UpdatePolicy(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
	assert.Equal(t, 120, resp.MinNoticeMinutes)
}

func TestUpdatePolicy_NotManager(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeResourceClient{managerIDs: []int64{500}}, nopLogger{})

	req := &models.UpdatePolicyRequest{UserID: 100, ResourceID: 10}
	_, err := svc.UpdatePolicy(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdatePolicy_ValidationBounds(t *testing.T) {
	svc := NewService(&fakePolicyRepo{}, &fakeResourceClient{managerIDs: []int64{500}}, nopLogger{})

	req := &models.UpdatePolicyRequest{
		UserID:             500,
		ResourceID:         10,
		AdvanceBookingDays: ptr.Ptr(domain.MaxAdvanceBookingDays + 1),
	}

	_, err := svc.UpdatePolicy(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
