package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	policyStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	resourceBookings []*domain.Booking
	ownerBookings    []*domain.Booking

	created     *domain.Booking
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	created := *booking
	created.ID = 42
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return f.resourceBookings, nil
}

func (f *fakeBookingRepo) GetByOwnerAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.ownerBookings, nil
}

type fakePolicyRepo struct {
	policy *domain.ResourceBookingPolicy
}

func (f *fakePolicyRepo) GetPolicyWithHierarchy(_ context.Context, _ int64, _ string) (*domain.ResourceBookingPolicy, error) {
	if f.policy == nil {
		return nil, policyStorage.ErrPolicyNotFound
	}
	return f.policy, nil
}

type fakeResourceClient struct {
	resource    *resourceservice.Resource
	resourceErr error
	maintenance resourceservice.MaintenanceStatus
}

func (f *fakeResourceClient) GetResource(_ context.Context, _ int64) (*resourceservice.Resource, error) {
	if f.resourceErr != nil {
		return nil, f.resourceErr
	}
	return f.resource, nil
}

func (f *fakeResourceClient) GetMaintenanceStatus(_ context.Context, _ int64, _ time.Time) (*resourceservice.MaintenanceStatus, error) {
	status := f.maintenance
	return &status, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeRoom() *resourceservice.Resource {
	return &resourceservice.Resource{ID: 10, Name: "Meeting Room A", Type: resourceservice.TypeRoom, IsActive: true}
}

func newTestUseCase(repo *fakeBookingRepo, policies *fakePolicyRepo, client *fakeResourceClient) *UseCase {
	uc := NewUseCase(repo, policies, client, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func slotTimes(t *testing.T, kind domain.SlotKind, day int) (time.Time, time.Time) {
	t.Helper()

	iv, err := domain.Materialize(kind, time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return iv.Start, iv.End
}

func morningRequest(t *testing.T) *Request {
	t.Helper()

	start, end := slotTimes(t, domain.SlotMorning, 5)
	return &Request{
		UserID:     100,
		ResourceID: 10,
		Start:      start,
		End:        end,
		Title:      "Sprint planning",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	resp, err := uc.Execute(context.Background(), morningRequest(t))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, domain.SlotMorning, resp.SlotKind)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, int64(100), repo.created.OwnerID)
}

func TestExecute_FullDaySlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	req := morningRequest(t)
	req.Start, req.End = slotTimes(t, domain.SlotFullDay, 5)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.SlotFullDay, resp.SlotKind)
}

func TestExecute_CustomIntervalRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	req := morningRequest(t)
	req.End = req.End.Add(-30 * time.Minute)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_BufferIntervalRejected(t *testing.T) {
	// Интервал 12:00-13:00 целиком в буфере и не является слотом
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	req := morningRequest(t)
	req.Start = time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)
	req.End = time.Date(2026, 9, 5, 13, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotOccupied(t *testing.T) {
	start, end := slotTimes(t, domain.SlotFullDay, 5)
	iv, err := domain.NewTimeInterval(start, end)
	require.NoError(t, err)

	repo := &fakeBookingRepo{
		resourceBookings: []*domain.Booking{
			{ID: 2, ResourceID: 10, OwnerID: 200, Interval: iv, Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(repo, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	_, err = uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.createCalls)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	start, end := slotTimes(t, domain.SlotMorning, 5)
	iv, err := domain.NewTimeInterval(start, end)
	require.NoError(t, err)

	repo := &fakeBookingRepo{
		resourceBookings: []*domain.Booking{
			{ID: 2, ResourceID: 10, OwnerID: 200, Interval: iv, Status: domain.StatusCancelledByOwner},
		},
	}
	uc := newTestUseCase(repo, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	_, err = uc.Execute(context.Background(), morningRequest(t))

	assert.NoError(t, err)
}

func TestExecute_OwnerConflictOnAnotherResource(t *testing.T) {
	start, end := slotTimes(t, domain.SlotMorning, 5)
	iv, err := domain.NewTimeInterval(start, end)
	require.NoError(t, err)

	repo := &fakeBookingRepo{
		ownerBookings: []*domain.Booking{
			{ID: 7, ResourceID: 99, OwnerID: 100, Interval: iv, Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(repo, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	_, err = uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrOwnerConflict)
}

func TestExecute_PastSlotRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, &fakeResourceClient{resource: activeRoom()})

	req := morningRequest(t)
	req.Start, req.End = slotTimes(t, domain.SlotMorning, 1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_AdvanceBookingLimit(t *testing.T) {
	policies := &fakePolicyRepo{
		policy: &domain.ResourceBookingPolicy{ID: 1, AdvanceBookingDays: 2},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, policies, &fakeResourceClient{resource: activeRoom()})

	_, err := uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_MinNotice(t *testing.T) {
	policies := &fakePolicyRepo{
		policy: &domain.ResourceBookingPolicy{ID: 1, MinNoticeMinutes: 120},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, policies, &fakeResourceClient{resource: activeRoom()})

	// Слот начинается через 60 минут после now, требуется 120
	req := morningRequest(t)
	req.Start = time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC)
	req.End = time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	client := &fakeResourceClient{resourceErr: resourceservice.ErrResourceNotFound}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, client)

	_, err := uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_InactiveResource(t *testing.T) {
	resource := activeRoom()
	resource.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, &fakeResourceClient{resource: resource})

	_, err := uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrResourceInactive)
}

func TestExecute_UnderMaintenance(t *testing.T) {
	client := &fakeResourceClient{
		resource:    activeRoom(),
		maintenance: resourceservice.MaintenanceStatus{IsUnderMaintenance: true},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePolicyRepo{}, client)

	_, err := uc.Execute(context.Background(), morningRequest(t))

	assert.ErrorIs(t, err, ErrResourceUnderMaintenance)
}
