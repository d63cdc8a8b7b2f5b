package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	bookingStorage "github.com/m04kA/SMC-ReservationService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/resourceservice"
)

type fakeBookingRepo struct {
	booking          *domain.Booking
	getErr           error
	resourceBookings []*domain.Booking
	ownerBookings    []*domain.Booking

	updatedID         int64
	updatedResourceID int64
	updatedInterval   domain.TimeInterval
	updateCalls       int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingStorage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByResourceWithFilter(_ context.Context, _ domain.ResourceBookingsFilter) ([]*domain.Booking, error) {
	return f.resourceBookings, nil
}

func (f *fakeBookingRepo) GetByOwnerAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.ownerBookings, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, id int64, resourceID int64, interval domain.TimeInterval) error {
	f.updateCalls++
	f.updatedID = id
	f.updatedResourceID = resourceID
	f.updatedInterval = interval
	return nil
}

type fakeResourceClient struct {
	resourceErr error
	maintenance resourceservice.MaintenanceStatus
}

func (f *fakeResourceClient) GetResource(_ context.Context, _ int64) (*resourceservice.Resource, error) {
	if f.resourceErr != nil {
		return nil, f.resourceErr
	}
	return &resourceservice.Resource{ID: 10, IsActive: true}, nil
}

func (f *fakeResourceClient) GetMaintenanceStatus(_ context.Context, _ int64, _ time.Time) (*resourceservice.MaintenanceStatus, error) {
	status := f.maintenance
	return &status, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, client *fakeResourceClient, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(repo, client, tx, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func morningBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))
}

func moveRequest(t *testing.T) *Request {
	t.Helper()

	target := slotInterval(t, domain.SlotMorning, 5)
	return &Request{
		UserID:        100,
		BookingID:     1,
		ProposedStart: target.Start,
		ProposedEnd:   target.End,
		Gesture:       GestureMove,
	}
}

func TestExecute_Move_AcceptedAndPersisted(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeResourceClient{}, tx)

	resp, err := uc.Execute(context.Background(), moveRequest(t))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, resp.Decision.Outcome)
	assert.True(t, resp.Persisted)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.updateCalls)
	assert.Equal(t, int64(1), repo.updatedID)
	assert.Equal(t, int64(10), repo.updatedResourceID)
	assert.Equal(t, slotInterval(t, domain.SlotMorning, 5), repo.updatedInterval)
}

func TestExecute_Move_RejectedNotPersisted(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: morningBooking(t),
		resourceBookings: []*domain.Booking{
			testBooking(2, 10, 200, slotInterval(t, domain.SlotFullDay, 5)),
		},
	}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeResourceClient{}, tx)

	resp, err := uc.Execute(context.Background(), moveRequest(t))

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, resp.Decision.Outcome)
	assert.Equal(t, domain.ReasonSlotOccupied, resp.Decision.RejectCode)
	assert.False(t, resp.Persisted)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_DryRun_NeverWrites(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, &fakeResourceClient{}, tx)

	req := moveRequest(t)
	req.DryRun = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, resp.Decision.Outcome)
	assert.False(t, resp.Persisted)
	assert.Zero(t, tx.calls)
	assert.Zero(t, repo.updateCalls)
}

func TestExecute_MoveToAnotherResource(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	req := moveRequest(t)
	req.TargetResourceID = 20

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Persisted)
	assert.Equal(t, int64(20), repo.updatedResourceID)
}

func TestExecute_Maintenance_Rejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	client := &fakeResourceClient{
		maintenance: resourceservice.MaintenanceStatus{IsUnderMaintenance: true},
	}
	uc := newTestUseCase(repo, client, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), moveRequest(t))

	require.NoError(t, err)
	assert.Equal(t, domain.ReasonResourceUnderMaintenance, resp.Decision.RejectCode)
	assert.False(t, resp.Persisted)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResourceClient{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), moveRequest(t))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	req := moveRequest(t)
	req.UserID = 999

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CancelledBooking(t *testing.T) {
	booking := morningBooking(t)
	booking.Status = domain.StatusCancelledByOwner
	uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakeResourceClient{}, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), moveRequest(t))

	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_InvalidProposedInterval(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	req := moveRequest(t)
	req.ProposedStart, req.ProposedEnd = req.ProposedEnd, req.ProposedStart

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TargetResourceNotFound(t *testing.T) {
	repo := &fakeBookingRepo{booking: morningBooking(t)}
	client := &fakeResourceClient{resourceErr: resourceservice.ErrResourceNotFound}
	uc := newTestUseCase(repo, client, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), moveRequest(t))

	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_Resize_CannotChangeResource(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))
	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	target := slotInterval(t, domain.SlotFullDay, 5)
	req := &Request{
		UserID:           100,
		BookingID:        1,
		TargetResourceID: 20,
		ProposedStart:    target.Start,
		ProposedEnd:      target.End,
		Gesture:          GestureResize,
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Resize_CannotChangeDate(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 2))
	repo := &fakeBookingRepo{booking: booking}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	target := slotInterval(t, domain.SlotFullDay, 5)
	req := &Request{
		UserID:        100,
		BookingID:     1,
		ProposedStart: target.Start,
		ProposedEnd:   target.End,
		Gesture:       GestureResize,
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Resize_Persisted(t *testing.T) {
	booking := testBooking(1, 10, 100, slotInterval(t, domain.SlotMorning, 5))
	repo := &fakeBookingRepo{
		booking:          booking,
		resourceBookings: []*domain.Booking{booking},
	}
	uc := newTestUseCase(repo, &fakeResourceClient{}, &fakeTxManager{})

	target := slotInterval(t, domain.SlotFullDay, 5)
	req := &Request{
		UserID:        100,
		BookingID:     1,
		ProposedStart: target.Start,
		ProposedEnd:   target.End,
		Gesture:       GestureResize,
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeAccepted, resp.Decision.Outcome)
	assert.True(t, resp.Persisted)
	assert.Equal(t, target, repo.updatedInterval)
}
