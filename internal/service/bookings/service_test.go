package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/ORS-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// --- моки ---

type mockBookingRepo struct {
	booking     *domain.Booking
	getErr      error
	cancelErr   error
	cancelledID int64
	reason      string
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return []*domain.Booking{m.booking}, nil
}

func (m *mockBookingRepo) GetByRoomWithFilter(_ context.Context, _ domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	return []*domain.Booking{m.booking}, nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelledID = id
	m.reason = reason
	return nil
}

type mockRoomRepo struct {
	err error
}

func (m *mockRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Room{ID: 1, Name: "Переговорная", IsActive: true}, nil
}

type mockCancelPolicy struct {
	err error
}

func (m *mockCancelPolicy) ValidateCancellation(_ time.Time, _ types.TimeOfDay, _ time.Time) error {
	return m.err
}

type mockAdminChecker struct {
	adminID int64
}

func (m *mockAdminChecker) IsAdmin(userID int64) bool {
	return userID == m.adminID
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func activeBooking(ownerID int64) *domain.Booking {
	return &domain.Booking{
		ID:        10,
		Reference: "ref-10",
		UserID:    ownerID,
		RoomID:    1,
		Date:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeOfDay(10 * 60),
		EndTime:   types.TimeOfDay(11 * 60),
		Status:    domain.StatusBooked,
	}
}

func newTestService(repo *mockBookingRepo, policy *mockCancelPolicy, admins *mockAdminChecker) *Service {
	return NewService(repo, &mockRoomRepo{}, policy, admins, noopLogger{})
}

// --- тесты ---

func TestCancel_ByOwner(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: "встреча перенесена",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.cancelledID)
	assert.Equal(t, "встреча перенесена", repo.reason)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_TooLateForOwner(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	policy := &mockCancelPolicy{err: errors.New("notice period passed")}
	svc := newTestService(repo, policy, &mockAdminChecker{adminID: 1})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCancelTooLate)
}

func TestCancel_AdminBypassesNotice(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	policy := &mockCancelPolicy{err: errors.New("notice period passed")}
	svc := newTestService(repo, policy, &mockAdminChecker{adminID: 1})

	// Администратор отменяет чужую бронь несмотря на истёкший срок
	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             1,
		CancellationReason: "ремонт в помещении",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.cancelledID)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := activeBooking(7)
	booking.Status = domain.StatusCancelled
	repo := &mockBookingRepo{booking: booking}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	repo := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	t.Run("owner", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 10, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("admin", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, 1)
		require.NoError(t, err)
	})

	t.Run("stranger", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 10, 8)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetRoomBookings_AdminOnly(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	t.Run("admin", func(t *testing.T) {
		resp, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{
			UserID:          1,
			RoomID:          1,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
	})

	// История комнаты раскрывает чужие брони, обычному пользователю отказ
	t.Run("ordinary user denied", func(t *testing.T) {
		_, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{
			UserID: 7,
			RoomID: 1,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &mockBookingRepo{booking: activeBooking(7)}
	svc := newTestService(repo, &mockCancelPolicy{}, &mockAdminChecker{adminID: 1})

	bad := "pending"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
