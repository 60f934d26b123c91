package create_closure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// --- моки ---

type mockClosureRepo struct {
	created *domain.Closure
}

func (m *mockClosureRepo) Create(_ context.Context, closure *domain.Closure) (*domain.Closure, error) {
	closure.ID = 5
	closure.CreatedAt = time.Now()
	m.created = closure
	return closure, nil
}

type mockBookingRepo struct {
	bookings []*domain.Booking
}

func (m *mockBookingRepo) GetActiveByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return m.bookings, nil
}

type mockRoomRepo struct{}

func (m *mockRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return &domain.Room{ID: 1, Name: "Большая переговорная", IsActive: true}, nil
}

type mockAdminChecker struct {
	adminID int64
}

func (m *mockAdminChecker) IsAdmin(userID int64) bool {
	return userID == m.adminID
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- хелперы ---

func tod(h, m int) types.TimeOfDay {
	return types.TimeOfDay(h*60 + m)
}

func todPtr(h, m int) *types.TimeOfDay {
	v := tod(h, m)
	return &v
}

func testEngine(t *testing.T) *schedule.Engine {
	t.Helper()

	morning, err := schedule.NewInterval(tod(9, 0), tod(13, 0))
	require.NoError(t, err)
	lunch, err := schedule.NewInterval(tod(13, 0), tod(14, 0))
	require.NoError(t, err)
	afternoon, err := schedule.NewInterval(tod(14, 0), tod(18, 0))
	require.NoError(t, err)

	hours, err := schedule.NewOfficeHours(morning, lunch, afternoon)
	require.NoError(t, err)

	return schedule.NewEngine(schedule.Config{
		Hours:               hours,
		MinBookingMinutes:   30,
		MaxBookingMinutes:   480,
		AdvanceBookingDays:  30,
		CancelNoticeMinutes: 60,
		TimeStepMinutes:     30,
		Location:            time.UTC,
	})
}

var (
	testNow  = time.Date(2025, 11, 16, 9, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(t *testing.T, closures *mockClosureRepo, bookings *mockBookingRepo) *UseCase {
	t.Helper()

	uc := NewUseCase(closures, bookings, &mockRoomRepo{}, testEngine(t), &mockAdminChecker{adminID: 1}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// --- тесты ---

func TestExecute_AllDay(t *testing.T) {
	closures := &mockClosureRepo{}
	uc := newTestUseCase(t, closures, &mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   1,
		RoomID:   1,
		Date:     testDate,
		IsAllDay: true,
		Reason:   "плановый ремонт",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.True(t, resp.IsAllDay)
	assert.Nil(t, resp.StartTime)
	assert.Empty(t, resp.AffectedBookings)
	require.NotNil(t, closures.created)
	assert.Equal(t, int64(1), closures.created.CreatedBy)
}

func TestExecute_PartialWithAffectedBookings(t *testing.T) {
	bookings := &mockBookingRepo{bookings: []*domain.Booking{
		{
			ID: 10, Reference: "ref-10", UserID: 7, RoomID: 1, Date: testDate,
			StartTime: tod(10, 0), EndTime: tod(11, 0), Status: domain.StatusBooked,
		},
		{
			ID: 11, Reference: "ref-11", UserID: 8, RoomID: 1, Date: testDate,
			StartTime: tod(15, 0), EndTime: tod(16, 0), Status: domain.StatusBooked,
		},
	}}
	uc := newTestUseCase(t, &mockClosureRepo{}, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		RoomID:    1,
		Date:      testDate,
		StartTime: todPtr(9, 0),
		EndTime:   todPtr(12, 0),
		Reason:    "уборка",
	})

	require.NoError(t, err)
	// Бронь 15:00-16:00 не попадает в закрываемое окно
	require.Len(t, resp.AffectedBookings, 1)
	assert.Equal(t, int64(10), resp.AffectedBookings[0].ID)
	assert.Equal(t, "10:00", resp.AffectedBookings[0].StartTime)
}

func TestExecute_NonAdminDenied(t *testing.T) {
	uc := newTestUseCase(t, &mockClosureRepo{}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   7,
		RoomID:   1,
		Date:     testDate,
		IsAllDay: true,
		Reason:   "ремонт",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(t, &mockClosureRepo{}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   1,
		RoomID:   1,
		Date:     testNow.AddDate(0, 0, -1),
		IsAllDay: true,
		Reason:   "ремонт",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_IntervalOutsideOfficeHours(t *testing.T) {
	uc := newTestUseCase(t, &mockClosureRepo{}, &mockBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		RoomID:    1,
		Date:      testDate,
		StartTime: todPtr(7, 0),
		EndTime:   todPtr(10, 0),
		Reason:    "уборка",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(t, &mockClosureRepo{}, &mockBookingRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing reason", &Request{UserID: 1, RoomID: 1, Date: testDate, IsAllDay: true}},
		{"all day with interval", &Request{
			UserID: 1, RoomID: 1, Date: testDate, IsAllDay: true,
			StartTime: todPtr(10, 0), EndTime: todPtr(12, 0), Reason: "ремонт",
		}},
		{"partial without interval", &Request{UserID: 1, RoomID: 1, Date: testDate, Reason: "ремонт"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
