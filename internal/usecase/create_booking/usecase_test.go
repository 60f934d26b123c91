package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/ORS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/ORS-RoomBookingService/internal/schedule"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// --- моки ---

type mockBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

func (m *mockBookingRepo) GetActiveByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return m.bookings, nil
}

type mockClosureRepo struct {
	closures []*domain.Closure
}

func (m *mockClosureRepo) GetActiveByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Closure, error) {
	return m.closures, nil
}

type mockRoomRepo struct {
	room *domain.Room
	err  error
}

func (m *mockRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.room, nil
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(t *testing.T, bookings *mockBookingRepo, closures *mockClosureRepo, rooms *mockRoomRepo) *UseCase {
	t.Helper()

	uc := NewUseCase(bookings, closures, rooms, testEngine(t), &mockTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func activeRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Малая переговорная", Floor: 2, Capacity: 6, IsActive: true}
}

// --- тесты ---

func TestExecute_Success(t *testing.T) {
	bookings := &mockBookingRepo{}
	uc := newTestUseCase(t, bookings, &mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(10, 0),
		EndTime:   tod(11, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.NotEmpty(t, resp.Reference)

	require.NotNil(t, bookings.created)
	assert.Equal(t, tod(10, 0), bookings.created.StartTime)
	assert.Equal(t, tod(11, 0), bookings.created.EndTime)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	existing := &domain.Booking{
		ID: 1, UserID: 3, RoomID: 1, Date: testDate,
		StartTime: tod(9, 0), EndTime: tod(10, 0),
		Status: domain.StatusBooked,
	}
	uc := newTestUseCase(t, &mockBookingRepo{bookings: []*domain.Booking{existing}},
		&mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	// Начало ровно в конце существующей брони - законно
	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(10, 0),
		EndTime:   tod(11, 0),
	})

	require.NoError(t, err)
}

func TestExecute_Conflict(t *testing.T) {
	existing := &domain.Booking{
		ID: 1, UserID: 3, RoomID: 1, Date: testDate,
		StartTime: tod(10, 0), EndTime: tod(11, 0),
		Status: domain.StatusBooked,
	}
	uc := newTestUseCase(t, &mockBookingRepo{bookings: []*domain.Booking{existing}},
		&mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(10, 30),
		EndTime:   tod(11, 30),
	})

	var conflictErr *schedule.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, tod(10, 0), conflictErr.Conflicts[0].Start)
}

func TestExecute_CrossesLunch(t *testing.T) {
	uc := newTestUseCase(t, &mockBookingRepo{}, &mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(12, 0),
		EndTime:   tod(15, 0),
	})

	require.True(t, schedule.IsPolicyKind(err, schedule.PolicyCrossesLunchBreak))
}

func TestExecute_SlotTakenRace(t *testing.T) {
	bookings := &mockBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(t, bookings, &mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(10, 0),
		EndTime:   tod(11, 0),
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(t, &mockBookingRepo{}, &mockClosureRepo{}, &mockRoomRepo{err: roomRepo.ErrRoomNotFound})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    99,
		Date:      testDate,
		StartTime: tod(10, 0),
		EndTime:   tod(11, 0),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InactiveRoom(t *testing.T) {
	room := activeRoom()
	room.IsActive = false
	uc := newTestUseCase(t, &mockBookingRepo{}, &mockClosureRepo{}, &mockRoomRepo{room: room})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(10, 0),
		EndTime:   tod(11, 0),
	})

	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(t, &mockBookingRepo{}, &mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero user", &Request{UserID: 0, RoomID: 1, Date: testDate, StartTime: tod(10, 0), EndTime: tod(11, 0)}},
		{"zero room", &Request{UserID: 7, RoomID: 0, Date: testDate, StartTime: tod(10, 0), EndTime: tod(11, 0)}},
		{"zero date", &Request{UserID: 7, RoomID: 1, StartTime: tod(10, 0), EndTime: tod(11, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_InvertedInterval(t *testing.T) {
	uc := newTestUseCase(t, &mockBookingRepo{}, &mockClosureRepo{}, &mockRoomRepo{room: activeRoom()})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    7,
		RoomID:    1,
		Date:      testDate,
		StartTime: tod(11, 0),
		EndTime:   tod(10, 0),
	})

	require.Error(t, err)
	assert.True(t, schedule.IsPolicyKind(err, schedule.PolicyInvertedInterval))
	assert.False(t, errors.Is(err, ErrInternal))
}
