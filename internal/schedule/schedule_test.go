package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Общий тестовый стенд: офис 08:30-22:00, обед 12:00-14:30.

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: tod(t, start), End: tod(t, end)}
}

func testEngine(t *testing.T) *Engine {
	t.Helper()

	hours, err := NewOfficeHours(
		Interval{Start: tod(t, "08:30"), End: tod(t, "12:00")},
		Interval{Start: tod(t, "12:00"), End: tod(t, "14:30")},
		Interval{Start: tod(t, "14:30"), End: tod(t, "22:00")},
	)
	require.NoError(t, err)

	return NewEngine(Config{
		Hours:               hours,
		MinBookingMinutes:   30,
		MaxBookingMinutes:   480,
		AdvanceBookingDays:  30,
		CancelNoticeMinutes: 60,
		TimeStepMinutes:     30,
		Location:            time.UTC,
	})
}

// mskEngine is the same stand anchored to a non-UTC office timezone, for
// checks that must resolve instants in the configured civil timezone.
func mskEngine(t *testing.T) (*Engine, *time.Location) {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	e := testEngine(t)
	return NewEngine(Config{
		Hours:               e.Hours(),
		MinBookingMinutes:   30,
		MaxBookingMinutes:   480,
		AdvanceBookingDays:  30,
		CancelNoticeMinutes: 60,
		TimeStepMinutes:     30,
		Location:            loc,
	}), loc
}

func testDay(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
}

// testNow is the morning of the day before testDay, so testDay is fully in
// the future and within the advance horizon.
func testNow(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.November, 16, 9, 0, 0, 0, time.UTC)
}

func booking(t *testing.T, start, end string) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		RoomID:    1,
		Date:      testDay(t),
		StartTime: tod(t, start),
		EndTime:   tod(t, end),
		Status:    domain.StatusBooked,
	}
}

func cancelledBooking(t *testing.T, start, end string) *domain.Booking {
	t.Helper()
	b := booking(t, start, end)
	b.Status = domain.StatusCancelled
	return b
}

func allDayClosure(t *testing.T) *domain.Closure {
	t.Helper()
	return &domain.Closure{RoomID: 1, Date: testDay(t), IsAllDay: true, Reason: "maintenance"}
}

func intervalClosure(t *testing.T, start, end string) *domain.Closure {
	t.Helper()
	s, e := tod(t, start), tod(t, end)
	return &domain.Closure{
		RoomID:    1,
		Date:      testDay(t),
		StartTime: &s,
		EndTime:   &e,
		Reason:    "cleaning",
	}
}
