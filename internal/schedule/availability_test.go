package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

func TestFreeIntervals(t *testing.T) {
	e := testEngine(t)

	t.Run("empty occupied set yields full span", func(t *testing.T) {
		free := e.FreeIntervals(nil)
		require.Len(t, free, 1)
		assert.Equal(t, e.Hours().Span(), free[0])
	})

	t.Run("gaps between runs", func(t *testing.T) {
		free := e.FreeIntervals([]Interval{
			iv(t, "09:00", "10:00"),
			iv(t, "15:00", "16:00"),
		})

		require.Len(t, free, 3)
		assert.Equal(t, iv(t, "08:30", "09:00"), free[0])
		assert.Equal(t, iv(t, "10:00", "15:00"), free[1])
		assert.Equal(t, iv(t, "16:00", "22:00"), free[2])
	})

	t.Run("sub-minimum gaps are dropped", func(t *testing.T) {
		// Зазоры 08:30-08:45 и 16:45-17:00 короче 30 минут
		free := e.FreeIntervals([]Interval{
			iv(t, "08:45", "16:45"),
			iv(t, "17:00", "22:00"),
		})
		assert.Empty(t, free)
	})

	t.Run("occupied outside office hours is clipped", func(t *testing.T) {
		free := e.FreeIntervals([]Interval{iv(t, "07:00", "09:00")})
		require.Len(t, free, 1)
		assert.Equal(t, iv(t, "09:00", "22:00"), free[0])
	})

	t.Run("postcondition: sorted, non-overlapping, each at least 30m", func(t *testing.T) {
		free := e.FreeIntervals([]Interval{
			iv(t, "11:00", "12:00"),
			iv(t, "09:00", "09:45"),
			iv(t, "18:00", "20:00"),
			iv(t, "19:00", "21:00"),
		})

		for i, f := range free {
			assert.GreaterOrEqual(t, f.Minutes(), 30)
			if i > 0 {
				assert.True(t, free[i-1].End <= f.Start)
			}
		}
	})
}

func TestClassifyDay(t *testing.T) {
	e := testEngine(t)

	t.Run("all-day closure wins", func(t *testing.T) {
		bookings := []*domain.Booking{booking(t, "09:00", "10:00")}
		closures := []*domain.Closure{allDayClosure(t)}
		assert.Equal(t, DayClosed, e.ClassifyDay(bookings, closures))
	})

	t.Run("no records means available", func(t *testing.T) {
		assert.Equal(t, DayAvailable, e.ClassifyDay(nil, nil))
	})

	t.Run("cancelled bookings do not occupy", func(t *testing.T) {
		bookings := []*domain.Booking{cancelledBooking(t, "09:00", "10:00")}
		assert.Equal(t, DayAvailable, e.ClassifyDay(bookings, nil))
	})

	t.Run("free gap means partial", func(t *testing.T) {
		bookings := []*domain.Booking{booking(t, "09:00", "10:00")}
		assert.Equal(t, DayPartial, e.ClassifyDay(bookings, nil))
	})

	t.Run("full coverage means booked", func(t *testing.T) {
		bookings := []*domain.Booking{
			booking(t, "08:30", "12:00"),
			booking(t, "12:00", "14:30"),
			booking(t, "14:30", "22:00"),
		}
		assert.Equal(t, DayBooked, e.ClassifyDay(bookings, nil))
	})

	t.Run("fragmented sub-30m leftovers still count as booked", func(t *testing.T) {
		// Остаются кусочки 08:30-08:45 и 21:50-22:00, оба короче минимума
		bookings := []*domain.Booking{
			booking(t, "08:45", "21:50"),
		}
		assert.Equal(t, DayBooked, e.ClassifyDay(bookings, nil))
	})

	t.Run("interval closure alone means partial", func(t *testing.T) {
		closures := []*domain.Closure{intervalClosure(t, "09:00", "10:00")}
		assert.Equal(t, DayPartial, e.ClassifyDay(nil, closures))
	})
}

func TestClassifyMonth(t *testing.T) {
	e := testEngine(t)

	perDayBookings := map[string][]*domain.Booking{
		"2025-11-17": {booking(t, "09:00", "10:00")},
		"2025-11-18": {
			booking(t, "08:30", "12:00"),
			booking(t, "12:00", "14:30"),
			booking(t, "14:30", "22:00"),
		},
	}
	perDayClosures := map[string][]*domain.Closure{
		"2025-11-19": {allDayClosure(t)},
	}

	got := e.ClassifyMonth(2025, time.November, perDayBookings, perDayClosures)

	// Один результат на каждый календарный день месяца
	require.Len(t, got, 30)

	assert.Equal(t, DayPartial, got["2025-11-17"])
	assert.Equal(t, DayBooked, got["2025-11-18"])
	assert.Equal(t, DayClosed, got["2025-11-19"])
	assert.Equal(t, DayAvailable, got["2025-11-01"])
	assert.Equal(t, DayAvailable, got["2025-11-30"])
}
