package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

func TestSuggestSlots_Ranking(t *testing.T) {
	e := testEngine(t)

	got := e.SuggestSlots(nil, nil, testDay(t), testNow(t), 60)

	require.Len(t, got, 5)

	// Окно 09:00-11:00 дает +100, круглый час +20, полчаса +10
	assert.Equal(t, tod(t, "09:00"), got[0].Interval.Start)
	assert.Equal(t, 120, got[0].Score)
	assert.Equal(t, tod(t, "10:00"), got[1].Interval.Start)
	assert.Equal(t, 120, got[1].Score)
	assert.Equal(t, tod(t, "09:30"), got[2].Interval.Start)
	assert.Equal(t, 110, got[2].Score)
	assert.Equal(t, tod(t, "10:30"), got[3].Interval.Start)
	assert.Equal(t, 110, got[3].Score)
	assert.Equal(t, tod(t, "14:00"), got[4].Interval.Start)
	assert.Equal(t, 100, got[4].Score)

	for _, s := range got {
		assert.Equal(t, 60, s.Interval.Minutes())
	}
}

func TestSuggestSlots_AvoidsOccupied(t *testing.T) {
	e := testEngine(t)
	bookings := []*domain.Booking{booking(t, "09:00", "11:00")}

	got := e.SuggestSlots(bookings, nil, testDay(t), testNow(t), 60)
	require.NotEmpty(t, got)

	for _, s := range got {
		assert.Empty(t, FindConflicts(s.Interval, []Interval{iv(t, "09:00", "11:00")}),
			"suggestion %s overlaps the existing booking", s.Interval)
	}
}

func TestSuggestSlots_EdgeCases(t *testing.T) {
	e := testEngine(t)

	t.Run("zero duration", func(t *testing.T) {
		assert.Nil(t, e.SuggestSlots(nil, nil, testDay(t), testNow(t), 0))
	})

	t.Run("duration above policy maximum", func(t *testing.T) {
		assert.Empty(t, e.SuggestSlots(nil, nil, testDay(t), testNow(t), 900))
	})

	t.Run("fully closed day", func(t *testing.T) {
		closures := []*domain.Closure{allDayClosure(t)}
		assert.Empty(t, e.SuggestSlots(nil, closures, testDay(t), testNow(t), 60))
	})

	t.Run("today filters past starts", func(t *testing.T) {
		now := time.Date(2025, time.November, 17, 13, 0, 0, 0, time.UTC)
		got := e.SuggestSlots(nil, nil, testDay(t), now, 60)

		require.NotEmpty(t, got)
		for _, s := range got {
			assert.True(t, s.Interval.Start >= tod(t, "13:00"),
				"suggestion %s starts in the past", s.Interval)
		}
	})
}
