package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
)

func TestFindConflicts(t *testing.T) {
	occupied := []Interval{}

	t.Run("empty occupied set", func(t *testing.T) {
		assert.Empty(t, FindConflicts(Interval{Start: 540, End: 600}, occupied))
	})

	t.Run("reports every conflicting interval", func(t *testing.T) {
		occupied := []Interval{
			iv(t, "09:00", "10:00"),
			iv(t, "10:30", "11:00"),
			iv(t, "15:00", "16:00"),
		}
		got := FindConflicts(iv(t, "09:30", "11:00"), occupied)
		require.Len(t, got, 2)
		assert.Equal(t, iv(t, "09:00", "10:00"), got[0])
		assert.Equal(t, iv(t, "10:30", "11:00"), got[1])
	})

	t.Run("back to back is legal", func(t *testing.T) {
		occupied := []Interval{iv(t, "09:00", "10:00")}
		assert.Empty(t, FindConflicts(iv(t, "10:00", "11:00"), occupied))
		assert.Empty(t, FindConflicts(iv(t, "08:30", "09:00"), occupied))
	})
}

// Сценарий из предметной области: офис 08:30-22:00, обед 12:00-14:30,
// существующая бронь 09:00-10:00.
func TestValidateBooking_Scenario(t *testing.T) {
	e := testEngine(t)
	day := testDay(t)
	now := testNow(t)

	existing := []*domain.Booking{booking(t, "09:00", "10:00")}

	t.Run("boundary touch accepted", func(t *testing.T) {
		assert.NoError(t, e.ValidateBooking(iv(t, "10:00", "11:00"), day, now, existing, nil))
	})

	t.Run("overlap rejected with conflict error", func(t *testing.T) {
		err := e.ValidateBooking(iv(t, "09:30", "10:30"), day, now, existing, nil)
		require.Error(t, err)

		var conflictErr *ConflictError
		require.True(t, errors.As(err, &conflictErr))
		require.Len(t, conflictErr.Conflicts, 1)
		assert.Equal(t, iv(t, "09:00", "10:00"), conflictErr.Conflicts[0])
	})

	t.Run("lunch crossing rejected before conflict check", func(t *testing.T) {
		err := e.ValidateBooking(iv(t, "11:30", "15:00"), day, now, existing, nil)
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyCrossesLunchBreak))
	})

	t.Run("full day rejected while other booking exists", func(t *testing.T) {
		err := e.ValidateBooking(iv(t, "08:30", "22:00"), day, now, existing, nil)
		var conflictErr *ConflictError
		require.True(t, errors.As(err, &conflictErr))

		// Без других броней тот же запрос проходит при стандартных лимитах
		assert.NoError(t, e.ValidateBooking(iv(t, "08:30", "22:00"), day, now, nil, nil))
	})

	t.Run("cancelled bookings do not conflict", func(t *testing.T) {
		cancelled := []*domain.Booking{cancelledBooking(t, "09:00", "10:00")}
		assert.NoError(t, e.ValidateBooking(iv(t, "09:30", "10:30"), day, now, cancelled, nil))
	})

	t.Run("all-day closure conflicts with everything", func(t *testing.T) {
		closures := []*domain.Closure{allDayClosure(t)}
		err := e.ValidateBooking(iv(t, "18:00", "19:00"), day, now, nil, closures)
		var conflictErr *ConflictError
		require.True(t, errors.As(err, &conflictErr))
		assert.Equal(t, e.Hours().Span(), conflictErr.Conflicts[0])
	})

	t.Run("interval closure conflicts only within its window", func(t *testing.T) {
		closures := []*domain.Closure{intervalClosure(t, "15:00", "17:00")}
		require.Error(t, e.ValidateBooking(iv(t, "16:00", "18:00"), day, now, nil, closures))
		assert.NoError(t, e.ValidateBooking(iv(t, "17:00", "18:00"), day, now, nil, closures))
	})
}
