package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInterval(t *testing.T) {
	e := testEngine(t)
	day := testDay(t)
	now := testNow(t)

	tests := []struct {
		name     string
		interval [2]string
		wantKind PolicyKind
	}{
		{"valid morning booking", [2]string{"09:00", "10:00"}, ""},
		{"valid booking inside lunch window", [2]string{"12:30", "13:30"}, ""},
		{"too short", [2]string{"09:00", "09:15"}, PolicyTooShort},
		{"too long", [2]string{"08:30", "17:30"}, PolicyTooLong},
		{"before opening", [2]string{"07:00", "09:00"}, PolicyOutsideOfficeHours},
		{"after closing", [2]string{"21:00", "22:30"}, PolicyOutsideOfficeHours},
		{"crosses lunch", [2]string{"11:30", "15:00"}, PolicyCrossesLunchBreak},
		{"ends inside lunch is fine", [2]string{"11:00", "13:00"}, ""},
		{"starts inside lunch is fine", [2]string{"13:00", "15:00"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.ValidateInterval(iv(t, tt.interval[0], tt.interval[1]), day, now)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsPolicyKind(err, tt.wantKind), "want %s, got %v", tt.wantKind, err)
		})
	}
}

func TestValidateInterval_FullDayException(t *testing.T) {
	e := testEngine(t)
	day := testDay(t)
	now := testNow(t)

	// Бронь ровно на весь рабочий день пересекает обед и длиннее обычного
	// максимума, но проходит при стандартных лимитах как единственное
	// исключение из обеих проверок
	full := iv(t, "08:30", "22:00")
	require.True(t, e.Hours().IsFullSpan(full))
	assert.NoError(t, e.ValidateInterval(full, day, now))

	// Почти весь день таким исключением не является
	err := e.ValidateInterval(iv(t, "08:30", "21:30"), day, now)
	require.Error(t, err)
	assert.True(t, IsPolicyKind(err, PolicyTooLong))
}

func TestValidateInterval_ConfiguredTimezone(t *testing.T) {
	e, loc := mskEngine(t)

	// Дата приходит из парсинга "YYYY-MM-DD" и потому в UTC; "сейчас" -
	// 11:00 по офисному времени того же дня
	day := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.November, 17, 11, 0, 0, 0, loc)

	err := e.ValidateInterval(iv(t, "09:00", "10:00"), day, now)
	require.Error(t, err)
	assert.True(t, IsPolicyKind(err, PolicyPastTime))

	assert.NoError(t, e.ValidateInterval(iv(t, "11:30", "12:00"), day, now))
}

func TestValidateCancellation_ConfiguredTimezone(t *testing.T) {
	e, loc := mskEngine(t) // cancel notice 60 minutes

	day := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)

	// 09:30 по офисному времени: дедлайн отмены брони на 10:00 уже прошел
	now := time.Date(2025, time.November, 17, 9, 30, 0, 0, loc)
	err := e.ValidateCancellation(day, tod(t, "10:00"), now)
	require.Error(t, err)
	assert.True(t, IsPolicyKind(err, PolicyCancelTooLate))

	assert.NoError(t, e.ValidateCancellation(day, tod(t, "12:00"), now))
}

func TestValidateInterval_AdvanceRange(t *testing.T) {
	e := testEngine(t)
	now := testNow(t)

	t.Run("date in the past", func(t *testing.T) {
		err := e.ValidateInterval(iv(t, "09:00", "10:00"), now.AddDate(0, 0, -1), now)
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyOutOfAdvanceRange))
	})

	t.Run("horizon boundary inclusive", func(t *testing.T) {
		err := e.ValidateInterval(iv(t, "09:00", "10:00"), now.AddDate(0, 0, 30), now)
		assert.NoError(t, err)
	})

	t.Run("beyond horizon", func(t *testing.T) {
		err := e.ValidateInterval(iv(t, "09:00", "10:00"), now.AddDate(0, 0, 31), now)
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyOutOfAdvanceRange))
	})
}

func TestValidateInterval_PastTime(t *testing.T) {
	e := testEngine(t)

	// Сегодняшний день, текущее время 10:00: старт в 09:00 уже в прошлом
	now := time.Date(2025, time.November, 17, 10, 0, 0, 0, time.UTC)
	day := testDay(t)

	err := e.ValidateInterval(iv(t, "09:00", "10:00"), day, now)
	require.Error(t, err)
	assert.True(t, IsPolicyKind(err, PolicyPastTime))

	assert.NoError(t, e.ValidateInterval(iv(t, "10:30", "11:30"), day, now))
}

func TestValidateInterval_FirstFailingCheckWins(t *testing.T) {
	e := testEngine(t)

	// Интервал нарушает и длительность, и рабочие часы: побеждает
	// более ранняя проверка длительности
	err := e.ValidateInterval(iv(t, "06:00", "06:15"), testDay(t), testNow(t))
	require.Error(t, err)
	assert.True(t, IsPolicyKind(err, PolicyTooShort))
}

func TestValidateCancellation(t *testing.T) {
	e := testEngine(t) // cancel notice 60 minutes
	day := testDay(t)

	t.Run("well before deadline", func(t *testing.T) {
		now := time.Date(2025, time.November, 17, 8, 0, 0, 0, time.UTC)
		assert.NoError(t, e.ValidateCancellation(day, tod(t, "10:00"), now))
	})

	t.Run("exactly at deadline", func(t *testing.T) {
		now := time.Date(2025, time.November, 17, 9, 0, 0, 0, time.UTC)
		assert.NoError(t, e.ValidateCancellation(day, tod(t, "10:00"), now))
	})

	t.Run("past deadline", func(t *testing.T) {
		now := time.Date(2025, time.November, 17, 9, 30, 0, 0, time.UTC)
		err := e.ValidateCancellation(day, tod(t, "10:00"), now)
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyCancelTooLate))
	})
}
