package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"9:05", 545, false}, // single-digit hour accepted
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"12", 0, true},
		{"12:0", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{"12:30:45", 0, true},
		{"+9:30", 0, true},  // знак - не цифра
		{"009:30", 0, true}, // лишний ведущий ноль
		{" 9:30", 0, true},
		{"9: 30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, TimeOfDay(tt.want), got)
		})
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	// Канонический вид восстанавливается без потерь для всех минут суток
	for m := 0; m < MinutesPerDay; m++ {
		s := TimeOfDay(m).String()
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err, "minute %d", m)
		require.Equal(t, TimeOfDay(m), parsed, "minute %d", m)
		require.Equal(t, s, parsed.String(), "minute %d", m)
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "08:05", TimeOfDay(485).String())
	assert.Equal(t, "23:59", TimeOfDay(1439).String())
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	a, b := TimeOfDay(540), TimeOfDay(600)

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.Equal(t, b, a.AddMinutes(60))
}

func TestTimeOfDay_OnDate(t *testing.T) {
	date := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
	got := TimeOfDay(545).OnDate(date, time.UTC)
	assert.Equal(t, time.Date(2025, time.November, 17, 9, 5, 0, 0, time.UTC), got)

	// Дата в UTC, якорь в другом поясе: календарный день сохраняется
	msk, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	got = TimeOfDay(545).OnDate(date, msk)
	assert.Equal(t, time.Date(2025, time.November, 17, 9, 5, 0, 0, msk), got)
}

func TestTimeOfDay_SQL(t *testing.T) {
	t.Run("value stores canonical form", func(t *testing.T) {
		v, err := TimeOfDay(510).Value()
		require.NoError(t, err)
		assert.Equal(t, "08:30", v)
	})

	t.Run("value rejects out of range", func(t *testing.T) {
		_, err := TimeOfDay(MinutesPerDay).Value()
		assert.Error(t, err)
	})

	t.Run("scan string", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan("08:30"))
		assert.Equal(t, TimeOfDay(510), tod)
	})

	t.Run("scan TIME column with seconds", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan("08:30:00"))
		assert.Equal(t, TimeOfDay(510), tod)
	})

	t.Run("scan bytes", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan([]byte("14:30")))
		assert.Equal(t, TimeOfDay(870), tod)
	})

	t.Run("scan time.Time", func(t *testing.T) {
		var tod TimeOfDay
		require.NoError(t, tod.Scan(time.Date(2000, 1, 1, 9, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeOfDay(555), tod)
	})

	t.Run("scan nil fails", func(t *testing.T) {
		var tod TimeOfDay
		assert.Error(t, tod.Scan(nil))
	})
}

func TestCivilHelpers(t *testing.T) {
	loc := time.UTC

	t.Run("start and end of day", func(t *testing.T) {
		at := time.Date(2025, time.November, 17, 15, 42, 7, 123, loc)
		assert.Equal(t, time.Date(2025, time.November, 17, 0, 0, 0, 0, loc), StartOfDay(at, loc))
		assert.Equal(t, time.Date(2025, time.November, 18, 0, 0, 0, 0, loc).Add(-time.Nanosecond), EndOfDay(at, loc))
	})

	t.Run("same day", func(t *testing.T) {
		a := time.Date(2025, time.November, 17, 0, 0, 0, 0, loc)
		b := time.Date(2025, time.November, 17, 23, 59, 0, 0, loc)
		c := time.Date(2025, time.November, 18, 0, 0, 0, 0, loc)
		assert.True(t, SameDay(a, b, loc))
		assert.False(t, SameDay(a, c, loc))
	})

	t.Run("date in past", func(t *testing.T) {
		now := time.Date(2025, time.November, 17, 9, 0, 0, 0, loc)
		assert.True(t, DateInPast(now.AddDate(0, 0, -1), now, loc))
		// Сегодняшний день не в прошлом, даже поздним вечером
		assert.False(t, DateInPast(time.Date(2025, time.November, 17, 0, 0, 0, 0, loc), now, loc))
		assert.False(t, DateInPast(now.AddDate(0, 0, 1), now, loc))
	})

	t.Run("is past", func(t *testing.T) {
		date := time.Date(2025, time.November, 17, 0, 0, 0, 0, loc)
		now := time.Date(2025, time.November, 17, 10, 0, 0, 0, loc)
		assert.True(t, IsPast(date, TimeOfDay(599), now, loc))
		// Ровно "сейчас" - не в прошлом (строгое сравнение)
		assert.False(t, IsPast(date, TimeOfDay(600), now, loc))
		assert.False(t, IsPast(date, TimeOfDay(601), now, loc))
	})

	t.Run("is past resolves in the configured timezone", func(t *testing.T) {
		msk, err := time.LoadLocation("Europe/Moscow")
		require.NoError(t, err)

		// Дата из парсинга "YYYY-MM-DD" несет UTC, но инстант собирается
		// в офисном поясе: 10:00 MSK уже прошло к 11:00 MSK
		date := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)
		now := time.Date(2025, time.November, 17, 11, 0, 0, 0, msk)
		assert.True(t, IsPast(date, TimeOfDay(600), now, msk))
		assert.False(t, IsPast(date, TimeOfDay(690), now, msk))
		assert.False(t, DateInPast(date, now, msk))
	})
}
