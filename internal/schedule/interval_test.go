package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := NewInterval(tod(t, "09:00"), tod(t, "10:00"))
		require.NoError(t, err)
		assert.Equal(t, 60, got.Minutes())
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := NewInterval(tod(t, "10:00"), tod(t, "09:00"))
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyInvertedInterval))
	})

	t.Run("zero length", func(t *testing.T) {
		_, err := NewInterval(tod(t, "09:00"), tod(t, "09:00"))
		require.Error(t, err)
		assert.True(t, IsPolicyKind(err, PolicyInvertedInterval))
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{"back to back, a before b", [2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}, false},
		{"back to back, b before a", [2]string{"10:00", "11:00"}, [2]string{"09:00", "10:00"}, false},
		{"partial overlap", [2]string{"09:30", "10:30"}, [2]string{"09:00", "10:00"}, true},
		{"containment", [2]string{"09:00", "12:00"}, [2]string{"10:00", "11:00"}, true},
		{"identical", [2]string{"09:00", "10:00"}, [2]string{"09:00", "10:00"}, true},
		{"disjoint", [2]string{"09:00", "10:00"}, [2]string{"15:00", "16:00"}, false},
		{"one minute overlap", [2]string{"09:00", "10:01"}, [2]string{"10:00", "11:00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := iv(t, tt.a[0], tt.a[1])
			b := iv(t, tt.b[0], tt.b[1])
			assert.Equal(t, tt.want, Overlaps(a, b))
			// Перекрытие симметрично
			assert.Equal(t, tt.want, Overlaps(b, a))
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, MergeIntervals(nil))
	})

	t.Run("merges overlapping and adjacent", func(t *testing.T) {
		got := MergeIntervals([]Interval{
			iv(t, "15:00", "16:00"),
			iv(t, "09:00", "10:00"),
			iv(t, "10:00", "11:00"), // adjacent to the previous
			iv(t, "09:30", "10:30"), // overlaps both
		})

		require.Len(t, got, 2)
		assert.Equal(t, iv(t, "09:00", "11:00"), got[0])
		assert.Equal(t, iv(t, "15:00", "16:00"), got[1])
	})

	t.Run("containment collapses", func(t *testing.T) {
		got := MergeIntervals([]Interval{
			iv(t, "09:00", "12:00"),
			iv(t, "10:00", "10:30"),
		})

		require.Len(t, got, 1)
		assert.Equal(t, iv(t, "09:00", "12:00"), got[0])
	})

	t.Run("idempotent on merged input", func(t *testing.T) {
		once := MergeIntervals([]Interval{
			iv(t, "09:00", "10:00"),
			iv(t, "11:00", "12:00"),
		})
		twice := MergeIntervals(once)
		assert.Equal(t, once, twice)
	})

	t.Run("postcondition: sorted and non-overlapping", func(t *testing.T) {
		got := MergeIntervals([]Interval{
			iv(t, "18:00", "19:00"),
			iv(t, "08:30", "09:00"),
			iv(t, "15:00", "16:30"),
			iv(t, "16:00", "17:00"),
		})

		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].End < got[i].Start,
				"runs must be strictly increasing, got %s then %s", got[i-1], got[i])
		}
	})
}
