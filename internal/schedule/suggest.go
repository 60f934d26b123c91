package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/internal/domain"
	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// Scoring windows and bonuses for slot suggestions.
const (
	preferredMorningStart = types.TimeOfDay(9 * 60)  // 09:00
	preferredMorningEnd   = types.TimeOfDay(11 * 60) // 11:00
	preferredDayStart     = types.TimeOfDay(14 * 60) // 14:00
	preferredDayEnd       = types.TimeOfDay(16 * 60) // 16:00

	scoreMorningWindow   = 100
	scoreAfternoonWindow = 80
	scoreOnTheHour       = 20
	scoreOnTheHalfHour   = 10

	maxSuggestions = 5
)

// Suggestion is a ranked candidate slot of the requested duration.
type Suggestion struct {
	Interval Interval
	Score    int
}

// SuggestSlots proposes up to five start times for a booking of the desired
// duration on the given day. Candidates are generated by sliding a
// step-aligned window across every free interval long enough to hold the
// duration, scored by a fixed priority table and ordered by descending score,
// earliest start on ties.
func (e *Engine) SuggestSlots(
	bookings []*domain.Booking,
	closures []*domain.Closure,
	date time.Time,
	now time.Time,
	durationMinutes int,
) []Suggestion {
	if durationMinutes <= 0 {
		return nil
	}

	occupied := append(bookingIntervals(bookings), e.closureIntervals(closures)...)
	free := e.FreeIntervals(occupied)
	step := types.TimeOfDay(e.cfg.TimeStepMinutes)

	var candidates []Suggestion
	for _, run := range free {
		for start := run.Start; start.AddMinutes(durationMinutes) <= run.End; start += step {
			candidate := Interval{Start: start, End: start.AddMinutes(durationMinutes)}

			// Кандидат должен проходить те же политики, что и реальная бронь
			if err := e.ValidateInterval(candidate, date, now); err != nil {
				continue
			}

			candidates = append(candidates, Suggestion{
				Interval: candidate,
				Score:    scoreStart(start),
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score == candidates[j].Score {
			return candidates[i].Interval.Start < candidates[j].Interval.Start
		}
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// scoreStart applies the fixed priority table to a candidate start minute.
func scoreStart(start types.TimeOfDay) int {
	score := 0

	if start >= preferredMorningStart && start < preferredMorningEnd {
		score += scoreMorningWindow
	}
	if start >= preferredDayStart && start < preferredDayEnd {
		score += scoreAfternoonWindow
	}

	switch int(start) % 60 {
	case 0:
		score += scoreOnTheHour
	case 30:
		score += scoreOnTheHalfHour
	}

	return score
}
