package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/ORS-RoomBookingService/pkg/types"
)

// ValidateInterval runs the booking policy checks against a candidate
// interval. Checks run in a fixed order and the first failing check wins;
// conflict detection only happens after all of them pass.
func (e *Engine) ValidateInterval(iv Interval, date time.Time, now time.Time) error {
	// 1. Порядок концов проверяется еще в NewInterval, здесь защищаемся от
	// интервалов, собранных напрямую из полей.
	if iv.End <= iv.Start {
		return &PolicyError{
			Kind:    PolicyInvertedInterval,
			Message: fmt.Sprintf("interval end %s must be after start %s", iv.End, iv.Start),
		}
	}

	// 2. Минимальная длительность
	if iv.Minutes() < e.cfg.MinBookingMinutes {
		return &PolicyError{
			Kind:    PolicyTooShort,
			Message: fmt.Sprintf("booking must be at least %d minutes", e.cfg.MinBookingMinutes),
		}
	}

	// 3. Максимальная длительность; бронь ровно на весь рабочий день
	// освобождается от лимита так же, как и от запрета на обед
	if iv.Minutes() > e.cfg.MaxBookingMinutes && !e.cfg.Hours.IsFullSpan(iv) {
		return &PolicyError{
			Kind:    PolicyTooLong,
			Message: fmt.Sprintf("booking must be at most %d minutes", e.cfg.MaxBookingMinutes),
		}
	}

	// 4. Интервал целиком внутри рабочих часов
	if !e.cfg.Hours.ContainsInterval(iv) {
		return &PolicyError{
			Kind:    PolicyOutsideOfficeHours,
			Message: fmt.Sprintf("booking must be within office hours %s", e.cfg.Hours.Span()),
		}
	}

	// 5. Пересечение обеденного перерыва запрещено, кроме брони на весь день
	if e.cfg.Hours.CrossesLunch(iv) && !e.cfg.Hours.IsFullSpan(iv) {
		return &PolicyError{
			Kind:    PolicyCrossesLunchBreak,
			Message: fmt.Sprintf("booking cannot span the lunch break %s", e.cfg.Hours.Lunch),
		}
	}

	// 6. Горизонт бронирования: [сегодня, сегодня + AdvanceBookingDays]
	if err := e.validateAdvanceRange(date, now); err != nil {
		return err
	}

	// 7. Начало брони не в прошлом
	if types.IsPast(date, iv.Start, now, e.cfg.Location) {
		return &PolicyError{
			Kind:    PolicyPastTime,
			Message: "booking start time is in the past",
		}
	}

	return nil
}

func (e *Engine) validateAdvanceRange(date time.Time, now time.Time) error {
	if types.DateInPast(date, now, e.cfg.Location) {
		return &PolicyError{
			Kind:    PolicyOutOfAdvanceRange,
			Message: "booking date is in the past",
		}
	}

	// Дата и "сейчас" сравниваются как гражданские дни в часовом поясе офиса
	maxDate := types.StartOfDay(now, e.cfg.Location).AddDate(0, 0, e.cfg.AdvanceBookingDays)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, e.cfg.Location)

	if dateOnly.After(maxDate) {
		return &PolicyError{
			Kind:    PolicyOutOfAdvanceRange,
			Message: fmt.Sprintf("can only book %d days in advance", e.cfg.AdvanceBookingDays),
		}
	}

	return nil
}

// ValidateCancellation checks the cancellation lead-time rule: a booking may
// only be cancelled up to CancelNoticeMinutes before its start.
func (e *Engine) ValidateCancellation(date time.Time, start types.TimeOfDay, now time.Time) error {
	deadline := start.OnDate(date, e.cfg.Location).Add(-time.Duration(e.cfg.CancelNoticeMinutes) * time.Minute)
	if now.After(deadline) {
		return &PolicyError{
			Kind:    PolicyCancelTooLate,
			Message: fmt.Sprintf("booking can only be cancelled at least %d minutes before start", e.cfg.CancelNoticeMinutes),
		}
	}
	return nil
}
