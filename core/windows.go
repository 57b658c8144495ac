package core

import (
	"fmt"
	"math"
	"time"

	"github.com/signalsfoundry/mission-planner/model"
)

// DefaultWindowCount is the number of launch windows projected per request.
const DefaultWindowCount = 5

// LaunchWindows enumerates the next count transfer opportunities for the
// body from start, projecting synodic cycles forward from the body's
// reference epoch. Each launch date is the earliest synodic multiple of the
// epoch at or after start (the epoch itself when start precedes it).
//
// transitOverrideDays, when positive, replaces the body's typical transit
// time in the arrival estimate (the gravity-assist route does this).
//
// Pure function of its inputs: the sequence is finite and restartable.
func LaunchWindows(b *model.Body, start time.Time, count int, transitOverrideDays float64) ([]model.LaunchWindow, error) {
	if count <= 0 {
		count = DefaultWindowCount
	}
	if b.SynodicPeriodDays <= 0 {
		return nil, fmt.Errorf("body %q: synodic period must be > 0, got %.1f", b.Name, b.SynodicPeriodDays)
	}
	if b.Epoch.IsZero() {
		return nil, fmt.Errorf("body %q: %w: reference epoch is unset", b.Name, model.ErrInvalidDate)
	}
	if start.IsZero() {
		return nil, fmt.Errorf("%w: start date is unset", model.ErrInvalidDate)
	}

	transit := b.TransitDays
	if transitOverrideDays > 0 {
		transit = transitOverrideDays
	}

	first := 0
	if elapsed := start.Sub(b.Epoch).Hours() / 24; elapsed > 0 {
		first = int(math.Floor(elapsed / b.SynodicPeriodDays))
		// floor lands on the cycle boundary at or before start; step past it
		// unless start falls exactly on a window.
		if addDays(b.Epoch, float64(first)*b.SynodicPeriodDays).Before(startOfDay(start)) {
			first++
		}
	}

	windows := make([]model.LaunchWindow, 0, count)
	for i := 0; i < count; i++ {
		launch := addDays(b.Epoch, float64(first+i)*b.SynodicPeriodDays)
		windows = append(windows, model.LaunchWindow{
			LaunchDate:  launch,
			ArrivalDate: addDays(launch, transit),
		})
	}
	return windows, nil
}

// addDays advances a date by a possibly fractional number of days and
// truncates the result back to midnight UTC; the scheduler works at day
// granularity only. For fractional periods the truncation makes consecutive
// gaps alternate around the true period (29/30 days for a 29.5-day cycle).
func addDays(t time.Time, days float64) time.Time {
	shifted := t.Add(time.Duration(days * 24 * float64(time.Hour)))
	return startOfDay(shifted)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
