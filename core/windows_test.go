package core

import (
	"errors"
	"testing"
	"time"

	"github.com/signalsfoundry/mission-planner/model"
)

func marsBody() model.Body {
	return model.Body{
		Name:              "Mars",
		TransferDvKmS:     3.80,
		CaptureDvKmS:      2.10,
		SynodicPeriodDays: 780,
		Epoch:             time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC),
		TransitDays:       210,
	}
}

func TestLaunchWindowsFromEpoch(t *testing.T) {
	b := marsBody()

	windows, err := LaunchWindows(&b, b.Epoch, 5, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	if len(windows) != 5 {
		t.Fatalf("got %d windows, want 5", len(windows))
	}

	if !windows[0].LaunchDate.Equal(b.Epoch) {
		t.Errorf("first launch = %v, want the epoch %v", windows[0].LaunchDate, b.Epoch)
	}
	second := time.Date(2027, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !windows[1].LaunchDate.Equal(second) {
		t.Errorf("second launch = %v, want %v (epoch + 780 days)", windows[1].LaunchDate, second)
	}
	if !windows[1].LaunchDate.Equal(b.Epoch.AddDate(0, 0, 780)) {
		t.Errorf("second launch = %v, want exactly 780 calendar days after the epoch", windows[1].LaunchDate)
	}
}

func TestLaunchWindowsSpacing(t *testing.T) {
	b := marsBody()

	windows, err := LaunchWindows(&b, b.Epoch, 5, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	for i := 1; i < len(windows); i++ {
		gap := windows[i].LaunchDate.Sub(windows[i-1].LaunchDate)
		if gap != 780*24*time.Hour {
			t.Errorf("gap %d = %v, want exactly 780 days", i, gap)
		}
	}
}

func TestLaunchWindowsStartBeforeEpoch(t *testing.T) {
	b := marsBody()
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	windows, err := LaunchWindows(&b, start, 5, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	if !windows[0].LaunchDate.Equal(b.Epoch) {
		t.Errorf("first launch = %v, want the epoch itself for a pre-epoch start", windows[0].LaunchDate)
	}
}

func TestLaunchWindowsStartMidCycle(t *testing.T) {
	b := marsBody()
	start := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	windows, err := LaunchWindows(&b, start, 5, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}

	// The first window must be the earliest synodic multiple at or after
	// the start date, never one that has already passed.
	want := time.Date(2027, time.March, 7, 0, 0, 0, 0, time.UTC)
	if !windows[0].LaunchDate.Equal(want) {
		t.Errorf("first launch = %v, want %v", windows[0].LaunchDate, want)
	}
	if windows[0].LaunchDate.Before(start) {
		t.Errorf("first launch %v precedes the start date %v", windows[0].LaunchDate, start)
	}
}

func TestLaunchWindowsArrival(t *testing.T) {
	b := marsBody()

	windows, err := LaunchWindows(&b, b.Epoch, 3, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	for i, w := range windows {
		want := w.LaunchDate.AddDate(0, 0, 210)
		if !w.ArrivalDate.Equal(want) {
			t.Errorf("window %d arrival = %v, want launch + 210 days = %v", i, w.ArrivalDate, want)
		}
	}
}

func TestLaunchWindowsTransitOverride(t *testing.T) {
	b := marsBody()

	windows, err := LaunchWindows(&b, b.Epoch, 2, GravityAssistTransitDays)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	want := windows[0].LaunchDate.AddDate(0, 0, GravityAssistTransitDays)
	if !windows[0].ArrivalDate.Equal(want) {
		t.Errorf("arrival with override = %v, want %v", windows[0].ArrivalDate, want)
	}
}

func TestLaunchWindowsFractionalPeriod(t *testing.T) {
	b := model.Body{
		Name:              "Moon",
		SynodicPeriodDays: 29.5,
		Epoch:             time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC),
		TransitDays:       3,
	}

	windows, err := LaunchWindows(&b, b.Epoch, 5, 0)
	if err != nil {
		t.Fatalf("LaunchWindows: %v", err)
	}
	for i := 1; i < len(windows); i++ {
		if !windows[i].LaunchDate.After(windows[i-1].LaunchDate) {
			t.Errorf("window %d launch %v is not after window %d", i, windows[i].LaunchDate, i-1)
		}
		// Midnight truncation makes the 29.5-day cycle alternate 29/30-day gaps.
		gap := windows[i].LaunchDate.Sub(windows[i-1].LaunchDate)
		if gap != 29*24*time.Hour && gap != 30*24*time.Hour {
			t.Errorf("gap %d = %v, want 29 or 30 days", i, gap)
		}
	}
}

func TestLaunchWindowsRejectsBadInput(t *testing.T) {
	b := marsBody()

	if _, err := LaunchWindows(&b, time.Time{}, 5, 0); !errors.Is(err, model.ErrInvalidDate) {
		t.Errorf("zero start date error = %v, want ErrInvalidDate", err)
	}

	bad := b
	bad.SynodicPeriodDays = 0
	if _, err := LaunchWindows(&bad, b.Epoch, 5, 0); err == nil {
		t.Errorf("expected error for non-positive synodic period")
	}

	bad = b
	bad.Epoch = time.Time{}
	if _, err := LaunchWindows(&bad, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 5, 0); !errors.Is(err, model.ErrInvalidDate) {
		t.Errorf("zero epoch error = %v, want ErrInvalidDate", err)
	}
}
