package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-01-16")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "16-01-2025", "2025-13-40", "soon"} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDate", in, err)
		}
	}
}

func TestVehicleValidate(t *testing.T) {
	v := Vehicle{
		Name:           "test",
		WetMassKg:      1000,
		DryMassKg:      100,
		IspSeconds:     300,
		PayloadLimitKg: 50,
		StagingFactor:  1.2,
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("valid vehicle rejected: %v", err)
	}

	bad := v
	bad.DryMassKg = 2000 // dry above wet
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for wet <= dry")
	}

	bad = v
	bad.StagingFactor = 0.9
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for staging factor < 1")
	}
}

func TestBodyValidate(t *testing.T) {
	b := Body{
		Name:              "test",
		TransferDvKmS:     3.8,
		CaptureDvKmS:      2.1,
		SynodicPeriodDays: 780,
		Epoch:             time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC),
		TransitDays:       210,
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}

	bad := b
	bad.SynodicPeriodDays = 0
	if err := bad.Validate(); err == nil {
		t.Errorf("expected error for zero synodic period")
	}

	bad = b
	bad.Epoch = time.Time{}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for unset epoch, got %v", err)
	}
}
