package model

import (
	"fmt"
	"time"
)

// Body describes a destination from the catalog: the delta-v cost of getting
// there and the synodic cadence of its departure windows. Immutable once loaded.
type Body struct {
	Name              string    `json:"name"`
	TransferDvKmS     float64   `json:"dv_transfer_km_s"`     // transfer injection delta-v estimate
	CaptureDvKmS      float64   `json:"dv_capture_km_s"`      // capture / braking delta-v estimate
	SynodicPeriodDays float64   `json:"synodic_days"`         // days between favourable departure windows
	Epoch             time.Time `json:"epoch"`                // reference epoch for window alignment
	TransitDays       float64   `json:"typical_transit_days"` // typical one-way transit duration

	// SupportsGravityAssist marks distant bodies reachable via multi-flyby
	// routing. Replaces the old name-substring special case.
	SupportsGravityAssist bool `json:"supports_gravity_assist,omitempty"`
}

// Validate checks the invariants the scheduler and resolver rely on.
func (b *Body) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("body with empty name")
	}
	if b.TransferDvKmS < 0 || b.CaptureDvKmS < 0 {
		return fmt.Errorf("body %q: delta-v requirements must be >= 0", b.Name)
	}
	if b.SynodicPeriodDays <= 0 {
		return fmt.Errorf("body %q: synodic period must be > 0, got %.1f", b.Name, b.SynodicPeriodDays)
	}
	if b.Epoch.IsZero() {
		return fmt.Errorf("body %q: %w: reference epoch is unset", b.Name, ErrInvalidDate)
	}
	if b.TransitDays <= 0 {
		return fmt.Errorf("body %q: transit duration must be > 0, got %.1f", b.Name, b.TransitDays)
	}
	return nil
}
