package model

import "fmt"

// Vehicle describes a launch vehicle from the catalog. All records are
// immutable once loaded; the planner only ever reads them.
type Vehicle struct {
	Name           string  `json:"name"`
	WetMassKg      float64 `json:"wet_mass_kg"`
	DryMassKg      float64 `json:"dry_mass_kg"`
	IspSeconds     float64 `json:"isp_s"`           // average specific impulse across stages
	PayloadLimitKg float64 `json:"payload_leo_kg"`  // practical payload to a reference low orbit
	StagingFactor  float64 `json:"staging_factor"`  // empirical multi-stage performance multiplier, >= 1

	// RefuelGainKmS is the delta-v gained per tanker refuelling mission.
	// Zero means the vehicle supports no orbital refuelling.
	RefuelGainKmS float64 `json:"refuel_dv_per_tanker_km_s,omitempty"`

	// LowThrust marks payload-limited small launchers that are eligible
	// for perigee-kick (Oberth) profiles on long transfers.
	LowThrust bool `json:"low_thrust,omitempty"`
}

// SupportsRefuel reports whether the vehicle can take on propellant in orbit.
func (v *Vehicle) SupportsRefuel() bool { return v.RefuelGainKmS > 0 }

// Validate checks the mass and propulsion invariants the planner relies on.
func (v *Vehicle) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("vehicle with empty name")
	}
	if v.DryMassKg <= 0 {
		return fmt.Errorf("vehicle %q: dry mass must be > 0, got %.0f", v.Name, v.DryMassKg)
	}
	if v.WetMassKg <= v.DryMassKg {
		return fmt.Errorf("vehicle %q: wet mass %.0f must exceed dry mass %.0f", v.Name, v.WetMassKg, v.DryMassKg)
	}
	if v.IspSeconds <= 0 {
		return fmt.Errorf("vehicle %q: specific impulse must be > 0, got %.1f", v.Name, v.IspSeconds)
	}
	if v.StagingFactor < 1 {
		return fmt.Errorf("vehicle %q: staging factor must be >= 1, got %.2f", v.Name, v.StagingFactor)
	}
	if v.PayloadLimitKg < 0 {
		return fmt.Errorf("vehicle %q: payload limit must be >= 0, got %.0f", v.Name, v.PayloadLimitKg)
	}
	if v.RefuelGainKmS < 0 {
		return fmt.Errorf("vehicle %q: refuel gain must be >= 0, got %.2f", v.Name, v.RefuelGainKmS)
	}
	return nil
}
