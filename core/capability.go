package core

import (
	"math"

	"github.com/signalsfoundry/mission-planner/model"
)

// G0 is standard gravitational acceleration (m/s²), used to convert specific
// impulse into exhaust velocity in the rocket equation.
const G0 = 9.80665

// VehicleCapability returns the delta-v (km/s) the vehicle can produce while
// carrying payloadKg, from the Tsiolkovsky rocket equation scaled by the
// vehicle's empirical staging factor.
//
// A payload above the vehicle's practical limit means the vehicle cannot
// deliver it at all, and a non-positive or inverted mass ratio means the
// record is degenerate; both report zero capability rather than an error,
// so they surface as a normal infeasible outcome downstream.
func VehicleCapability(v *model.Vehicle, payloadKg float64) float64 {
	if payloadKg > v.PayloadLimitKg {
		return 0
	}

	m0 := v.WetMassKg + payloadKg
	mf := v.DryMassKg + payloadKg
	if mf <= 0 || m0 <= mf {
		return 0
	}

	dv := v.IspSeconds * G0 * math.Log(m0/mf) / 1000.0 // m/s -> km/s
	return dv * v.StagingFactor
}
