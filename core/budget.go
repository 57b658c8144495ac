package core

import "github.com/signalsfoundry/mission-planner/model"

// EarthAscentKmS is the fixed delta-v (km/s) charged for ascent from the
// surface plus escape-from-LEO losses. Independent of vehicle and body.
const EarthAscentKmS = 9.30

// Budget breaks a mission's delta-v requirement into its fixed legs.
type Budget struct {
	AscentKmS   float64
	TransferKmS float64
	CaptureKmS  float64
	TotalKmS    float64
}

// MissionBudget sums the ascent, transfer, and capture legs for the body.
// Total on all valid inputs; no failure modes.
func MissionBudget(b *model.Body) Budget {
	budget := Budget{
		AscentKmS:   EarthAscentKmS,
		TransferKmS: b.TransferDvKmS,
		CaptureKmS:  b.CaptureDvKmS,
	}
	budget.TotalKmS = budget.AscentKmS + budget.TransferKmS + budget.CaptureKmS
	return budget
}

// Margin returns capability minus the total requirement. Non-negative margin
// denotes feasibility.
func (b Budget) Margin(capabilityKmS float64) float64 {
	return capabilityKmS - b.TotalKmS
}
