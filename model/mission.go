package model

import (
	"errors"
	"fmt"
	"time"
)

// Strategy identifies the mission profile selected for a request.
type Strategy string

const (
	StrategyDirect        Strategy = "direct"
	StrategyOberthKick    Strategy = "oberth-kick"
	StrategyGravityAssist Strategy = "gravity-assist"
	StrategyOrbitalRefuel Strategy = "orbital-refuel"
	StrategyKickStage     Strategy = "kick-stage"
	StrategyInfeasible    Strategy = "infeasible"
)

// DateLayout is the calendar-date format used throughout the planner.
// Day granularity only; there is no time-of-day component.
const DateLayout = "2006-01-02"

// ErrInvalidDate reports an unparseable or unset calendar date.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

// MissionRequest is one planning request. Immutable once constructed;
// the caller validates raw input before building it.
type MissionRequest struct {
	Vehicle   Vehicle
	Body      Body
	PayloadKg float64
	StartDate time.Time
}

// Validate checks the request against the catalog invariants.
func (r *MissionRequest) Validate() error {
	if err := r.Vehicle.Validate(); err != nil {
		return err
	}
	if err := r.Body.Validate(); err != nil {
		return err
	}
	if r.PayloadKg < 0 {
		return fmt.Errorf("payload mass must be >= 0, got %.0f", r.PayloadKg)
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is unset", ErrInvalidDate)
	}
	return nil
}

// MissionResult is the complete outcome of one planning request. It is
// computed once, never mutated afterwards, and carries every field a
// presentation layer needs for a summary or a saved report.
type MissionResult struct {
	VehicleName string    `json:"vehicle"`
	BodyName    string    `json:"body"`
	PayloadKg   float64   `json:"payload_kg"`
	StartDate   time.Time `json:"start_date"`

	// Delta-v budget legs (km/s).
	AscentDvKmS      float64 `json:"ascent_dv_km_s"`
	TransferDvKmS    float64 `json:"transfer_dv_km_s"`
	CaptureDvKmS     float64 `json:"capture_dv_km_s"`
	TotalRequiredKmS float64 `json:"total_required_km_s"`

	BaseCapabilityKmS  float64  `json:"base_capability_km_s"`
	Strategy           Strategy `json:"strategy"`
	BonusDvKmS         float64  `json:"bonus_dv_km_s"`
	Tankers            int      `json:"tankers,omitempty"`
	FinalCapabilityKmS float64  `json:"final_capability_km_s"`
	FinalMarginKmS     float64  `json:"final_margin_km_s"`
	Feasible           bool     `json:"feasible"`
	Rationale          string   `json:"rationale"`

	// Alternatives lists other catalog vehicles whose base capability would
	// cover the requirement, populated only for infeasible plans.
	Alternatives []string `json:"alternatives,omitempty"`
}

// LaunchWindow is one projected transfer opportunity. Recomputed on demand;
// no persisted identity.
type LaunchWindow struct {
	LaunchDate  time.Time `json:"launch_date"`
	ArrivalDate time.Time `json:"arrival_date"`
}
