// core/catalog_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signalsfoundry/mission-planner/kb"
	"github.com/signalsfoundry/mission-planner/model"
)

// CatalogSummary is a small summary of what was loaded from JSON.
// It's mainly useful for logging from main().
type CatalogSummary struct {
	VehicleNames []string
	BodyNames    []string
}

// internal JSON shapes – kept unexported so we're free to evolve them.
type catalogJSON struct {
	Vehicles []vehicleJSON `json:"vehicles"`
	Bodies   []bodyJSON    `json:"bodies"`
}

type vehicleJSON struct {
	Name           string  `json:"name"`
	WetMassKg      float64 `json:"wet_mass_kg"`
	DryMassKg      float64 `json:"dry_mass_kg"`
	IspSeconds     float64 `json:"isp_s"`
	PayloadLimitKg float64 `json:"payload_leo_kg"`
	StagingFactor  float64 `json:"staging_factor"`
	RefuelGainKmS  float64 `json:"refuel_dv_per_tanker_km_s"`
	LowThrust      bool    `json:"low_thrust"`
}

type bodyJSON struct {
	Name                  string  `json:"name"`
	TransferDvKmS         float64 `json:"dv_transfer_km_s"`
	CaptureDvKmS          float64 `json:"dv_capture_km_s"`
	SynodicPeriodDays     float64 `json:"synodic_days"`
	EpochDate             string  `json:"epoch_date"` // YYYY-MM-DD
	TransitDays           float64 `json:"typical_transit_days"`
	SupportsGravityAssist bool    `json:"supports_gravity_assist"`
}

// LoadCatalog reads a JSON catalog from r, validates every record, and
// populates the Catalog. Validation happens here, at construction time, so
// the engine's arithmetic stays total on everything the catalog holds.
func LoadCatalog(cat *kb.Catalog, r io.Reader) (*CatalogSummary, error) {
	if cat == nil {
		return nil, fmt.Errorf("LoadCatalog: catalog is nil")
	}

	var payload catalogJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadCatalog: decode failed: %w", err)
	}

	summary := &CatalogSummary{
		VehicleNames: make([]string, 0, len(payload.Vehicles)),
		BodyNames:    make([]string, 0, len(payload.Bodies)),
	}

	for _, jv := range payload.Vehicles {
		vehicle := &model.Vehicle{
			Name:           jv.Name,
			WetMassKg:      jv.WetMassKg,
			DryMassKg:      jv.DryMassKg,
			IspSeconds:     jv.IspSeconds,
			PayloadLimitKg: jv.PayloadLimitKg,
			StagingFactor:  jv.StagingFactor,
			RefuelGainKmS:  jv.RefuelGainKmS,
			LowThrust:      jv.LowThrust,
		}
		if err := vehicle.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %w", err)
		}
		if err := cat.AddVehicle(vehicle); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %w", err)
		}
		summary.VehicleNames = append(summary.VehicleNames, jv.Name)
	}

	for _, jb := range payload.Bodies {
		epoch, err := model.ParseDate(jb.EpochDate)
		if err != nil {
			return nil, fmt.Errorf("LoadCatalog: body %q epoch: %w", jb.Name, err)
		}
		body := &model.Body{
			Name:                  jb.Name,
			TransferDvKmS:         jb.TransferDvKmS,
			CaptureDvKmS:          jb.CaptureDvKmS,
			SynodicPeriodDays:     jb.SynodicPeriodDays,
			Epoch:                 epoch,
			TransitDays:           jb.TransitDays,
			SupportsGravityAssist: jb.SupportsGravityAssist,
		}
		if err := body.Validate(); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %w", err)
		}
		if err := cat.AddBody(body); err != nil {
			return nil, fmt.Errorf("LoadCatalog: %w", err)
		}
		summary.BodyNames = append(summary.BodyNames, jb.Name)
	}

	return summary, nil
}
