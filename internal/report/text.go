package report

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/mission-planner/model"
)

// RenderText produces the plain-text mission summary.
func (r *Report) RenderText() string {
	var b strings.Builder
	res := r.Result

	b.WriteString("Mission planner output\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	fmt.Fprintf(&b, "Rocket: %s\n", res.VehicleName)
	fmt.Fprintf(&b, "Target: %s\n", res.BodyName)
	fmt.Fprintf(&b, "Launch date: %s\n", res.StartDate.Format(model.DateLayout))
	fmt.Fprintf(&b, "Payload: %.0f kg\n\n", res.PayloadKg)

	b.WriteString("DV breakdown (km/s):\n")
	fmt.Fprintf(&b, "  Earth ascent: %.2f\n", res.AscentDvKmS)
	fmt.Fprintf(&b, "  Transfer:     %.2f\n", res.TransferDvKmS)
	fmt.Fprintf(&b, "  Capture:      %.2f\n", res.CaptureDvKmS)
	fmt.Fprintf(&b, "  Total req:    %.2f\n", res.TotalRequiredKmS)
	fmt.Fprintf(&b, "  Rocket base capability: %.2f\n", res.BaseCapabilityKmS)
	fmt.Fprintf(&b, "  Final capability:       %.2f\n", res.FinalCapabilityKmS)
	fmt.Fprintf(&b, "  Margin:                 %.2f\n\n", res.FinalMarginKmS)

	fmt.Fprintf(&b, "Strategy: %s\n", res.Strategy)
	if res.Rationale != "" {
		fmt.Fprintf(&b, "Notes: %s\n", res.Rationale)
	}
	if res.Strategy == model.StrategyOrbitalRefuel {
		fmt.Fprintf(&b, "Recommended tankers: %d\n", res.Tankers)
	}
	if res.Feasible {
		b.WriteString("Status: FEASIBLE\n")
	} else {
		b.WriteString("Status: NOT FEASIBLE with current assumptions\n")
		b.WriteString("Recommendation: reduce payload or select a different launcher / strategy\n")
	}
	if len(res.Alternatives) > 0 {
		fmt.Fprintf(&b, "Suggested launchers: %s\n", strings.Join(res.Alternatives, ", "))
	}

	if len(r.Windows) > 0 {
		fmt.Fprintf(&b, "\nNext %d launch windows (estimated):\n", len(r.Windows))
		fmt.Fprintf(&b, " # | %-15s | %-15s\n", "LAUNCH DATE", "ARRIVAL (Est)")
		b.WriteString("----------------------------------------\n")
		for i, w := range r.Windows {
			fmt.Fprintf(&b, " %d | %-15s | %-15s\n", i+1,
				w.LaunchDate.Format(model.DateLayout),
				w.ArrivalDate.Format(model.DateLayout))
		}
	}

	return b.String()
}
