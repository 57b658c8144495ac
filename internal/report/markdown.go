package report

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/mission-planner/model"
)

// RenderMarkdown produces a Markdown rendition of the mission summary with
// the delta-v budget and launch window tables.
func (r *Report) RenderMarkdown() string {
	var b strings.Builder
	res := r.Result

	fmt.Fprintf(&b, "# Mission Plan: %s to %s\n\n", res.VehicleName, res.BodyName)
	fmt.Fprintf(&b, "Generated %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("| Parameter | Value |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Launch date | %s |\n", res.StartDate.Format(model.DateLayout))
	fmt.Fprintf(&b, "| Payload | %.0f kg |\n", res.PayloadKg)
	fmt.Fprintf(&b, "| Strategy | %s |\n", res.Strategy)
	if res.Strategy == model.StrategyOrbitalRefuel {
		fmt.Fprintf(&b, "| Tanker missions | %d |\n", res.Tankers)
	}
	if res.Feasible {
		b.WriteString("| Status | FEASIBLE |\n")
	} else {
		b.WriteString("| Status | NOT FEASIBLE |\n")
	}
	b.WriteString("\n")

	b.WriteString("## Delta-V Budget\n\n")
	b.WriteString("| Segment | km/s |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Earth ascent | %.2f |\n", res.AscentDvKmS)
	fmt.Fprintf(&b, "| Transfer | %.2f |\n", res.TransferDvKmS)
	fmt.Fprintf(&b, "| Capture | %.2f |\n", res.CaptureDvKmS)
	fmt.Fprintf(&b, "| **Total required** | **%.2f** |\n", res.TotalRequiredKmS)
	fmt.Fprintf(&b, "| Base capability | %.2f |\n", res.BaseCapabilityKmS)
	fmt.Fprintf(&b, "| Final capability | %.2f |\n", res.FinalCapabilityKmS)
	fmt.Fprintf(&b, "| Margin | %+.2f |\n", res.FinalMarginKmS)
	b.WriteString("\n")

	if res.Rationale != "" {
		fmt.Fprintf(&b, "> %s\n\n", res.Rationale)
	}
	if len(res.Alternatives) > 0 {
		b.WriteString("## Suggested Launchers\n\n")
		for _, name := range res.Alternatives {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	if len(r.Windows) > 0 {
		b.WriteString("## Launch Windows\n\n")
		b.WriteString("| # | Launch | Arrival (est) |\n")
		b.WriteString("|---|---|---|\n")
		for i, w := range r.Windows {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1,
				w.LaunchDate.Format(model.DateLayout),
				w.ArrivalDate.Format(model.DateLayout))
		}
	}

	return b.String()
}
