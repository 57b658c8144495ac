package core

import (
	"fmt"

	"github.com/signalsfoundry/mission-planner/model"
)

// Empirical bonus values and applicability limits for the mitigation
// strategies. All delta-v figures in km/s, durations in days.
const (
	// OberthBonusKmS is the effective gain from repeated perigee kicks on a
	// low-thrust vehicle. Annotation only; applied when the mission is
	// already feasible.
	OberthBonusKmS = 6.5

	// GravityAssistBonusKmS is the assumed gain from multi-flyby routing.
	GravityAssistBonusKmS = 4.5

	// GravityAssistTransitDays replaces the body's typical transit time when
	// multi-flyby routing is selected (~7 years).
	GravityAssistTransitDays = 2555

	// KickStageBonusKmS is the gain from adding a solid kick stage.
	KickStageBonusKmS = 2.0

	// kickStageLimitKmS is the largest shortfall a kick stage can cover; a
	// kick stage applies only while margin > -kickStageLimitKmS.
	kickStageLimitKmS = 1.5

	// Bounds for the perigee-kick annotation: light payload on a long
	// transfer flown by a low-thrust vehicle.
	oberthMaxPayloadKg   = 1500.0
	oberthMinTransitDays = 120.0
)

// StrategyOutcome is the resolved mitigation plan for a single request.
type StrategyOutcome struct {
	Strategy           model.Strategy
	BonusKmS           float64
	Tankers            int
	FinalCapabilityKmS float64
	FinalMarginKmS     float64
	Feasible           bool

	// TransitDays is the effective one-way transit time after any
	// strategy-specific override.
	TransitDays float64

	Rationale string
}

// ResolveStrategy evaluates the capability/requirement mismatch and selects a
// mission profile. One evaluation per request, no state.
//
// When the margin is negative, candidates are tried in a fixed priority
// order: gravity assist, then orbital refuelling, then a kick stage, then
// infeasible. The order never depends on catalog iteration order.
func ResolveStrategy(v *model.Vehicle, b *model.Body, payloadKg, capabilityKmS, totalRequiredKmS float64) StrategyOutcome {
	margin := capabilityKmS - totalRequiredKmS

	out := StrategyOutcome{
		Strategy:    model.StrategyDirect,
		TransitDays: b.TransitDays,
		Rationale:   "direct injection within vehicle capability",
	}

	if margin >= 0 {
		// Feasible either way; low-thrust vehicles on long transfers with a
		// light payload get the perigee-kick profile as an efficiency note.
		if v.LowThrust && payloadKg <= oberthMaxPayloadKg && b.TransitDays >= oberthMinTransitDays {
			out.Strategy = model.StrategyOberthKick
			out.BonusKmS = OberthBonusKmS
			out.Rationale = fmt.Sprintf("perigee-kick profile for light payload on long transfer (+%.1f km/s effective)", OberthBonusKmS)
		}
		out.FinalCapabilityKmS = capabilityKmS + out.BonusKmS
		out.FinalMarginKmS = out.FinalCapabilityKmS - totalRequiredKmS
		out.Feasible = true
		return out
	}

	switch {
	case b.SupportsGravityAssist:
		out.Strategy = model.StrategyGravityAssist
		out.BonusKmS = GravityAssistBonusKmS
		out.TransitDays = GravityAssistTransitDays
		out.FinalCapabilityKmS = capabilityKmS + out.BonusKmS
		out.Rationale = fmt.Sprintf("multi-flyby gravity assist route (+%.1f km/s, ~%d day transit)",
			GravityAssistBonusKmS, GravityAssistTransitDays)

	case v.SupportsRefuel():
		tankers := PlanTankers(totalRequiredKmS-capabilityKmS, v.RefuelGainKmS)
		out.Strategy = model.StrategyOrbitalRefuel
		out.Tankers = tankers
		out.FinalCapabilityKmS = capabilityKmS + float64(tankers)*v.RefuelGainKmS
		out.Rationale = fmt.Sprintf("orbital refuelling: %d tanker mission(s) at %.1f km/s each", tankers, v.RefuelGainKmS)

	case margin > -kickStageLimitKmS:
		out.Strategy = model.StrategyKickStage
		out.BonusKmS = KickStageBonusKmS
		out.FinalCapabilityKmS = capabilityKmS + out.BonusKmS
		out.Rationale = fmt.Sprintf("solid kick stage closes small shortfall (+%.1f km/s)", KickStageBonusKmS)

	default:
		out.Strategy = model.StrategyInfeasible
		out.FinalCapabilityKmS = capabilityKmS
		out.Rationale = "no feasible profile found"
	}

	out.FinalMarginKmS = out.FinalCapabilityKmS - totalRequiredKmS
	out.Feasible = out.FinalMarginKmS >= 0 && out.Strategy != model.StrategyInfeasible
	return out
}
