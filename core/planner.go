package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/mission-planner/internal/logging"
	"github.com/signalsfoundry/mission-planner/kb"
	"github.com/signalsfoundry/mission-planner/model"
)

var (
	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrUnknownBody    = errors.New("unknown body")
)

// MetricsRecorder receives planning outcomes. Satisfied by
// observability.PlannerCollector; a nil recorder is ignored.
type MetricsRecorder interface {
	ObservePlan(strategy string, feasible bool, seconds float64)
}

// MissionPlanner runs the full feasibility pipeline over a read-only catalog:
// capability, budget, strategy resolution, and the launch-window table.
// Requests are independent pure computations, so a single planner is safe to
// share across goroutines.
type MissionPlanner struct {
	catalog *kb.Catalog
	log     logging.Logger
	metrics MetricsRecorder
	tracer  trace.Tracer

	windowCount int
}

// Option customises a MissionPlanner.
type Option func(*MissionPlanner)

// WithMetricsRecorder attaches a metrics sink for plan outcomes.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(p *MissionPlanner) { p.metrics = m }
}

// WithWindowCount overrides the number of launch windows per request.
func WithWindowCount(n int) Option {
	return func(p *MissionPlanner) {
		if n > 0 {
			p.windowCount = n
		}
	}
}

// NewMissionPlanner constructs a planner over the given catalog.
func NewMissionPlanner(catalog *kb.Catalog, log logging.Logger, opts ...Option) *MissionPlanner {
	if log == nil {
		log = logging.Noop()
	}
	p := &MissionPlanner{
		catalog:     catalog,
		log:         log,
		tracer:      otel.Tracer("mission-planner/core"),
		windowCount: DefaultWindowCount,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlanByName resolves catalog names and a YYYY-MM-DD start date, then plans
// the mission. Unknown names and unparseable dates fail the request cleanly
// before any window computation.
func (p *MissionPlanner) PlanByName(ctx context.Context, vehicleName, bodyName string, payloadKg float64, startDate string) (*model.MissionResult, []model.LaunchWindow, error) {
	vehicle := p.catalog.Vehicle(vehicleName)
	if vehicle == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownVehicle, vehicleName)
	}
	body := p.catalog.Body(bodyName)
	if body == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBody, bodyName)
	}
	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, nil, err
	}

	return p.Plan(ctx, &model.MissionRequest{
		Vehicle:   *vehicle,
		Body:      *body,
		PayloadKg: payloadKg,
		StartDate: start,
	})
}

// Plan runs one planning request and returns its immutable result plus the
// projected launch-window table. The window table is produced regardless of
// the feasibility outcome.
func (p *MissionPlanner) Plan(ctx context.Context, req *model.MissionRequest) (*model.MissionResult, []model.LaunchWindow, error) {
	began := time.Now()

	ctx, span := p.tracer.Start(ctx, "planner.Plan",
		trace.WithAttributes(
			attribute.String("vehicle", req.Vehicle.Name),
			attribute.String("body", req.Body.Name),
			attribute.Float64("payload_kg", req.PayloadKg),
		))
	defer span.End()

	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	capability := VehicleCapability(&req.Vehicle, req.PayloadKg)
	budget := MissionBudget(&req.Body)
	outcome := ResolveStrategy(&req.Vehicle, &req.Body, req.PayloadKg, capability, budget.TotalKmS)

	override := 0.0
	if outcome.TransitDays != req.Body.TransitDays {
		override = outcome.TransitDays
	}
	windows, err := LaunchWindows(&req.Body, req.StartDate, p.windowCount, override)
	if err != nil {
		return nil, nil, err
	}

	result := &model.MissionResult{
		VehicleName:        req.Vehicle.Name,
		BodyName:           req.Body.Name,
		PayloadKg:          req.PayloadKg,
		StartDate:          req.StartDate,
		AscentDvKmS:        budget.AscentKmS,
		TransferDvKmS:      budget.TransferKmS,
		CaptureDvKmS:       budget.CaptureKmS,
		TotalRequiredKmS:   budget.TotalKmS,
		BaseCapabilityKmS:  capability,
		Strategy:           outcome.Strategy,
		BonusDvKmS:         outcome.BonusKmS,
		Tankers:            outcome.Tankers,
		FinalCapabilityKmS: outcome.FinalCapabilityKmS,
		FinalMarginKmS:     outcome.FinalMarginKmS,
		Feasible:           outcome.Feasible,
		Rationale:          outcome.Rationale,
	}
	if !result.Feasible {
		result.Alternatives = p.alternatives(req.Vehicle.Name, req.PayloadKg, budget.TotalKmS)
	}

	span.SetAttributes(
		attribute.String("strategy", string(result.Strategy)),
		attribute.Bool("feasible", result.Feasible),
	)
	p.log.Info(ctx, "mission planned",
		logging.String("vehicle", result.VehicleName),
		logging.String("body", result.BodyName),
		logging.String("strategy", string(result.Strategy)),
		logging.Any("feasible", result.Feasible),
		logging.Any("final_margin_km_s", result.FinalMarginKmS),
	)
	if p.metrics != nil {
		p.metrics.ObservePlan(string(result.Strategy), result.Feasible, time.Since(began).Seconds())
	}

	return result, windows, nil
}

// alternatives lists other catalog vehicles whose base capability covers the
// requirement for this payload. Sorted by name via ListVehicles.
func (p *MissionPlanner) alternatives(excludeName string, payloadKg, totalRequiredKmS float64) []string {
	var out []string
	for _, v := range p.catalog.ListVehicles() {
		if v.Name == excludeName {
			continue
		}
		if VehicleCapability(v, payloadKg) >= totalRequiredKmS {
			out = append(out, v.Name)
		}
	}
	return out
}
