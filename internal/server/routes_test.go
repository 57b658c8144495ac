package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalsfoundry/mission-planner/core"
	"github.com/signalsfoundry/mission-planner/kb"
	"github.com/signalsfoundry/mission-planner/model"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()

	cat := kb.NewCatalog()
	vehicles := []*model.Vehicle{
		{Name: "Starship", WetMassKg: 5000000, DryMassKg: 200000, IspSeconds: 350,
			PayloadLimitKg: 150000, StagingFactor: 1.4, RefuelGainKmS: 5.5},
		{Name: "PSLV", WetMassKg: 320000, DryMassKg: 42000, IspSeconds: 275,
			PayloadLimitKg: 1750, StagingFactor: 1.2, LowThrust: true},
	}
	bodies := []*model.Body{
		{Name: "Mars", TransferDvKmS: 3.80, CaptureDvKmS: 2.10, SynodicPeriodDays: 780,
			Epoch: time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC), TransitDays: 210},
	}
	for _, v := range vehicles {
		require.NoError(t, cat.AddVehicle(v))
	}
	for _, b := range bodies {
		require.NoError(t, cat.AddBody(b))
	}

	planner := core.NewMissionPlanner(cat, nil)
	return New(cfg, planner, cat, nil, nil)
}

func TestHealthHandler(t *testing.T) {
	router := newTestServer(t, Config{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["vehicles"])
	assert.Equal(t, float64(1), body["bodies"])
}

func TestCatalogHandler(t *testing.T) {
	router := newTestServer(t, Config{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body catalogResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Vehicles, 2)
	require.Len(t, body.Bodies, 1)
	assert.Equal(t, "PSLV", body.Vehicles[0].Name)
	assert.Equal(t, "Mars", body.Bodies[0].Name)
}

func TestPlanHandler(t *testing.T) {
	router := newTestServer(t, Config{}).Router()

	payload := `{"vehicle": "Starship", "body": "Mars", "payload_kg": 100000, "start_date": "2025-01-16"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/missions/plan", strings.NewReader(payload))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body planResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Result)
	assert.Equal(t, model.StrategyOrbitalRefuel, body.Result.Strategy)
	assert.Equal(t, 1, body.Result.Tankers)
	assert.True(t, body.Result.Feasible)
	assert.Len(t, body.Windows, core.DefaultWindowCount)
}

func TestPlanHandlerBadRequests(t *testing.T) {
	router := newTestServer(t, Config{}).Router()

	cases := []struct {
		name    string
		payload string
		status  int
	}{
		{"garbage body", "not json", http.StatusBadRequest},
		{"missing names", `{"payload_kg": 100}`, http.StatusBadRequest},
		{"negative payload", `{"vehicle": "Starship", "body": "Mars", "payload_kg": -1, "start_date": "2025-01-16"}`, http.StatusBadRequest},
		{"bad date", `{"vehicle": "Starship", "body": "Mars", "payload_kg": 100, "start_date": "soon"}`, http.StatusBadRequest},
		{"unknown vehicle", `{"vehicle": "Saturn V", "body": "Mars", "payload_kg": 100, "start_date": "2025-01-16"}`, http.StatusNotFound},
		{"unknown body", `{"vehicle": "Starship", "body": "Pluto", "payload_kg": 100, "start_date": "2025-01-16"}`, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/missions/plan", strings.NewReader(tc.payload))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newTestServer(t, Config{RequestsPerSecond: 0.001, Burst: 1}).Router()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
