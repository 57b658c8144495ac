package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/signalsfoundry/mission-planner/core"
	"github.com/signalsfoundry/mission-planner/internal/logging"
	"github.com/signalsfoundry/mission-planner/model"
)

type planRequest struct {
	Vehicle   string  `json:"vehicle"`
	Body      string  `json:"body"`
	PayloadKg float64 `json:"payload_kg"`
	StartDate string  `json:"start_date"`
}

type planResponse struct {
	Result  *model.MissionResult `json:"result"`
	Windows []model.LaunchWindow `json:"windows"`
}

type catalogResponse struct {
	Vehicles []*model.Vehicle `json:"vehicles"`
	Bodies   []*model.Body    `json:"bodies"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	vehicles, bodies := s.catalog.Counts()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"vehicles": vehicles,
		"bodies":   bodies,
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Vehicles: s.catalog.ListVehicles(),
		Bodies:   s.catalog.ListBodies(),
	})
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request payload"})
		return
	}
	if req.Vehicle == "" || req.Body == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "vehicle and body are required"})
		return
	}
	if req.PayloadKg < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "payload mass must be >= 0"})
		return
	}

	result, windows, err := s.planner.PlanByName(r.Context(), req.Vehicle, req.Body, req.PayloadKg, req.StartDate)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, planResponse{Result: result, Windows: windows})
}

func (s *Server) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrUnknownVehicle), errors.Is(err, core.ErrUnknownBody):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrInvalidDate):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.Error(r.Context(), "plan request failed", logging.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
