package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/validation"
	"github.com/ldineshkumar-dev/oakzone/pkg/valuation"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// AnalyzeRequest is the POST /api/analyze body.
type AnalyzeRequest struct {
	ZoneCode       string  `json:"zone_code"`
	LotArea        float64 `json:"lot_area"`
	LotFrontage    float64 `json:"lot_frontage"`
	LotDepth       float64 `json:"lot_depth,omitempty"`
	IsCorner       bool    `json:"is_corner,omitempty"`
	HasGarage      bool    `json:"has_garage,omitempty"`
	BuildingHeight float64 `json:"building_height,omitempty"`
}

// ValueRequest is the POST /api/value body.
type ValueRequest struct {
	AnalyzeRequest
	BuildingArea float64 `json:"building_area,omitempty"`
	DwellingType string  `json:"dwelling_type,omitempty"`
	AgeYears     int     `json:"age_years,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report := validation.ValidateLotInput(req.ZoneCode, req.LotArea, req.LotFrontage)
	if !report.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}

	potential := s.analyzer.Analyze(req.ZoneCode, analysis.LotGeometry{
		Area:      req.LotArea,
		Frontage:  req.LotFrontage,
		Depth:     req.LotDepth,
		IsCorner:  req.IsCorner,
		HasGarage: req.HasGarage,
	}, req.BuildingHeight)

	s.writeJSON(w, http.StatusOK, potential)
}

func (s *Server) handleZones(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"zones":              s.repo.Zones(),
		"suffix_zones":       s.repo.SuffixRules(),
		"special_provisions": s.repo.Provisions(),
	})
}

func (s *Server) handleZone(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	regs, err := s.repo.Resolve(zoning.Parse(code))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"regulations":    regs,
		"permitted_uses": zoning.SummarizeUses(regs.PermittedUses),
	})
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	var req ValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report := validation.ValidateLotInput(req.ZoneCode, req.LotArea, req.LotFrontage)
	if !report.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}

	estimate := s.estimator.Value(valuation.Property{
		ZoneCode:     req.ZoneCode,
		LotArea:      req.LotArea,
		BuildingArea: req.BuildingArea,
		DwellingType: req.DwellingType,
		AgeYears:     req.AgeYears,
		IsCorner:     req.IsCorner,
	})

	potential := s.analyzer.Analyze(req.ZoneCode, analysis.LotGeometry{
		Area:      req.LotArea,
		Frontage:  req.LotFrontage,
		Depth:     req.LotDepth,
		IsCorner:  req.IsCorner,
		HasGarage: req.HasGarage,
	}, req.BuildingHeight)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"estimate":              estimate,
		"development_potential": potential,
		"proforma":              s.estimator.Develop(potential, estimate.EstimatedValue),
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, validation.ValidateTables(s.repo))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"zones":  len(s.repo.Zones()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
