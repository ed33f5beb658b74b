package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/valuation"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func testServer() *Server {
	repo := zoning.NewRepository()
	return &Server{
		repo:      repo,
		analyzer:  analysis.New(repo),
		estimator: valuation.NewEstimator(repo),
		log:       zap.NewNop(),
	}
}

func TestHandleAnalyze(t *testing.T) {
	s := testServer()

	body := `{"zone_code":"RL2-0","lot_area":900,"lot_frontage":25}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var p analysis.DevelopmentPotential
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if p.MaxHeight != 9.0 {
		t.Errorf("MaxHeight = %v, want suffix 9.0", p.MaxHeight)
	}
	if p.ZoneCode != "RL2-0" {
		t.Errorf("ZoneCode = %q, want RL2-0", p.ZoneCode)
	}
}

func TestHandleAnalyzeRejectsBadInput(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"zone_code":"RL2","lot_area":0,"lot_frontage":25}`))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestHandleAnalyzeRejectsBadJSON(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{"))
	w := httptest.NewRecorder()

	s.handleAnalyze(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleZone(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/zones/RL3", nil)
	req.SetPathValue("code", "RL3")
	w := httptest.NewRecorder()

	s.handleZone(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Residential Low 3") {
		t.Errorf("body missing zone name: %s", w.Body.String())
	}
}

func TestHandleZoneNotFound(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/zones/XX9", nil)
	req.SetPathValue("code", "XX9")
	w := httptest.NewRecorder()

	s.handleZone(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleValue(t *testing.T) {
	s := testServer()

	body := `{"zone_code":"RM1","lot_area":1080,"lot_frontage":27,"building_area":150}`
	req := httptest.NewRequest(http.MethodPost, "/api/value", strings.NewReader(body))
	w := httptest.NewRecorder()

	s.handleValue(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Estimate  valuation.Estimate `json:"estimate"`
		Potential struct {
			PotentialUnits int `json:"potential_units"`
		} `json:"development_potential"`
		Proforma valuation.Proforma `json:"proforma"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Estimate.EstimatedValue <= 0 {
		t.Error("expected a positive estimate")
	}
	if resp.Potential.PotentialUnits != 6 {
		t.Errorf("PotentialUnits = %d, want 6 (1080/180)", resp.Potential.PotentialUnits)
	}
	if resp.Proforma.TotalUnits != 6 {
		t.Errorf("Proforma.TotalUnits = %d, want 6", resp.Proforma.TotalUnits)
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
