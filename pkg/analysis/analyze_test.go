package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func testAnalyzer() *Analyzer {
	return New(zoning.NewRepository())
}

func hasEntry(entries []string, substr string) bool {
	for _, e := range entries {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestAnalyzeConformingLot(t *testing.T) {
	p := testAnalyzer().Analyze("RL2", LotGeometry{Area: 900, Frontage: 25}, 0)

	if !p.MeetsMinimumRequirements {
		t.Error("900 m² / 25 m lot should meet RL2 minimums")
	}
	if p.MaxHeight != 12.0 {
		t.Errorf("MaxHeight = %v, want 12.0", p.MaxHeight)
	}
	if p.ZoneName != "Residential Low 2" {
		t.Errorf("ZoneName = %q", p.ZoneName)
	}
	if p.PotentialUnits != 1 {
		t.Errorf("PotentialUnits = %d, want 1", p.PotentialUnits)
	}
	if p.BuildableArea <= 0 {
		t.Errorf("BuildableArea = %v, want > 0", p.BuildableArea)
	}

	// Footprint is coverage-bound here: 900 x 0.30.
	if math.Abs(p.MaxBuildingFootprint-270.0) > 1e-9 {
		t.Errorf("MaxBuildingFootprint = %v, want 270", p.MaxBuildingFootprint)
	}
	if hasEntry(p.Constraints, "below minimum") {
		t.Errorf("unexpected constraint: %v", p.Constraints)
	}
}

func TestAnalyzeSuffixZone(t *testing.T) {
	p := testAnalyzer().Analyze("RL2-0", LotGeometry{Area: 900, Frontage: 25}, 0)

	if p.MaxHeight != 9.0 {
		t.Errorf("MaxHeight = %v, want suffix 9.0", p.MaxHeight)
	}
	if p.MaxStoreys != 2 {
		t.Errorf("MaxStoreys = %d, want 2", p.MaxStoreys)
	}
	// 900 m² falls in the 835.99-928.99 band.
	if math.Abs(p.FloorAreaRatio-0.39) > 1e-9 {
		t.Errorf("FloorAreaRatio = %v, want 0.39", p.FloorAreaRatio)
	}
	if math.Abs(p.MaxFloorArea-900*0.39) > 1e-9 {
		t.Errorf("MaxFloorArea = %v, want %v", p.MaxFloorArea, 900*0.39)
	}

	if !hasEntry(p.Constraints, "Subject to -0 suffix zone restrictions") {
		t.Errorf("missing suffix constraint: %v", p.Constraints)
	}
	if !hasEntry(p.Constraints, "Height limited to 9.0m and 2 storeys") {
		t.Errorf("missing height constraint: %v", p.Constraints)
	}
	if !hasEntry(p.Constraints, "Front yard averaging") {
		t.Errorf("missing averaging constraint: %v", p.Constraints)
	}
}

func TestAnalyzeUndersizedLot(t *testing.T) {
	p := testAnalyzer().Analyze("RL1", LotGeometry{Area: 1000, Frontage: 25}, 0)

	if p.MeetsMinimumRequirements {
		t.Error("1000 m² lot should not meet the RL1 1393.5 m² minimum")
	}
	if !hasEntry(p.Constraints, "Lot area below minimum (1393.5 m² required)") {
		t.Errorf("missing area constraint: %v", p.Constraints)
	}
	if !hasEntry(p.Constraints, "Lot frontage below minimum (30.5 m required)") {
		t.Errorf("missing frontage constraint: %v", p.Constraints)
	}

	// Undersized lots still get a full envelope computation.
	if p.BuildableArea <= 0 {
		t.Errorf("BuildableArea = %v, want > 0", p.BuildableArea)
	}
}

func TestAnalyzeCornerWithGarage(t *testing.T) {
	p := testAnalyzer().Analyze("RL2", LotGeometry{Area: 900, Frontage: 25, IsCorner: true, HasGarage: true}, 0)

	if p.Setbacks.InteriorSideRight != 1.2 {
		t.Errorf("garage side = %v, want 1.2", p.Setbacks.InteriorSideRight)
	}
	if p.Setbacks.RearYard != 3.5 {
		t.Errorf("rear = %v, want reduced 3.5", p.Setbacks.RearYard)
	}
	if p.Setbacks.InteriorSideLeft < 3.0 {
		t.Errorf("left = %v, want >= 3.0", p.Setbacks.InteriorSideLeft)
	}
}

func TestAnalyzeUnknownZone(t *testing.T) {
	p := testAnalyzer().Analyze("XX9", LotGeometry{Area: 900, Frontage: 25}, 0)

	if p.ZoneName != "Unknown Zone" {
		t.Errorf("ZoneName = %q, want Unknown Zone", p.ZoneName)
	}
	if p.PotentialUnits != 0 {
		t.Errorf("PotentialUnits = %d, want 0", p.PotentialUnits)
	}
	if !hasEntry(p.Constraints, "Unknown zone code") {
		t.Errorf("missing unknown-zone constraint: %v", p.Constraints)
	}
	if p.BuildableArea != 0 || p.MaxFloorArea != 0 {
		t.Error("unknown zone should produce a zero envelope")
	}
}

func TestAnalyzeDerivesDepth(t *testing.T) {
	withDepth := testAnalyzer().Analyze("RL2", LotGeometry{Area: 900, Frontage: 25, Depth: 36}, 0)
	derived := testAnalyzer().Analyze("RL2", LotGeometry{Area: 900, Frontage: 25}, 0)

	if math.Abs(withDepth.BuildableArea-derived.BuildableArea) > 1e-9 {
		t.Errorf("explicit depth 36 (=900/25) should match derived: %v vs %v",
			withDepth.BuildableArea, derived.BuildableArea)
	}
}

func TestAnalyzeFloorAreaStoreyBound(t *testing.T) {
	p := testAnalyzer().Analyze("RUC", LotGeometry{Area: 300, Frontage: 10}, 0)

	// Floor area can never exceed footprint times storeys.
	if p.MaxFloorArea > p.MaxBuildingFootprint*float64(p.MaxStoreys)+1e-9 {
		t.Errorf("MaxFloorArea %v exceeds footprint %v x %d storeys",
			p.MaxFloorArea, p.MaxBuildingFootprint, p.MaxStoreys)
	}
}

func TestAnalyzeOpportunities(t *testing.T) {
	p := testAnalyzer().Analyze("RL2", LotGeometry{Area: 900, Frontage: 25}, 0)

	if !hasEntry(p.Opportunities, "Additional residential unit (ADU) permitted") {
		t.Errorf("missing ADU opportunity: %v", p.Opportunities)
	}
	if !hasEntry(p.Opportunities, "Home occupation permitted") {
		t.Errorf("missing home occupation opportunity: %v", p.Opportunities)
	}

	ruc := testAnalyzer().Analyze("RUC", LotGeometry{Area: 600, Frontage: 15}, 0)
	if !hasEntry(ruc.Opportunities, "Mixed-use development potential in Uptown Core") {
		t.Errorf("missing uptown opportunity: %v", ruc.Opportunities)
	}
	if !hasEntry(ruc.Opportunities, "Potential for 4 dwelling units") {
		t.Errorf("missing unit opportunity: %v", ruc.Opportunities)
	}
}
