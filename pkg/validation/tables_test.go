package validation

import (
	"testing"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func TestValidateTablesBuiltins(t *testing.T) {
	repo := zoning.NewRepository()
	report := ValidateTables(repo)

	if !report.Valid {
		t.Fatalf("built-in tables should validate cleanly: %s", report.Summary)
	}
	if len(report.Errors) != 0 {
		for _, e := range report.Errors {
			t.Logf("unexpected error: %s", e.Message)
		}
		t.Errorf("expected 0 errors, got %d", len(report.Errors))
	}
}

func TestValidateTablesCoversAllZones(t *testing.T) {
	repo := zoning.NewRepository()
	if len(repo.Zones()) < 17 {
		t.Fatalf("expected at least 17 built-in zones, got %d", len(repo.Zones()))
	}

	// Every zone has a positive minimum lot area; the audit relies on it.
	for _, z := range repo.Zones() {
		if z.MinLotArea <= 0 {
			t.Errorf("%s: min lot area %f should be positive", z.ZoneCode, z.MinLotArea)
		}
	}
}

func TestValidateLotInput(t *testing.T) {
	tests := []struct {
		name      string
		zone      string
		area      float64
		frontage  float64
		wantValid bool
	}{
		{"valid", "RL3", 600, 18, true},
		{"missing zone", "", 600, 18, false},
		{"zero area", "RL3", 0, 18, false},
		{"negative frontage", "RL3", 600, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateLotInput(tt.zone, tt.area, tt.frontage)
			if r.Valid != tt.wantValid {
				t.Errorf("ValidateLotInput(%q, %v, %v).Valid = %v, want %v",
					tt.zone, tt.area, tt.frontage, r.Valid, tt.wantValid)
			}
		})
	}
}

func TestValidateLotInputShallowDepthWarning(t *testing.T) {
	// 600 m² over 100 m frontage implies a 6 m deep lot.
	r := ValidateLotInput("RL3", 600, 100)
	if !r.Valid {
		t.Fatal("shallow depth should warn, not error")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a shallow-depth warning")
	}
}
