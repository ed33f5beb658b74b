package analysis

import (
	"testing"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func resolveZone(t *testing.T, code string) zoning.Regulations {
	t.Helper()
	regs, err := zoning.NewRepository().Resolve(zoning.Parse(code))
	if err != nil {
		t.Fatalf("resolve %s: %v", code, err)
	}
	return regs
}

func TestPotentialUnits(t *testing.T) {
	tests := []struct {
		zone    string
		lotArea float64
		want    int
	}{
		{"RL2", 900, 1},
		{"RL10", 500, 1},  // below the duplex minimum
		{"RL10", 743, 2},  // at the duplex minimum
		{"RL10", 1200, 2}, // duplex caps at two
		{"RUC", 600, 4},   // townhouse at 150 m² per unit
		{"RUC", 100, 1},   // never below one
		{"RM1", 540, 3},   // 540 / 180
		{"RM3", 1000, 10}, // 1000 / 100
		{"RH", 1858, 30},  // 1858 / 60
		{"RM2", 700, 5},   // floor(700 / 135)
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			regs := resolveZone(t, tt.zone)
			if got := PotentialUnits(regs, tt.lotArea); got != tt.want {
				t.Errorf("PotentialUnits(%s, %v) = %d, want %d", tt.zone, tt.lotArea, got, tt.want)
			}
		})
	}
}

func TestMeetsMinimums(t *testing.T) {
	regs := resolveZone(t, "RL2")

	tests := []struct {
		area, frontage float64
		want           bool
	}{
		{900, 25, true},
		{836, 22.5, true}, // exactly at minimum is conforming
		{835, 25, false},
		{900, 22, false},
	}
	for _, tt := range tests {
		if got := MeetsMinimums(regs, tt.area, tt.frontage); got != tt.want {
			t.Errorf("MeetsMinimums(%v, %v) = %v, want %v", tt.area, tt.frontage, got, tt.want)
		}
	}
}

func TestEfficiencyRatio(t *testing.T) {
	p := DevelopmentPotential{BuildableArea: 300, MaxBuildingFootprint: 270}
	if got := p.EfficiencyRatio(); got <= 1.0 {
		t.Errorf("EfficiencyRatio = %v, want > 1 when envelope exceeds footprint", got)
	}

	var zero DevelopmentPotential
	if zero.EfficiencyRatio() != 0 {
		t.Error("zero potential should have zero efficiency")
	}
}
