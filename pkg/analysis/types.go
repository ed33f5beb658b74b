// Package analysis computes the development potential of a lot under a
// resolved zone designation: buildable envelope, floor area, unit count, and
// the constraint and opportunity narratives surfaced to callers.
package analysis

import (
	"github.com/ldineshkumar-dev/oakzone/pkg/envelope"
)

// LotGeometry describes the measurable dimensions of one lot. Depth is
// derived as area/frontage when zero.
type LotGeometry struct {
	Area      float64 `json:"area_m2"`
	Frontage  float64 `json:"frontage_m"`
	Depth     float64 `json:"depth_m,omitempty"`
	IsCorner  bool    `json:"is_corner,omitempty"`
	HasGarage bool    `json:"has_garage,omitempty"`
}

// DevelopmentPotential is the result of one analysis call. It is computed
// fresh per request and carries no state beyond the call.
type DevelopmentPotential struct {
	ZoneCode                 string  `json:"zone_code"`
	ZoneName                 string  `json:"zone_name"`
	MeetsMinimumRequirements bool    `json:"meets_minimum_requirements"`
	BuildableArea            float64 `json:"buildable_area_m2"`
	MaxBuildingFootprint     float64 `json:"max_building_footprint_m2"`
	MaxFloorArea             float64 `json:"max_floor_area_m2"`
	MaxHeight                float64 `json:"max_height_m"`
	MaxStoreys               int     `json:"max_storeys,omitempty"`
	FloorAreaRatio           float64 `json:"floor_area_ratio,omitempty"`
	PotentialUnits           int     `json:"potential_units"`

	Setbacks      envelope.Setbacks `json:"setbacks"`
	PermittedUses []string          `json:"permitted_uses"`
	Constraints   []string          `json:"constraints"`
	Opportunities []string          `json:"opportunities"`
}

// EfficiencyRatio is buildable area relative to the permitted footprint.
func (d DevelopmentPotential) EfficiencyRatio() float64 {
	if d.MaxBuildingFootprint > 0 {
		return d.BuildableArea / d.MaxBuildingFootprint
	}
	return 0
}
