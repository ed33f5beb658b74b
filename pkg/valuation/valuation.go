// Package valuation estimates property values and redevelopment pro-formas
// from resolved zoning regulations and computed development potential. It is
// a heuristic cost-ceiling layer, not a market-comparable model.
package valuation

import (
	"fmt"
	"math"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// Property describes the inputs to a valuation: the lot, the existing
// improvement, and its dwelling type.
type Property struct {
	ZoneCode     string  `json:"zone_code"`
	LotArea      float64 `json:"lot_area_m2"`
	BuildingArea float64 `json:"building_area_m2"`
	DwellingType string  `json:"dwelling_type,omitempty"`
	AgeYears     int     `json:"age_years,omitempty"`
	IsCorner     bool    `json:"is_corner,omitempty"`
}

// Breakdown itemizes an estimate by component.
type Breakdown struct {
	LandValue        float64 `json:"land_value"`
	BuildingValue    float64 `json:"building_value"`
	Depreciation     float64 `json:"depreciation"`
	LocationPremium  float64 `json:"location_premium"`
	MarketAdjustment float64 `json:"market_adjustment"`
	Total            float64 `json:"total"`
}

// Estimate is the complete valuation output.
type Estimate struct {
	EstimatedValue      float64   `json:"estimated_value"`
	ConfidenceRangeLow  float64   `json:"confidence_range_low"`
	ConfidenceRangeHigh float64   `json:"confidence_range_high"`
	Breakdown           Breakdown `json:"breakdown"`
	Notes               []string  `json:"notes,omitempty"`
}

// Estimator values properties against a regulation repository.
type Estimator struct {
	repo *zoning.Repository
}

// NewEstimator creates an estimator over the given repository.
func NewEstimator(repo *zoning.Repository) *Estimator {
	return &Estimator{repo: repo}
}

// Value estimates the current market value of a property.
//
// Land is priced per square metre by base zone, the building by dwelling
// type with straight-line depreciation, then zoning premiums and the market
// adjustment are layered on the land component.
func (e *Estimator) Value(p Property) Estimate {
	d := zoning.Parse(p.ZoneCode)

	landRate, ok := landValuePerM2[d.BaseZone]
	if !ok {
		landRate = DefaultLandValuePerM2
	}
	land := p.LotArea * landRate

	buildingRate, ok := buildingValuePerM2[p.DwellingType]
	if !ok {
		buildingRate = DefaultBuildingValuePerM2
	}
	grossBuilding := p.BuildingArea * buildingRate
	building := grossBuilding * depreciationFactor(p.AgeYears)
	depreciation := building - grossBuilding

	premium := land * e.premiumRatio(d, p.IsCorner)

	base := land + grossBuilding
	market := base * (MarketAdjustment - 1)

	total := land + building + premium + market
	if total < 0 {
		total = 0
	}

	return Estimate{
		EstimatedValue:      total,
		ConfidenceRangeLow:  total * 0.90,
		ConfidenceRangeHigh: total * 1.10,
		Breakdown: Breakdown{
			LandValue:        land,
			BuildingValue:    grossBuilding,
			Depreciation:     depreciation,
			LocationPremium:  premium,
			MarketAdjustment: market,
			Total:            total,
		},
		Notes: e.notes(d),
	}
}

// premiumRatio sums the zoning premiums that apply to a designation.
func (e *Estimator) premiumRatio(d zoning.Designation, isCorner bool) float64 {
	ratio := 0.0
	if isCorner {
		ratio += PremiumCorner
	}
	if d.Suffix == "-0" {
		ratio += PremiumSuffixZero
	}

	regs, err := e.repo.Resolve(d)
	if err != nil {
		return ratio
	}

	switch regs.Category {
	case zoning.CategoryUptownCore, zoning.CategoryResidentialMedium, zoning.CategoryResidentialHigh:
		ratio += PremiumMultiUnit
	default:
		if regs.Permits(zoning.UseDuplex) {
			ratio += PremiumDuplex
		} else if regs.Permits(zoning.UseADU) {
			ratio += PremiumADU
		}
	}
	return ratio
}

func (e *Estimator) notes(d zoning.Designation) []string {
	var notes []string
	if d.Suffix == "-0" {
		notes = append(notes, "Suffix zone height and floor area restrictions priced in")
	}
	if d.SpecialProvision != "" {
		notes = append(notes, fmt.Sprintf("Special provision %s applies; site-specific review recommended", d.SpecialProvision))
	}
	return notes
}

// depreciationFactor returns the straight-line value retention for a
// building of the given age, floored so structures never depreciate below
// 30% of replacement.
func depreciationFactor(ageYears int) float64 {
	years := ageYears
	if years > MaxDepreciationYears {
		years = MaxDepreciationYears
	}
	if years < 0 {
		years = 0
	}
	factor := 1 - float64(years)*DepreciationPerYear
	return math.Max(MinDepreciationFactor, factor)
}
