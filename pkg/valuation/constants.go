package valuation

import "github.com/ldineshkumar-dev/oakzone/pkg/zoning"

// Heuristic valuation constants. Land values are CAD per square metre by
// base zone; building and construction values are CAD per square metre of
// floor area by dwelling type.

var landValuePerM2 = map[string]float64{
	"RL1":  650,
	"RL2":  580,
	"RL3":  520,
	"RL4":  500,
	"RL5":  480,
	"RL6":  450,
	"RL7":  470,
	"RL8":  420,
	"RL9":  400,
	"RL10": 490,
	"RL11": 460,
	"RUC":  380,
	"RM1":  350,
	"RM2":  330,
	"RM3":  320,
	"RM4":  300,
	"RH":   280,
}

var buildingValuePerM2 = map[string]float64{
	zoning.UseDetached:     2800,
	zoning.UseSemiDetached: 2600,
	zoning.UseTownhouse:    2400,
	zoning.UseBackToBack:   2200,
	zoning.UseStacked:      2300,
	zoning.UseApartment:    2000,
}

var constructionCostPerM2 = map[string]float64{
	zoning.UseDetached:     2500,
	zoning.UseSemiDetached: 2200,
	zoning.UseTownhouse:    2000,
	zoning.UseBackToBack:   1800,
	zoning.UseStacked:      1900,
	zoning.UseApartment:    1700,
}

// New-build sale prices per square metre by base zone, used for multi-unit
// revenue. Single detached resale carries a 1.4 margin over building value.
var salePricePerM2 = map[string]float64{
	"RM1": 4200,
	"RM2": 3800,
	"RM3": 3600,
	"RM4": 3400,
	"RUC": 4000,
}

const (
	DefaultLandValuePerM2     = 500.0
	DefaultBuildingValuePerM2 = 2800.0
	DefaultSalePricePerM2     = 3800.0
	DetachedResaleMargin      = 1.4

	SoftCostRatio    = 0.25 // permits, consultants, financing, contingency, marketing
	MinProfitMargin  = 0.15
	MarketAdjustment = 1.05 // balanced-to-hot market uplift

	DepreciationPerYear   = 0.02
	MaxDepreciationYears  = 40
	MinDepreciationFactor = 0.30

	// Single-family pro-forma factors.
	SingleFinancingRatio = 0.04
	SingleMarketingRatio = 0.02

	// Multi-unit pro-forma factors.
	MultiFinancingRatio   = 0.06
	MultiMarketingRatio   = 0.03
	MultiContingencyRatio = 0.08
)

// Location and zoning premiums, applied against land value. The corner-lot
// and "-0" suffix discounts reflect yard and height restrictions.
const (
	PremiumCorner     = -0.05
	PremiumSuffixZero = -0.05
	PremiumADU        = 0.08
	PremiumDuplex     = 0.15
	PremiumMultiUnit  = 0.20
)
