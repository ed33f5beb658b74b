package valuation

import (
	"fmt"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// Costs itemizes development costs.
type Costs struct {
	LandAcquisition float64 `json:"land_acquisition"`
	HardCosts       float64 `json:"hard_costs"`
	SoftCosts       float64 `json:"soft_costs"`
	FinancingCosts  float64 `json:"financing_costs"`
	MarketingCosts  float64 `json:"marketing_costs"`
	Contingency     float64 `json:"contingency"`
	Total           float64 `json:"total"`
}

// Proforma is a redevelopment feasibility summary for a lot, built to the
// limit of its development potential.
type Proforma struct {
	ZoneCode       string   `json:"zone_code"`
	TotalUnits     int      `json:"total_units"`
	UnitType       string   `json:"unit_type"`
	Costs          Costs    `json:"costs"`
	GrossRevenue   float64  `json:"gross_revenue"`
	GrossProfit    float64  `json:"gross_profit"`
	ProfitMargin   float64  `json:"profit_margin"`
	ReturnOnCost   float64  `json:"return_on_cost"`
	TimelineMonths int      `json:"timeline_months"`
	Feasible       bool     `json:"feasible"`
	RiskFactors    []string `json:"risk_factors"`
}

// Develop builds a redevelopment pro-forma from a computed development
// potential. landCost is the acquisition price, typically the Value estimate
// of the property as it stands.
//
// Single-unit lots get the detached model; multi-unit lots price by the
// zone's new-build rate with heavier financing and contingency loads.
func (e *Estimator) Develop(potential analysis.DevelopmentPotential, landCost float64) Proforma {
	if potential.PotentialUnits <= 1 {
		return e.singleFamilyProforma(potential, landCost)
	}
	return e.multiUnitProforma(potential, landCost)
}

func (e *Estimator) singleFamilyProforma(potential analysis.DevelopmentPotential, landCost float64) Proforma {
	floorArea := potential.MaxFloorArea

	hard := floorArea * constructionCostPerM2[zoning.UseDetached]
	soft := hard * SoftCostRatio
	financing := (landCost + hard + soft) * SingleFinancingRatio
	revenue := floorArea * buildingValuePerM2[zoning.UseDetached] * DetachedResaleMargin
	marketing := revenue * SingleMarketingRatio

	costs := Costs{
		LandAcquisition: landCost,
		HardCosts:       hard,
		SoftCosts:       soft,
		FinancingCosts:  financing,
		MarketingCosts:  marketing,
	}
	costs.Total = landCost + hard + soft + financing + marketing

	return finishProforma(Proforma{
		ZoneCode:       potential.ZoneCode,
		TotalUnits:     1,
		UnitType:       zoning.UseDetached,
		Costs:          costs,
		GrossRevenue:   revenue,
		TimelineMonths: 12,
	})
}

func (e *Estimator) multiUnitProforma(potential analysis.DevelopmentPotential, landCost float64) Proforma {
	units := potential.PotentialUnits
	floorArea := potential.MaxFloorArea

	d := zoning.Parse(potential.ZoneCode)
	unitType := multiUnitType(d.BaseZone)

	price, ok := salePricePerM2[d.BaseZone]
	if !ok {
		price = DefaultSalePricePerM2
	}
	revenue := floorArea * price

	cc, ok := constructionCostPerM2[unitType]
	if !ok {
		cc = constructionCostPerM2[zoning.UseTownhouse]
	}
	hard := floorArea * cc
	soft := hard * SoftCostRatio
	financing := (landCost + hard) * MultiFinancingRatio
	marketing := revenue * MultiMarketingRatio
	contingency := hard * MultiContingencyRatio

	costs := Costs{
		LandAcquisition: landCost,
		HardCosts:       hard,
		SoftCosts:       soft,
		FinancingCosts:  financing,
		MarketingCosts:  marketing,
		Contingency:     contingency,
	}
	costs.Total = landCost + hard + soft + financing + marketing + contingency

	return finishProforma(Proforma{
		ZoneCode:       potential.ZoneCode,
		TotalUnits:     units,
		UnitType:       unitType,
		Costs:          costs,
		GrossRevenue:   revenue,
		TimelineMonths: 18 + (units/10)*6,
	})
}

// finishProforma derives profit, margin, feasibility, and risks from the
// cost and revenue totals.
func finishProforma(p Proforma) Proforma {
	p.GrossProfit = p.GrossRevenue - p.Costs.Total
	if p.GrossRevenue > 0 {
		p.ProfitMargin = p.GrossProfit / p.GrossRevenue
	}
	if p.Costs.Total > 0 {
		p.ReturnOnCost = p.GrossProfit / p.Costs.Total
	}
	p.Feasible = p.ProfitMargin >= MinProfitMargin
	p.RiskFactors = developmentRisks(p.ZoneCode, p.TotalUnits)
	return p
}

func multiUnitType(baseZone string) string {
	switch baseZone {
	case "RM1", "RUC":
		return zoning.UseTownhouse
	case "RM2":
		return zoning.UseBackToBack
	case "RM3":
		return zoning.UseStacked
	case "RM4", "RH":
		return zoning.UseApartment
	}
	return zoning.UseTownhouse
}

func developmentRisks(zoneCode string, units int) []string {
	risks := []string{}

	d := zoning.Parse(zoneCode)
	if d.Suffix == "-0" {
		risks = append(risks, "Suffix zone restrictions may limit development")
	}
	if units > 10 {
		risks = append(risks, fmt.Sprintf("Market absorption risk for %d units", units))
	}
	if zoning.CategoryOf(d.BaseZone) == zoning.CategoryResidentialMedium {
		risks = append(risks, "Medium density requires higher construction standards")
	}

	risks = append(risks,
		"Construction cost escalation risk",
		"Municipal approval timeline risk",
	)
	return risks
}
