package main

import (
	"fmt"
	"strings"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/validation"
	"github.com/ldineshkumar-dev/oakzone/pkg/valuation"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.RulePath != "" {
				fmt.Printf("    -> %s = %v\n", e.RulePath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.RulePath != "" {
				fmt.Printf("    -> %s = %v\n", w.RulePath, w.ActualValue)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printPotentialReport(p analysis.DevelopmentPotential) {
	fmt.Printf("Development Potential: %s (%s)\n", p.ZoneCode, p.ZoneName)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println()

	meets := "yes"
	if !p.MeetsMinimumRequirements {
		meets = "NO"
	}
	fmt.Printf("  Meets minimum lot requirements:  %s\n", meets)
	fmt.Printf("  Buildable area:                  %.1f m²\n", p.BuildableArea)
	fmt.Printf("  Max building footprint:          %.1f m²\n", p.MaxBuildingFootprint)
	fmt.Printf("  Max floor area:                  %.1f m²\n", p.MaxFloorArea)
	fmt.Printf("  Max height:                      %.1f m\n", p.MaxHeight)
	if p.MaxStoreys > 0 {
		fmt.Printf("  Max storeys:                     %d\n", p.MaxStoreys)
	}
	if p.FloorAreaRatio > 0 {
		fmt.Printf("  Floor area ratio:                %.2f\n", p.FloorAreaRatio)
	}
	fmt.Printf("  Potential units:                 %d\n", p.PotentialUnits)

	fmt.Println()
	fmt.Println("Setbacks")
	fmt.Println("--------")
	fmt.Printf("  Front yard:          %.1f m\n", p.Setbacks.FrontYard)
	fmt.Printf("  Rear yard:           %.1f m\n", p.Setbacks.RearYard)
	fmt.Printf("  Interior side left:  %.1f m\n", p.Setbacks.InteriorSideLeft)
	fmt.Printf("  Interior side right: %.1f m\n", p.Setbacks.InteriorSideRight)
	if p.Setbacks.FlankageYard > 0 {
		fmt.Printf("  Flankage yard:       %.1f m\n", p.Setbacks.FlankageYard)
	}

	if len(p.Constraints) > 0 {
		fmt.Println()
		fmt.Println("Constraints")
		fmt.Println("-----------")
		for _, c := range p.Constraints {
			fmt.Printf("  - %s\n", c)
		}
	}

	if len(p.Opportunities) > 0 {
		fmt.Println()
		fmt.Println("Opportunities")
		fmt.Println("-------------")
		for _, o := range p.Opportunities {
			fmt.Printf("  + %s\n", o)
		}
	}
}

func printZoneTable(zones []zoning.Regulations) {
	fmt.Printf("%-6s %-26s %10s %10s %8s %8s\n",
		"Zone", "Name", "Min Area", "Frontage", "Height", "Coverage")
	fmt.Printf("%-6s %-26s %10s %10s %8s %8s\n",
		"------", "--------------------------", "----------", "----------", "--------", "--------")

	for _, z := range zones {
		coverage := "-"
		if z.MaxLotCoverage > 0 {
			coverage = fmt.Sprintf("%.0f%%", z.MaxLotCoverage*100)
		}
		fmt.Printf("%-6s %-26s %9.1fm² %9.1fm %7.1fm %8s\n",
			z.ZoneCode, z.Name, z.MinLotArea, z.MinLotFrontage, z.MaxHeight, coverage)
	}
}

func printZoneDetail(regs zoning.Regulations) {
	code := regs.ZoneCode + regs.Suffix
	if regs.SpecialProvision != "" {
		code += " " + regs.SpecialProvision
	}
	fmt.Printf("%s - %s\n", code, regs.Name)
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println()

	fmt.Printf("  Category:         %s\n", regs.Category)
	fmt.Printf("  Min lot area:     %.1f m²\n", regs.MinLotArea)
	fmt.Printf("  Min lot frontage: %.1f m\n", regs.MinLotFrontage)
	fmt.Printf("  Max height:       %.1f m\n", regs.MaxHeight)
	if regs.MaxStoreys > 0 {
		fmt.Printf("  Max storeys:      %d\n", regs.MaxStoreys)
	}
	if regs.MaxLotCoverage > 0 {
		fmt.Printf("  Max lot coverage: %.0f%%\n", regs.MaxLotCoverage*100)
	}
	if regs.MaxFloorAreaRatio > 0 {
		fmt.Printf("  Max FAR:          %.2f\n", regs.MaxFloorAreaRatio)
	}
	if regs.MaxFloorAreaAbsolute > 0 {
		fmt.Printf("  Max floor area:   %.1f m²\n", regs.MaxFloorAreaAbsolute)
	}

	fmt.Println()
	fmt.Println("Setbacks")
	fmt.Println("--------")
	fmt.Printf("  Front yard:    %.1f m\n", regs.Setbacks.FrontYard)
	fmt.Printf("  Rear yard:     %.1f m\n", regs.Setbacks.RearYard)
	if regs.Setbacks.Symmetric() {
		fmt.Printf("  Interior side: %.1f m\n", regs.Setbacks.InteriorSide)
	} else {
		fmt.Printf("  Interior side: %.1f m / %.1f m\n", regs.Setbacks.InteriorSideMin, regs.Setbacks.InteriorSideMax)
	}
	if regs.Setbacks.FlankageYard > 0 {
		fmt.Printf("  Flankage yard: %.1f m\n", regs.Setbacks.FlankageYard)
	}

	uses := zoning.SummarizeUses(regs.PermittedUses)
	fmt.Println()
	fmt.Println("Permitted Uses")
	fmt.Println("--------------")
	for _, u := range uses.Residential {
		fmt.Printf("  - %s\n", u)
	}
	for _, u := range uses.Commercial {
		fmt.Printf("  - %s (commercial)\n", u)
	}
	for _, u := range uses.Other {
		fmt.Printf("  - %s\n", u)
	}
}

func printEstimateReport(e valuation.Estimate) {
	fmt.Println("Property Value Estimate")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("  Estimated value:  $%s\n", formatMoney(e.EstimatedValue))
	fmt.Printf("  Confidence range: $%s - $%s\n", formatMoney(e.ConfidenceRangeLow), formatMoney(e.ConfidenceRangeHigh))
	fmt.Println()
	fmt.Printf("  Land value:        $%s\n", formatMoney(e.Breakdown.LandValue))
	fmt.Printf("  Building value:    $%s\n", formatMoney(e.Breakdown.BuildingValue))
	fmt.Printf("  Depreciation:      $%s\n", formatMoney(e.Breakdown.Depreciation))
	fmt.Printf("  Location premium:  $%s\n", formatMoney(e.Breakdown.LocationPremium))
	fmt.Printf("  Market adjustment: $%s\n", formatMoney(e.Breakdown.MarketAdjustment))
	for _, n := range e.Notes {
		fmt.Printf("  note: %s\n", n)
	}
}

func printProformaReport(p valuation.Proforma) {
	fmt.Println("Redevelopment Pro-Forma")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("  Units:            %d (%s)\n", p.TotalUnits, p.UnitType)
	fmt.Printf("  Total cost:       $%s\n", formatMoney(p.Costs.Total))
	fmt.Printf("  Gross revenue:    $%s\n", formatMoney(p.GrossRevenue))
	fmt.Printf("  Gross profit:     $%s\n", formatMoney(p.GrossProfit))
	fmt.Printf("  Profit margin:    %.1f%%\n", p.ProfitMargin*100)
	fmt.Printf("  Return on cost:   %.1f%%\n", p.ReturnOnCost*100)
	fmt.Printf("  Timeline:         %d months\n", p.TimelineMonths)
	if p.Feasible {
		fmt.Println("  Feasibility:      FEASIBLE")
	} else {
		fmt.Println("  Feasibility:      NOT FEASIBLE")
	}
	if len(p.RiskFactors) > 0 {
		fmt.Println()
		fmt.Println("  Risks:")
		for _, r := range p.RiskFactors {
			fmt.Printf("    - %s\n", r)
		}
	}
}

func formatMoney(v float64) string {
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%s%.2fB", neg, v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%s%.2fM", neg, v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%s%.0fK", neg, v/1_000)
	}
	return fmt.Sprintf("%s%.0f", neg, v)
}
