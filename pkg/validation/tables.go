package validation

import (
	"fmt"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// ValidateTables audits a loaded regulation repository. Run it once at
// startup: a table that passes here cannot produce a negative setback or a
// non-monotonic floor-area-ratio band at analysis time.
func ValidateTables(repo *zoning.Repository) *Report {
	r := NewReport()

	for _, regs := range repo.Zones() {
		validateZone(regs, r)
	}
	for _, rule := range repo.SuffixRules() {
		validateSuffix(rule, r)
	}

	return r
}

func validateZone(regs zoning.Regulations, r *Report) {
	path := func(field string) string {
		return fmt.Sprintf("zones.%s.%s", regs.ZoneCode, field)
	}

	if regs.MinLotArea <= 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: min_lot_area must be > 0", regs.ZoneCode),
			RulePath:    path("min_lot_area"),
			ActualValue: regs.MinLotArea,
			Expected:    "> 0",
		})
	}
	if regs.MinLotFrontage <= 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: min_lot_frontage must be > 0", regs.ZoneCode),
			RulePath:    path("min_lot_frontage"),
			ActualValue: regs.MinLotFrontage,
			Expected:    "> 0",
		})
	}
	if regs.MaxHeight <= 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: max_height must be > 0", regs.ZoneCode),
			RulePath:    path("max_height"),
			ActualValue: regs.MaxHeight,
			Expected:    "> 0",
		})
	}

	setbacks := map[string]float64{
		"front_yard":        regs.Setbacks.FrontYard,
		"rear_yard":         regs.Setbacks.RearYard,
		"interior_side":     regs.Setbacks.InteriorSide,
		"interior_side_min": regs.Setbacks.InteriorSideMin,
		"interior_side_max": regs.Setbacks.InteriorSideMax,
		"flankage_yard":     regs.Setbacks.FlankageYard,
	}
	for name, v := range setbacks {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelTable,
				Message:     fmt.Sprintf("%s: setbacks.%s must be non-negative", regs.ZoneCode, name),
				RulePath:    path("setbacks." + name),
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}

	if regs.Setbacks.InteriorSideMin > 0 && regs.Setbacks.InteriorSideMax > regs.Setbacks.InteriorSideMin {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: interior_side_max (%.1f) exceeds interior_side_min (%.1f); the reduced side must be the smaller value", regs.ZoneCode, regs.Setbacks.InteriorSideMax, regs.Setbacks.InteriorSideMin),
			RulePath:    path("setbacks.interior_side_max"),
			ActualValue: regs.Setbacks.InteriorSideMax,
			Expected:    fmt.Sprintf("<= %.1f", regs.Setbacks.InteriorSideMin),
		})
	}

	if regs.MaxLotCoverage < 0 || regs.MaxLotCoverage > 1 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: max_lot_coverage %.2f is outside (0, 1]", regs.ZoneCode, regs.MaxLotCoverage),
			RulePath:    path("max_lot_coverage"),
			ActualValue: regs.MaxLotCoverage,
			Expected:    "0 < coverage <= 1",
			Suggestions: []string{"Express coverage as a ratio, not a percentage"},
		})
	}

	if regs.MaxFloorAreaRatio < 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("%s: max_floor_area_ratio must be non-negative", regs.ZoneCode),
			RulePath:    path("max_floor_area_ratio"),
			ActualValue: regs.MaxFloorAreaRatio,
			Expected:    ">= 0",
		})
	}

	if len(regs.PermittedUses) == 0 {
		r.AddWarning(Result{
			Level:    LevelTable,
			Message:  fmt.Sprintf("%s: no permitted uses listed", regs.ZoneCode),
			RulePath: path("permitted_uses"),
			Expected: "at least 1 use",
		})
	}
}

func validateSuffix(rule zoning.SuffixRule, r *Report) {
	path := fmt.Sprintf("suffix_zones.%s", rule.Suffix)

	if rule.MaxHeight <= 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("suffix %s: max_height must be > 0", rule.Suffix),
			RulePath:    path + ".max_height",
			ActualValue: rule.MaxHeight,
			Expected:    "> 0",
		})
	}

	if rule.FARTable == nil {
		return
	}

	bands := rule.FARTable.Bands
	for i := 0; i < len(bands)-1; i++ {
		if bands[i].UpperBound >= bands[i+1].UpperBound {
			r.AddError(Result{
				Level:       LevelTable,
				Message:     fmt.Sprintf("suffix %s: far_table bands must have strictly ascending upper bounds (band %d: %.2f >= %.2f)", rule.Suffix, i, bands[i].UpperBound, bands[i+1].UpperBound),
				RulePath:    fmt.Sprintf("%s.far_table.bands[%d]", path, i+1),
				ActualValue: bands[i+1].UpperBound,
				Expected:    fmt.Sprintf("> %.2f", bands[i].UpperBound),
			})
		}
		if bands[i].Ratio < bands[i+1].Ratio {
			r.AddWarning(Result{
				Level:       LevelTable,
				Message:     fmt.Sprintf("suffix %s: far_table ratios usually decrease with lot area (band %d: %.2f < %.2f)", rule.Suffix, i, bands[i].Ratio, bands[i+1].Ratio),
				RulePath:    fmt.Sprintf("%s.far_table.bands[%d].ratio", path, i+1),
				ActualValue: bands[i+1].Ratio,
			})
		}
	}
	for i, b := range bands {
		if b.Ratio <= 0 || b.Ratio > 1 {
			r.AddError(Result{
				Level:       LevelTable,
				Message:     fmt.Sprintf("suffix %s: far_table band %d ratio %.2f is outside (0, 1]", rule.Suffix, i, b.Ratio),
				RulePath:    fmt.Sprintf("%s.far_table.bands[%d].ratio", path, i),
				ActualValue: b.Ratio,
				Expected:    "0 < ratio <= 1",
			})
		}
	}
	if rule.FARTable.TopRatio <= 0 {
		r.AddError(Result{
			Level:       LevelTable,
			Message:     fmt.Sprintf("suffix %s: far_table top_ratio must be > 0", rule.Suffix),
			RulePath:    path + ".far_table.top_ratio",
			ActualValue: rule.FARTable.TopRatio,
			Expected:    "> 0",
		})
	}
}
