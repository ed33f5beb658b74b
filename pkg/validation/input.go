package validation

import (
	"fmt"
	"strings"
)

// ValidateLotInput checks raw analysis inputs before they reach the
// pipeline. Warnings flag implausible but computable geometry.
func ValidateLotInput(zoneCode string, lotArea, lotFrontage float64) *Report {
	r := NewReport()

	if strings.TrimSpace(zoneCode) == "" {
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "zone_code is required",
			RulePath: "zone_code",
			Expected: "a designation string, e.g. \"RL3-0\"",
		})
	}

	if lotArea <= 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "lot_area must be > 0",
			RulePath:    "lot_area",
			ActualValue: lotArea,
			Expected:    "> 0",
		})
	}
	if lotFrontage <= 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "lot_frontage must be > 0",
			RulePath:    "lot_frontage",
			ActualValue: lotFrontage,
			Expected:    "> 0",
		})
	}

	if lotArea > 0 && lotFrontage > 0 {
		depth := lotArea / lotFrontage
		if depth < 10 {
			r.AddWarning(Result{
				Level:       LevelInput,
				Message:     fmt.Sprintf("implied lot depth %.1f m is unusually shallow", depth),
				RulePath:    "lot_area",
				ActualValue: depth,
				Suggestions: []string{"Check that area and frontage are in metres, not feet"},
			})
		}
	}

	return r
}
