package analysis

import (
	"fmt"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// constraints builds the human-readable restriction list for a resolved zone
// on a lot. Order is stable: lot deficiencies first, then suffix
// restrictions.
func constraints(regs zoning.Regulations, lotArea, lotFrontage float64) []string {
	out := []string{}

	if lotArea < regs.MinLotArea {
		out = append(out, fmt.Sprintf("Lot area below minimum (%.1f m² required)", regs.MinLotArea))
	}
	if lotFrontage < regs.MinLotFrontage {
		out = append(out, fmt.Sprintf("Lot frontage below minimum (%.1f m required)", regs.MinLotFrontage))
	}

	if regs.Suffix == "-0" {
		out = append(out, "Subject to -0 suffix zone restrictions")
		out = append(out, fmt.Sprintf("Height limited to %.1fm and %d storeys", regs.MaxHeight, regs.MaxStoreys))
		out = append(out, "Front yard averaging may apply")
	}

	return out
}

// opportunities builds the development upside list: multi-unit potential and
// the softer permitted uses worth surfacing to an applicant.
func opportunities(regs zoning.Regulations, units int) []string {
	out := []string{}

	if units > 1 {
		out = append(out, fmt.Sprintf("Potential for %d dwelling units", units))
	}
	if regs.Permits(zoning.UseADU) {
		out = append(out, "Additional residential unit (ADU) permitted")
	}
	if regs.Permits(zoning.UseHomeOccupation) {
		out = append(out, "Home occupation permitted")
	}
	if regs.Permits(zoning.UseBedBreakfast) {
		out = append(out, "Bed and breakfast use permitted")
	}

	switch regs.Category {
	case zoning.CategoryResidentialMedium, zoning.CategoryResidentialHigh:
		out = append(out, "Medium density residential development permitted")
	case zoning.CategoryUptownCore:
		out = append(out, "Mixed-use development potential in Uptown Core")
	}

	return out
}
