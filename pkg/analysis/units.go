package analysis

import (
	"math"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// PotentialUnits estimates the number of dwelling units a lot supports under
// the zone's density rules.
//
// Zones with a per-unit lot area minimum (RUC townhouse, RM, RH) yield
// floor(area / per-unit), never below one. RL10 lots large enough for the
// duplex sub-record yield two. Everything else is a single unit.
func PotentialUnits(regs zoning.Regulations, lotArea float64) int {
	if regs.MinLotAreaPerUnit > 0 {
		n := int(math.Floor(lotArea / regs.MinLotAreaPerUnit))
		if n < 1 {
			return 1
		}
		return n
	}

	if regs.Permits(zoning.UseDuplex) {
		if rule, ok := regs.DwellingRules[zoning.UseDuplex]; ok && rule.MinLotArea > 0 && lotArea >= rule.MinLotArea {
			return 2
		}
	}

	if regs.Permits(zoning.UseTownhouse) {
		if rule, ok := regs.DwellingRules[zoning.UseTownhouse]; ok && rule.MinLotAreaPerUnit > 0 {
			n := int(math.Floor(lotArea / rule.MinLotAreaPerUnit))
			if n < 1 {
				return 1
			}
			return n
		}
	}

	return 1
}
