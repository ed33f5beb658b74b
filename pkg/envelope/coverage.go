package envelope

import "github.com/ldineshkumar-dev/oakzone/pkg/zoning"

// Table 6.4.2: fixed "-0" suffix coverage for the mid-range RL zones.
var suffixZeroCoverage = map[string]float64{
	"RL3":  0.35,
	"RL4":  0.35,
	"RL5":  0.35,
	"RL7":  0.35,
	"RL8":  0.35,
	"RL10": 0.35,
}

// Coverage returns the maximum lot coverage ratio for a resolved zone, given
// the proposed building height. Returns 0 when the zone has no coverage limit.
//
// In "-0" suffix RL1/RL2 zones, buildings over 7.0 m get a stricter 25% cap
// in place of the base 30%.
func Coverage(regs zoning.Regulations, buildingHeight float64) float64 {
	if regs.Suffix == "-0" {
		switch regs.ZoneCode {
		case "RL1", "RL2":
			if buildingHeight > 7.0 {
				return 0.25
			}
			return regs.MaxLotCoverage
		}
		if c, ok := suffixZeroCoverage[regs.ZoneCode]; ok {
			return c
		}
	}
	return regs.MaxLotCoverage
}
