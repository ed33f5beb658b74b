package envelope

import "github.com/ldineshkumar-dev/oakzone/pkg/zoning"

// DefaultFAR is the conservative fallback when a zone specifies neither an
// explicit ratio, a banded table, nor enough data for the coverage proxy.
const DefaultFAR = 0.70

// ResolveFAR returns the floor-area ratio for a resolved zone on a lot.
//
// Precedence, first match wins: an explicit zone-level ratio; the suffix
// zone's lot-area-banded table; coverage times storeys as a proxy; 0.70.
func ResolveFAR(regs zoning.Regulations, lotArea float64) float64 {
	if regs.MaxFloorAreaRatio > 0 {
		return regs.MaxFloorAreaRatio
	}
	if regs.FARTable != nil {
		return regs.FARTable.Ratio(lotArea)
	}
	if regs.MaxLotCoverage > 0 && regs.MaxStoreys > 0 {
		return regs.MaxLotCoverage * float64(regs.MaxStoreys)
	}
	return DefaultFAR
}

// FloorAreaByFAR returns the FAR-derived floor area, capped by the zone's
// absolute ceiling when one exists (e.g. RL6's 355 m²).
func FloorAreaByFAR(regs zoning.Regulations, lotArea float64) float64 {
	area := ResolveFAR(regs, lotArea) * lotArea
	if regs.MaxFloorAreaAbsolute > 0 && area > regs.MaxFloorAreaAbsolute {
		area = regs.MaxFloorAreaAbsolute
	}
	return area
}
