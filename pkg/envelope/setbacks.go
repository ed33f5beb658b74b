// Package envelope derives the legal building envelope for a lot: governing
// setbacks, lot coverage, and floor-area ratio under a resolved set of zone
// regulations.
package envelope

import (
	"math"

	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// Setbacks are the governing yard requirements for one lot. FlankageYard is
// zero except on corner lots.
type Setbacks struct {
	FrontYard         float64 `json:"front_yard"`
	RearYard          float64 `json:"rear_yard"`
	InteriorSideLeft  float64 `json:"interior_side_left"`
	InteriorSideRight float64 `json:"interior_side_right"`
	FlankageYard      float64 `json:"flankage_yard,omitempty"`
}

// TotalSideSetback returns the combined interior side requirement.
func (s Setbacks) TotalSideSetback() float64 {
	return s.InteriorSideLeft + s.InteriorSideRight
}

// CalculateSetbacks derives the setbacks for a zone on a specific lot.
//
// Asymmetric zones put the stricter minimum on the left side and the relaxed
// one on the right. An attached garage reduces the relaxed (right) side to
// the zone's garage value, or both sides where the zone's rule says so. On
// corner lots the rear-yard reduction and the 3.0 m left-side minimum are
// coupled and always applied together, and the flankage yard is populated.
func CalculateSetbacks(regs zoning.Regulations, isCorner, hasGarage bool) Setbacks {
	sb := regs.Setbacks
	out := Setbacks{
		FrontYard: sb.FrontYard,
		RearYard:  sb.RearYard,
	}

	if sb.Symmetric() {
		out.InteriorSideLeft = sb.InteriorSide
		out.InteriorSideRight = sb.InteriorSide
	} else {
		out.InteriorSideLeft = sb.InteriorSideMin
		out.InteriorSideRight = sb.InteriorSideMax
	}

	if hasGarage && regs.Garage != nil {
		out.InteriorSideRight = regs.Garage.ReducedTo
		if regs.Garage.BothSides {
			out.InteriorSideLeft = regs.Garage.ReducedTo
		}
	}

	if isCorner {
		if regs.CornerLot != nil {
			out.RearYard = regs.CornerLot.RearYardReducedTo
			out.InteriorSideLeft = math.Max(out.InteriorSideLeft, regs.CornerLot.MinInteriorSide)
		}
		out.FlankageYard = sb.FlankageYard
	}

	return out
}

// BuildableArea returns the rectangle remaining after setbacks, clamped to
// zero for lots too narrow or shallow for any legal envelope.
func BuildableArea(frontage, depth float64, s Setbacks) float64 {
	width := math.Max(0, frontage-s.InteriorSideLeft-s.InteriorSideRight)
	d := math.Max(0, depth-s.FrontYard-s.RearYard)
	return width * d
}
