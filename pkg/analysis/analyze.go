package analysis

import (
	"math"

	"github.com/ldineshkumar-dev/oakzone/pkg/envelope"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// DefaultBuildingHeight is the assumed proposed height when the caller gives
// no hint. It matters only for the height-dependent "-0" coverage rule.
const DefaultBuildingHeight = 7.0

// Analyzer computes development potential against a regulation repository.
// It is stateless apart from the read-only repository and safe for
// concurrent use.
type Analyzer struct {
	repo *zoning.Repository
}

// New creates an analyzer over the given repository.
func New(repo *zoning.Repository) *Analyzer {
	return &Analyzer{repo: repo}
}

// Analyze runs the full single-pass pipeline for a raw zone string and lot
// geometry. buildingHeight is the proposed height hint; pass 0 for the
// default.
//
// An unknown zone degrades to a flagged zero result rather than an error:
// zoning analysis must never crash a caller pipeline over an unrecognized
// code.
func (a *Analyzer) Analyze(rawZone string, lot LotGeometry, buildingHeight float64) DevelopmentPotential {
	d := zoning.Parse(rawZone)

	// 1. Resolve regulations. An unknown base zone is a terminal,
	// non-fatal result.
	regs, err := a.repo.Resolve(d)
	if err != nil {
		return DevelopmentPotential{
			ZoneCode:      rawZone,
			ZoneName:      "Unknown Zone",
			PermittedUses: []string{},
			Constraints:   []string{"Unknown zone code"},
			Opportunities: []string{},
		}
	}

	if buildingHeight <= 0 {
		buildingHeight = DefaultBuildingHeight
	}

	// 2. Derive depth when absent.
	depth := lot.Depth
	if depth <= 0 {
		if lot.Frontage > 0 {
			depth = lot.Area / lot.Frontage
		} else {
			depth = 0
		}
	}

	// 3. Minimum requirements: both area and frontage, inclusive bounds.
	meets := MeetsMinimums(regs, lot.Area, lot.Frontage)

	// 4. Setbacks and the setback-derived envelope.
	setbacks := envelope.CalculateSetbacks(regs, lot.IsCorner, lot.HasGarage)
	buildable := envelope.BuildableArea(lot.Frontage, depth, setbacks)

	// 5-6. Footprint: lesser of the envelope and the coverage cap.
	footprint := buildable
	if cov := envelope.Coverage(regs, buildingHeight); cov > 0 {
		footprint = math.Min(buildable, lot.Area*cov)
	}

	// 7. FAR-derived floor area, with any absolute ceiling applied.
	far := envelope.ResolveFAR(regs, lot.Area)
	floorArea := envelope.FloorAreaByFAR(regs, lot.Area)

	// 8. Floor area can never exceed what footprint and storeys allow.
	if regs.MaxStoreys > 0 {
		floorArea = math.Min(floorArea, footprint*float64(regs.MaxStoreys))
	}

	// 9. Unit count.
	units := PotentialUnits(regs, lot.Area)

	return DevelopmentPotential{
		ZoneCode:                 d.String(),
		ZoneName:                 regs.Name,
		MeetsMinimumRequirements: meets,
		BuildableArea:            buildable,
		MaxBuildingFootprint:     footprint,
		MaxFloorArea:             floorArea,
		MaxHeight:                regs.MaxHeight,
		MaxStoreys:               regs.MaxStoreys,
		FloorAreaRatio:           far,
		PotentialUnits:           units,
		Setbacks:                 setbacks,
		PermittedUses:            regs.PermittedUses,
		Constraints:              constraints(regs, lot.Area, lot.Frontage),
		Opportunities:            opportunities(regs, units),
	}
}

// MeetsMinimums reports whether a lot satisfies the zone's minimum area and
// frontage, both inclusive. Exposed standalone as a cheap pre-check before
// the full pipeline.
func MeetsMinimums(regs zoning.Regulations, lotArea, lotFrontage float64) bool {
	return lotArea >= regs.MinLotArea && lotFrontage >= regs.MinLotFrontage
}
