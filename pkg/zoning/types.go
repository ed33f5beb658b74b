// Package zoning parses zone designation strings and resolves them against
// the regulation tables of Oakville By-law 2014-014: base zone records,
// suffix-zone rules, and special-provision overrides.
package zoning

// Designation is a parsed zone designation string, e.g. "RL2-0 SP:1".
type Designation struct {
	BaseZone         string `yaml:"base_zone" json:"base_zone"`
	Suffix           string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	SpecialProvision string `yaml:"special_provision,omitempty" json:"special_provision,omitempty"`
	Raw              string `yaml:"-" json:"raw,omitempty"`
}

// String reassembles the designation in canonical form.
func (d Designation) String() string {
	s := d.BaseZone + d.Suffix
	if d.SpecialProvision != "" {
		s += " " + d.SpecialProvision
	}
	return s
}

// Category classifies a base zone by residential intensity.
type Category string

const (
	CategoryResidentialLow    Category = "residential_low"
	CategoryUptownCore        Category = "residential_uptown_core"
	CategoryResidentialMedium Category = "residential_medium"
	CategoryResidentialHigh   Category = "residential_high"
	CategoryOther             Category = "other"
)

// Permitted use identifiers from By-law 2014-014 Tables 6.2.1 and 6.2.2.
const (
	UseDetached       = "detached_dwelling"
	UseSemiDetached   = "semi_detached_dwelling"
	UseDuplex         = "duplex_dwelling"
	UseTownhouse      = "townhouse_dwelling"
	UseBackToBack     = "back_to_back_townhouse"
	UseStacked        = "stacked_townhouse"
	UseApartment      = "apartment_dwelling"
	UseLinked         = "linked_dwelling"
	UseADU            = "additional_residential_unit"
	UseHomeOccupation = "home_occupation"
	UseBedBreakfast   = "bed_and_breakfast"
)

// SetbackSpec holds the yard minimums a zone prescribes. Interior sides are
// either a single symmetric value or a min/max pair where one reduced side is
// permitted when the other compensates.
type SetbackSpec struct {
	FrontYard       float64 `yaml:"front_yard" json:"front_yard"`
	RearYard        float64 `yaml:"rear_yard" json:"rear_yard"`
	InteriorSide    float64 `yaml:"interior_side,omitempty" json:"interior_side,omitempty"`
	InteriorSideMin float64 `yaml:"interior_side_min,omitempty" json:"interior_side_min,omitempty"`
	InteriorSideMax float64 `yaml:"interior_side_max,omitempty" json:"interior_side_max,omitempty"`
	FlankageYard    float64 `yaml:"flankage_yard,omitempty" json:"flankage_yard,omitempty"`
}

// Symmetric reports whether the zone prescribes one value for both interior sides.
func (s SetbackSpec) Symmetric() bool {
	return s.InteriorSide > 0 || (s.InteriorSideMin == 0 && s.InteriorSideMax == 0)
}

// CornerRule is a corner-lot adjustment. The rear-yard reduction is
// conditioned on the coupled interior-side minimum; they apply together.
type CornerRule struct {
	RearYardReducedTo float64 `yaml:"rear_yard_reduced_to" json:"rear_yard_reduced_to"`
	MinInteriorSide   float64 `yaml:"min_interior_side" json:"min_interior_side"`
}

// GarageRule is the attached-garage interior-side reduction.
type GarageRule struct {
	ReducedTo float64 `yaml:"reduced_to" json:"reduced_to"`
	BothSides bool    `yaml:"both_sides,omitempty" json:"both_sides,omitempty"`
}

// DwellingRule carries dwelling-type-specific minimums within a zone,
// e.g. the RL10 duplex or RUC townhouse sub-records.
type DwellingRule struct {
	MinLotArea        float64 `yaml:"min_lot_area,omitempty" json:"min_lot_area,omitempty"`
	MinLotFrontage    float64 `yaml:"min_lot_frontage,omitempty" json:"min_lot_frontage,omitempty"`
	MinLotAreaPerUnit float64 `yaml:"min_lot_area_per_unit,omitempty" json:"min_lot_area_per_unit,omitempty"`
	MaxLotCoverage    float64 `yaml:"max_lot_coverage,omitempty" json:"max_lot_coverage,omitempty"`
}

// Regulations is the resolved dimensional record for one zone designation.
// A zero value for an optional field (MaxStoreys, MaxLotCoverage,
// MaxFloorAreaRatio, MaxFloorAreaAbsolute, MinLotAreaPerUnit) means the
// by-law does not specify it.
type Regulations struct {
	ZoneCode string   `yaml:"-" json:"zone_code"`
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`

	MinLotArea     float64     `yaml:"min_lot_area" json:"min_lot_area"`
	MinLotFrontage float64     `yaml:"min_lot_frontage" json:"min_lot_frontage"`
	Setbacks       SetbackSpec `yaml:"setbacks" json:"setbacks"`

	MaxHeight  float64 `yaml:"max_height" json:"max_height"`
	MaxStoreys int     `yaml:"max_storeys,omitempty" json:"max_storeys,omitempty"`

	MaxLotCoverage       float64 `yaml:"max_lot_coverage,omitempty" json:"max_lot_coverage,omitempty"`
	MaxFloorAreaRatio    float64 `yaml:"max_floor_area_ratio,omitempty" json:"max_floor_area_ratio,omitempty"`
	MaxFloorAreaAbsolute float64 `yaml:"max_floor_area_absolute,omitempty" json:"max_floor_area_absolute,omitempty"`
	MaxDwellingDepth     float64 `yaml:"max_dwelling_depth,omitempty" json:"max_dwelling_depth,omitempty"`

	MinLotAreaPerUnit float64                 `yaml:"min_lot_area_per_unit,omitempty" json:"min_lot_area_per_unit,omitempty"`
	DwellingRules     map[string]DwellingRule `yaml:"dwelling_rules,omitempty" json:"dwelling_rules,omitempty"`

	PermittedUses []string    `yaml:"permitted_uses" json:"permitted_uses"`
	CornerLot     *CornerRule `yaml:"corner_lot_adjustments,omitempty" json:"corner_lot_adjustments,omitempty"`
	Garage        *GarageRule `yaml:"garage_adjustments,omitempty" json:"garage_adjustments,omitempty"`

	// Resolution metadata, populated by Repository.Resolve.
	Suffix           string    `yaml:"-" json:"suffix,omitempty"`
	SpecialProvision string    `yaml:"-" json:"special_provision,omitempty"`
	FARTable         *FARTable `yaml:"-" json:"-"`
}

// Permits reports whether a use identifier appears in the permitted list.
func (r Regulations) Permits(use string) bool {
	for _, u := range r.PermittedUses {
		if u == use {
			return true
		}
	}
	return false
}

// FARBand is one row of a lot-area-banded floor-area-ratio table.
type FARBand struct {
	UpperBound float64 `yaml:"upper_bound" json:"upper_bound"`
	Ratio      float64 `yaml:"ratio" json:"ratio"`
}

// FARTable is an ordered lot-area-banded FAR table. The first band's upper
// bound is exclusive (areas strictly below it); subsequent bands use the
// by-law's inclusive ".99" upper bounds; TopRatio applies at and beyond the
// last band.
type FARTable struct {
	Bands    []FARBand `yaml:"bands" json:"bands"`
	TopRatio float64   `yaml:"top_ratio" json:"top_ratio"`
}

// Ratio returns the FAR for the band containing lotArea.
func (t *FARTable) Ratio(lotArea float64) float64 {
	if len(t.Bands) == 0 {
		return t.TopRatio
	}
	if lotArea < t.Bands[0].UpperBound {
		return t.Bands[0].Ratio
	}
	for _, b := range t.Bands[1:] {
		if lotArea <= b.UpperBound {
			return b.Ratio
		}
	}
	return t.TopRatio
}

// SuffixRule is the override set a suffix zone (e.g. "-0") imposes on its
// parent zone.
type SuffixRule struct {
	Suffix     string    `yaml:"-" json:"suffix"`
	Name       string    `yaml:"name" json:"name"`
	MaxHeight  float64   `yaml:"max_height" json:"max_height"`
	MaxStoreys int       `yaml:"max_storeys" json:"max_storeys"`
	FARTable   *FARTable `yaml:"far_table,omitempty" json:"far_table,omitempty"`

	NoBalconyAboveFirst bool `yaml:"no_balcony_above_first,omitempty" json:"no_balcony_above_first,omitempty"`
	FrontYardAveraging  bool `yaml:"front_yard_averaging,omitempty" json:"front_yard_averaging,omitempty"`
}

// Overrides are the field replacements a special provision may impose.
// Nil pointers leave the underlying value untouched.
type Overrides struct {
	MinLotArea        *float64 `yaml:"min_lot_area,omitempty" json:"min_lot_area,omitempty"`
	MinLotFrontage    *float64 `yaml:"min_lot_frontage,omitempty" json:"min_lot_frontage,omitempty"`
	MaxHeight         *float64 `yaml:"max_height,omitempty" json:"max_height,omitempty"`
	MaxStoreys        *int     `yaml:"max_storeys,omitempty" json:"max_storeys,omitempty"`
	MaxLotCoverage    *float64 `yaml:"max_lot_coverage,omitempty" json:"max_lot_coverage,omitempty"`
	MaxFloorAreaRatio *float64 `yaml:"max_floor_area_ratio,omitempty" json:"max_floor_area_ratio,omitempty"`
	FrontYard         *float64 `yaml:"front_yard,omitempty" json:"front_yard,omitempty"`
	RearYard          *float64 `yaml:"rear_yard,omitempty" json:"rear_yard,omitempty"`
	InteriorSide      *float64 `yaml:"interior_side,omitempty" json:"interior_side,omitempty"`
	FlankageYard      *float64 `yaml:"flankage_yard,omitempty" json:"flankage_yard,omitempty"`
}

// SpecialProvision is a site-specific legal exception. Its overrides apply
// last, after base and suffix resolution.
type SpecialProvision struct {
	Code        string    `yaml:"-" json:"code"`
	Description string    `yaml:"description" json:"description"`
	Overrides   Overrides `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}
