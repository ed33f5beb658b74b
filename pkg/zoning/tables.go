package zoning

// Built-in regulation tables for the residential zones of Oakville By-law
// 2014-014 (Tables 6.3.x, 6.4.1, 6.4.2). Dimensional values follow the
// by-law's published tables; zones whose tables the by-law text leaves to
// cross-references follow the standard RL progression.
//
// The tables are package-level and read-only. Repository copies records on
// resolution, so callers never observe a mutated table entry.

// suffixZeroFAR is Table 6.4.1: residential floor area ratio for "-0" suffix
// zones, banded by lot area. Larger established-neighbourhood lots get a
// smaller ratio. The ".99" upper bounds are the by-law's own and are inclusive.
var suffixZeroFAR = FARTable{
	Bands: []FARBand{
		{UpperBound: 557.5, Ratio: 0.43},
		{UpperBound: 649.99, Ratio: 0.42},
		{UpperBound: 742.99, Ratio: 0.41},
		{UpperBound: 835.99, Ratio: 0.40},
		{UpperBound: 928.99, Ratio: 0.39},
		{UpperBound: 1021.99, Ratio: 0.38},
		{UpperBound: 1114.99, Ratio: 0.37},
		{UpperBound: 1207.99, Ratio: 0.35},
		{UpperBound: 1300.99, Ratio: 0.32},
	},
	TopRatio: 0.29,
}

var builtinSuffixes = map[string]SuffixRule{
	"-0": {
		Suffix:              "-0",
		Name:                "The -0 Suffix Zone",
		MaxHeight:           9.0,
		MaxStoreys:          2,
		FARTable:            &suffixZeroFAR,
		NoBalconyAboveFirst: true,
		FrontYardAveraging:  true,
	},
}

// Known special provisions. Site-specific override values come from the
// individual SP schedules; undocumented provisions resolve as no-ops and are
// preserved on the result for display.
var builtinProvisions = map[string]SpecialProvision{
	"SP:1": {Code: "SP:1", Description: "Special provision 1 - site-specific regulations"},
	"SP:2": {Code: "SP:2", Description: "Special provision 2 - site-specific regulations"},
}

var builtinZones = map[string]Regulations{
	"RL1": {
		Name:           "Residential Low 1",
		Category:       CategoryResidentialLow,
		MinLotArea:     1393.5,
		MinLotFrontage: 30.5,
		Setbacks: SetbackSpec{
			FrontYard:    10.5,
			RearYard:     10.5,
			InteriorSide: 4.2,
			FlankageYard: 4.2,
		},
		MaxHeight:        10.5,
		MaxLotCoverage:   0.30,
		MaxDwellingDepth: 20.0,
		PermittedUses:    []string{UseDetached, UseADU, UseHomeOccupation, UseBedBreakfast},
		CornerLot:        &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
	},
	"RL2": {
		Name:           "Residential Low 2",
		Category:       CategoryResidentialLow,
		MinLotArea:     836.0,
		MinLotFrontage: 22.5,
		Setbacks: SetbackSpec{
			FrontYard:    9.0,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.5,
		},
		MaxHeight:      12.0,
		MaxLotCoverage: 0.30,
		PermittedUses:  []string{UseDetached, UseADU, UseHomeOccupation, UseBedBreakfast},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
		Garage:         &GarageRule{ReducedTo: 1.2},
	},
	"RL3": {
		Name:           "Residential Low 3",
		Category:       CategoryResidentialLow,
		MinLotArea:     557.5,
		MinLotFrontage: 18.0,
		Setbacks: SetbackSpec{
			FrontYard:       7.5,
			RearYard:        7.5,
			InteriorSideMin: 2.4,
			InteriorSideMax: 1.2,
			FlankageYard:    3.5,
		},
		MaxHeight:      12.0,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseADU, UseHomeOccupation, UseBedBreakfast},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
		Garage:         &GarageRule{ReducedTo: 1.2, BothSides: true},
	},
	"RL4": {
		Name:           "Residential Low 4",
		Category:       CategoryResidentialLow,
		MinLotArea:     511.0,
		MinLotFrontage: 16.5,
		Setbacks: SetbackSpec{
			FrontYard:       7.5,
			RearYard:        7.5,
			InteriorSideMin: 2.4,
			InteriorSideMax: 1.2,
			FlankageYard:    3.5,
		},
		MaxHeight:      12.0,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseADU, UseHomeOccupation, UseBedBreakfast},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
		Garage:         &GarageRule{ReducedTo: 1.2, BothSides: true},
	},
	"RL5": {
		Name:           "Residential Low 5",
		Category:       CategoryResidentialLow,
		MinLotArea:     464.5,
		MinLotFrontage: 15.0,
		Setbacks: SetbackSpec{
			FrontYard:       7.5,
			RearYard:        7.5,
			InteriorSideMin: 2.4,
			InteriorSideMax: 1.2,
			FlankageYard:    3.5,
		},
		MaxHeight:      12.0,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseADU, UseHomeOccupation, UseBedBreakfast},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
		Garage:         &GarageRule{ReducedTo: 1.2, BothSides: true},
	},
	"RL6": {
		Name:           "Residential Low 6",
		Category:       CategoryResidentialLow,
		MinLotArea:     250.0,
		MinLotFrontage: 11.0,
		Setbacks: SetbackSpec{
			FrontYard:       3.0,
			RearYard:        7.0,
			InteriorSideMin: 1.2,
			InteriorSideMax: 0.6,
			FlankageYard:    3.0,
		},
		MaxHeight:            10.5,
		MaxStoreys:           2,
		MaxFloorAreaRatio:    0.75,
		MaxFloorAreaAbsolute: 355.0,
		PermittedUses:        []string{UseDetached, UseHomeOccupation},
	},
	"RL7": {
		Name:           "Residential Low 7",
		Category:       CategoryResidentialLow,
		MinLotArea:     400.0,
		MinLotFrontage: 12.0,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.0,
		},
		MaxHeight:      10.5,
		MaxStoreys:     2,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseSemiDetached, UseADU, UseHomeOccupation},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
	},
	"RL8": {
		Name:           "Residential Low 8",
		Category:       CategoryResidentialLow,
		MinLotArea:     350.0,
		MinLotFrontage: 11.0,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.0,
		},
		MaxHeight:      10.5,
		MaxStoreys:     2,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseSemiDetached, UseADU, UseHomeOccupation},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
	},
	"RL9": {
		Name:           "Residential Low 9",
		Category:       CategoryResidentialLow,
		MinLotArea:     300.0,
		MinLotFrontage: 10.0,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.0,
		},
		MaxHeight:      10.5,
		MaxStoreys:     2,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseSemiDetached, UseADU, UseHomeOccupation},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
	},
	"RL10": {
		Name:           "Residential Low 10",
		Category:       CategoryResidentialLow,
		MinLotArea:     250.0,
		MinLotFrontage: 9.0,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.0,
		},
		MaxHeight:      10.5,
		MaxStoreys:     2,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseDuplex, UseADU, UseHomeOccupation},
		CornerLot:      &CornerRule{RearYardReducedTo: 3.5, MinInteriorSide: 3.0},
		DwellingRules: map[string]DwellingRule{
			UseDuplex: {MinLotArea: 743.0, MinLotFrontage: 21.0, MaxLotCoverage: 0.25},
		},
	},
	"RL11": {
		Name:           "Residential Low 11",
		Category:       CategoryResidentialLow,
		MinLotArea:     360.0,
		MinLotFrontage: 11.0,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 3.0,
		},
		MaxHeight:      10.5,
		MaxStoreys:     2,
		MaxLotCoverage: 0.35,
		PermittedUses:  []string{UseDetached, UseLinked, UseHomeOccupation},
		DwellingRules: map[string]DwellingRule{
			UseLinked: {MinLotArea: 650.0, MinLotFrontage: 18.0, MaxLotCoverage: 0.35},
		},
	},
	"RUC": {
		Name:           "Residential Uptown Core",
		Category:       CategoryUptownCore,
		MinLotArea:     220.0,
		MinLotFrontage: 7.0,
		Setbacks: SetbackSpec{
			FrontYard:    3.0,
			RearYard:     7.0,
			InteriorSide: 1.2,
			FlankageYard: 2.4,
		},
		MaxHeight:      12.0,
		MaxStoreys:     3,
		MaxLotCoverage: 0.50,
		PermittedUses:  []string{UseDetached, UseSemiDetached, UseTownhouse, UseADU, UseHomeOccupation},
		DwellingRules: map[string]DwellingRule{
			UseDetached:     {MinLotArea: 220.0, MinLotFrontage: 7.0},
			UseSemiDetached: {MinLotArea: 350.0, MinLotFrontage: 11.0},
			UseTownhouse:    {MinLotAreaPerUnit: 150.0, MinLotFrontage: 14.5},
		},
	},
	"RM1": {
		Name:           "Residential Medium 1",
		Category:       CategoryResidentialMedium,
		MinLotArea:     540.0,
		MinLotFrontage: 18.0,
		Setbacks: SetbackSpec{
			FrontYard:    6.0,
			RearYard:     7.5,
			InteriorSide: 2.4,
			FlankageYard: 4.5,
		},
		MaxHeight:         12.0,
		MaxStoreys:        3,
		MaxLotCoverage:    0.40,
		MinLotAreaPerUnit: 180.0,
		PermittedUses:     []string{UseTownhouse, UseHomeOccupation},
	},
	"RM2": {
		Name:           "Residential Medium 2",
		Category:       CategoryResidentialMedium,
		MinLotArea:     650.0,
		MinLotFrontage: 20.0,
		Setbacks: SetbackSpec{
			FrontYard:    6.0,
			RearYard:     9.5,
			InteriorSide: 3.0,
			FlankageYard: 4.5,
		},
		MaxHeight:         12.0,
		MaxStoreys:        3,
		MaxLotCoverage:    0.45,
		MinLotAreaPerUnit: 135.0,
		PermittedUses:     []string{UseBackToBack, UseHomeOccupation},
	},
	"RM3": {
		Name:           "Residential Medium 3",
		Category:       CategoryResidentialMedium,
		MinLotArea:     929.0,
		MinLotFrontage: 30.5,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     9.0,
			InteriorSide: 4.5,
			FlankageYard: 6.0,
		},
		MaxHeight:         20.0,
		MaxStoreys:        6,
		MaxLotCoverage:    0.40,
		MinLotAreaPerUnit: 100.0,
		PermittedUses:     []string{UseApartment, UseStacked, UseHomeOccupation},
	},
	"RM4": {
		Name:           "Residential Medium 4",
		Category:       CategoryResidentialMedium,
		MinLotArea:     1300.0,
		MinLotFrontage: 30.5,
		Setbacks: SetbackSpec{
			FrontYard:    7.5,
			RearYard:     9.5,
			InteriorSide: 6.0,
			FlankageYard: 6.0,
		},
		MaxHeight:         26.0,
		MaxStoreys:        8,
		MaxLotCoverage:    0.40,
		MinLotAreaPerUnit: 85.0,
		PermittedUses:     []string{UseApartment, UseHomeOccupation},
	},
	"RH": {
		Name:           "Residential High",
		Category:       CategoryResidentialHigh,
		MinLotArea:     1858.0,
		MinLotFrontage: 45.0,
		Setbacks: SetbackSpec{
			FrontYard:    9.0,
			RearYard:     12.0,
			InteriorSide: 7.5,
			FlankageYard: 7.5,
		},
		MaxHeight:         38.0,
		MaxStoreys:        12,
		MaxLotCoverage:    0.35,
		MinLotAreaPerUnit: 60.0,
		PermittedUses:     []string{UseApartment, UseHomeOccupation},
	},
}
