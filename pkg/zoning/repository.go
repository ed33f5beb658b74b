package zoning

import (
	"fmt"
	"sort"
)

// UnknownZoneError signals that a base zone has no entry in the regulation
// tables. Callers degrade to a flagged result rather than failing a pipeline.
type UnknownZoneError struct {
	ZoneCode string
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown zone code: %s", e.ZoneCode)
}

// Repository holds the regulation tables. It is loaded once at startup and
// read-only afterwards; concurrent callers share one instance without locking.
type Repository struct {
	zones      map[string]Regulations
	suffixes   map[string]SuffixRule
	provisions map[string]SpecialProvision
}

// NewRepository returns a repository backed by the built-in By-law 2014-014
// tables.
func NewRepository() *Repository {
	return &Repository{
		zones:      builtinZones,
		suffixes:   builtinSuffixes,
		provisions: builtinProvisions,
	}
}

// Resolve looks up the base zone and layers suffix and special-provision
// overrides on top, in that order. Special provisions have the highest
// precedence. The base record is never mutated: each stage works on a copy.
//
// A suffix or provision id with no matching rule is preserved on the result
// for display but produces no numeric override.
func (r *Repository) Resolve(d Designation) (Regulations, error) {
	base, ok := r.zones[d.BaseZone]
	if !ok {
		return Regulations{}, &UnknownZoneError{ZoneCode: d.BaseZone}
	}

	regs := base
	regs.ZoneCode = d.BaseZone

	if d.Suffix != "" {
		regs.Suffix = d.Suffix
		if rule, ok := r.suffixes[d.Suffix]; ok {
			regs = applySuffix(regs, rule)
		}
	}

	if d.SpecialProvision != "" {
		regs.SpecialProvision = d.SpecialProvision
		if sp, ok := r.provisions[d.SpecialProvision]; ok {
			regs = applyOverrides(regs, sp.Overrides)
		}
	}

	return regs, nil
}

// applySuffix returns a copy of regs with the suffix rule's fixed height and
// storey limits applied and its FAR table attached. Setbacks are untouched.
func applySuffix(regs Regulations, rule SuffixRule) Regulations {
	regs.MaxHeight = rule.MaxHeight
	regs.MaxStoreys = rule.MaxStoreys
	regs.FARTable = rule.FARTable
	return regs
}

// applyOverrides returns a copy of regs with every non-nil override applied.
func applyOverrides(regs Regulations, o Overrides) Regulations {
	if o.MinLotArea != nil {
		regs.MinLotArea = *o.MinLotArea
	}
	if o.MinLotFrontage != nil {
		regs.MinLotFrontage = *o.MinLotFrontage
	}
	if o.MaxHeight != nil {
		regs.MaxHeight = *o.MaxHeight
	}
	if o.MaxStoreys != nil {
		regs.MaxStoreys = *o.MaxStoreys
	}
	if o.MaxLotCoverage != nil {
		regs.MaxLotCoverage = *o.MaxLotCoverage
	}
	if o.MaxFloorAreaRatio != nil {
		regs.MaxFloorAreaRatio = *o.MaxFloorAreaRatio
	}
	if o.FrontYard != nil {
		regs.Setbacks.FrontYard = *o.FrontYard
	}
	if o.RearYard != nil {
		regs.Setbacks.RearYard = *o.RearYard
	}
	if o.InteriorSide != nil {
		regs.Setbacks.InteriorSide = *o.InteriorSide
		regs.Setbacks.InteriorSideMin = 0
		regs.Setbacks.InteriorSideMax = 0
	}
	if o.FlankageYard != nil {
		regs.Setbacks.FlankageYard = *o.FlankageYard
	}
	return regs
}

// Zone returns the base record for a zone code, without suffix or provision
// resolution.
func (r *Repository) Zone(code string) (Regulations, bool) {
	regs, ok := r.zones[code]
	if ok {
		regs.ZoneCode = code
	}
	return regs, ok
}

// Zones returns all base records sorted by zone code.
func (r *Repository) Zones() []Regulations {
	codes := make([]string, 0, len(r.zones))
	for code := range r.zones {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]Regulations, 0, len(codes))
	for _, code := range codes {
		regs := r.zones[code]
		regs.ZoneCode = code
		out = append(out, regs)
	}
	return out
}

// SuffixRules returns all suffix rules sorted by suffix.
func (r *Repository) SuffixRules() []SuffixRule {
	keys := make([]string, 0, len(r.suffixes))
	for k := range r.suffixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SuffixRule, 0, len(keys))
	for _, k := range keys {
		rule := r.suffixes[k]
		rule.Suffix = k
		out = append(out, rule)
	}
	return out
}

// Provisions returns all special provisions sorted by code.
func (r *Repository) Provisions() []SpecialProvision {
	keys := make([]string, 0, len(r.provisions))
	for k := range r.provisions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]SpecialProvision, 0, len(keys))
	for _, k := range keys {
		sp := r.provisions[k]
		sp.Code = k
		out = append(out, sp)
	}
	return out
}
