package zoning

import "strings"

// Parse splits a raw zone designation string into base zone, suffix, and
// special provision. It never fails: unrecognized base zones are returned
// as-is and surface later as a repository lookup miss.
//
// The special provision is extracted before the suffix. Both markers can
// contain '-' and ':' in user-entered strings, and only this ordering parses
// known valid inputs like "RL2-0 SP:1".
func Parse(raw string) Designation {
	clean := strings.ToUpper(strings.TrimSpace(raw))
	d := Designation{Raw: raw}

	if i := strings.Index(clean, " SP:"); i >= 0 {
		d.SpecialProvision = "SP:" + strings.TrimSpace(clean[i+4:])
		clean = strings.TrimSpace(clean[:i])
	}

	if i := strings.Index(clean, "-"); i >= 0 {
		d.Suffix = "-" + strings.TrimSpace(clean[i+1:])
		clean = strings.TrimSpace(clean[:i])
	}

	d.BaseZone = clean
	return d
}

// CategoryOf classifies a base zone code.
func CategoryOf(baseZone string) Category {
	switch {
	case strings.HasPrefix(baseZone, "RL") && len(baseZone) > 2:
		return CategoryResidentialLow
	case baseZone == "RUC":
		return CategoryUptownCore
	case strings.HasPrefix(baseZone, "RM") && len(baseZone) > 2:
		return CategoryResidentialMedium
	case baseZone == "RH":
		return CategoryResidentialHigh
	}
	return CategoryOther
}
