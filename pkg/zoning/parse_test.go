package zoning

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw       string
		base      string
		suffix    string
		provision string
	}{
		{"RL3", "RL3", "", ""},
		{"RL2-0", "RL2", "-0", ""},
		{"RL2-0 SP:1", "RL2", "-0", "SP:1"},
		{"RL1 SP:2", "RL1", "", "SP:2"},
		{"rl3-0", "RL3", "-0", ""},
		{"  RUC  ", "RUC", "", ""},
		{"RM1 sp:14", "RM1", "", "SP:14"},
		{"XX9", "XX9", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d := Parse(tt.raw)
			if d.BaseZone != tt.base {
				t.Errorf("BaseZone = %q, want %q", d.BaseZone, tt.base)
			}
			if d.Suffix != tt.suffix {
				t.Errorf("Suffix = %q, want %q", d.Suffix, tt.suffix)
			}
			if d.SpecialProvision != tt.provision {
				t.Errorf("SpecialProvision = %q, want %q", d.SpecialProvision, tt.provision)
			}
		})
	}
}

func TestDesignationString(t *testing.T) {
	d := Parse("rl2-0 sp:1")
	if got := d.String(); got != "RL2-0 SP:1" {
		t.Errorf("String() = %q, want %q", got, "RL2-0 SP:1")
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		zone string
		want Category
	}{
		{"RL1", CategoryResidentialLow},
		{"RL11", CategoryResidentialLow},
		{"RUC", CategoryUptownCore},
		{"RM3", CategoryResidentialMedium},
		{"RH", CategoryResidentialHigh},
		{"GB", CategoryOther},
	}

	for _, tt := range tests {
		if got := CategoryOf(tt.zone); got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.zone, got, tt.want)
		}
	}
}
