package zoning

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk override format: any zone, suffix rule, or special
// provision present in the file replaces the built-in record wholesale.
type tableFile struct {
	Zones             map[string]Regulations      `yaml:"zones"`
	SuffixZones       map[string]SuffixRule       `yaml:"suffix_zones"`
	SpecialProvisions map[string]SpecialProvision `yaml:"special_provisions"`
}

// Load reads regulation-table overrides from a YAML file and merges them over
// the built-in tables. The built-ins are never mutated.
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regulation tables: %w", err)
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing regulation tables YAML: %w", err)
	}

	repo := &Repository{
		zones:      make(map[string]Regulations, len(builtinZones)+len(file.Zones)),
		suffixes:   make(map[string]SuffixRule, len(builtinSuffixes)+len(file.SuffixZones)),
		provisions: make(map[string]SpecialProvision, len(builtinProvisions)+len(file.SpecialProvisions)),
	}

	for code, regs := range builtinZones {
		repo.zones[code] = regs
	}
	for code, regs := range file.Zones {
		regs.ZoneCode = code
		repo.zones[code] = regs
	}

	for suffix, rule := range builtinSuffixes {
		repo.suffixes[suffix] = rule
	}
	for suffix, rule := range file.SuffixZones {
		rule.Suffix = suffix
		repo.suffixes[suffix] = rule
	}

	for code, sp := range builtinProvisions {
		repo.provisions[code] = sp
	}
	for code, sp := range file.SpecialProvisions {
		sp.Code = code
		repo.provisions[code] = sp
	}

	return repo, nil
}

// LoadProject loads regulation tables for a project directory. It looks for
// bylaw.yaml in the given directory; a missing file is not an error and
// yields the built-in tables.
func LoadProject(projectDir string) (*Repository, error) {
	path := filepath.Join(projectDir, "bylaw.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return NewRepository(), nil
	}
	return Load(path)
}
