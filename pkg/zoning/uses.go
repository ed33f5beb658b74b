package zoning

import "strings"

// UseSummary is a categorized, display-formatted listing of permitted uses.
type UseSummary struct {
	Residential []string `json:"residential"`
	Commercial  []string `json:"commercial"`
	Other       []string `json:"other"`
}

// SummarizeUses buckets use identifiers into residential, commercial, and
// other categories with human-readable labels.
func SummarizeUses(uses []string) UseSummary {
	var s UseSummary
	for _, use := range uses {
		label := displayUse(use)
		switch {
		case containsAny(use, "dwelling", "residential", "unit"):
			s.Residential = append(s.Residential, label)
		case containsAny(use, "store", "commercial", "business", "occupation"):
			s.Commercial = append(s.Commercial, label)
		default:
			s.Other = append(s.Other, label)
		}
	}
	return s
}

func containsAny(s string, terms ...string) bool {
	lower := strings.ToLower(s)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// displayUse turns "detached_dwelling" into "Detached Dwelling".
func displayUse(use string) string {
	words := strings.Split(use, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
