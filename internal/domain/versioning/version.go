// Package versioning holds the version arithmetic of benefit templates.
package versioning

import (
	"sort"

	"insurance_portal/internal/domain/entities"
)

// Next returns the version that follows (major, minor) for the given bump.
// Anything other than a major bump is treated as minor.
func Next(major, minor int, bump entities.VersionBump) (int, int) {
	if bump == entities.VersionBumpMajor {
		return major + 1, 0
	}
	return major, minor + 1
}

// Less orders two template rows by (major, minor).
func Less(a, b entities.BenefitTemplate) bool {
	if a.MajorVersion != b.MajorVersion {
		return a.MajorVersion < b.MajorVersion
	}
	return a.MinorVersion < b.MinorVersion
}

// Highest returns the greatest version among current and its siblings.
func Highest(current entities.BenefitTemplate, siblings []entities.BenefitTemplate) entities.BenefitTemplate {
	best := current
	for _, r := range siblings {
		if Less(best, r) {
			best = r
		}
	}
	return best
}

// LatestPerTemplate keeps, for every TemplateID, the row with the greatest
// version. Output order follows the first appearance of each TemplateID.
func LatestPerTemplate(rows []entities.BenefitTemplate) []entities.BenefitTemplate {
	best := make(map[string]int, len(rows))
	out := make([]entities.BenefitTemplate, 0, len(rows))
	for _, r := range rows {
		idx, seen := best[r.TemplateID]
		if !seen {
			best[r.TemplateID] = len(out)
			out = append(out, r)
			continue
		}
		if Less(out[idx], r) {
			out[idx] = r
		}
	}
	return out
}

// NewestFirst sorts rows of one logical template by descending version.
func NewestFirst(rows []entities.BenefitTemplate) {
	sort.SliceStable(rows, func(i, j int) bool { return Less(rows[j], rows[i]) })
}
