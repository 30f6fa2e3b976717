// Package feedback maps failed criteria to short advisory strings shown to
// the trainee in real time.
package feedback

import "github.com/Daiki01234567/ai-fitness-app-sub002/internal/models"

// NeedsImprovementThreshold is the criterion score below which a failed check
// earns an advisory. Near-misses above it stay quiet to avoid nagging on
// frames that are almost correct.
const NeedsImprovementThreshold = 70

// VisibilityAdvisory is the single message emitted when the required joints
// are not visible enough to evaluate. It is deliberately distinct from every
// form advisory: the trainee needs to reposition, not correct their form.
const VisibilityAdvisory = "Adjust your position so your whole body is visible"

// ForCriteria returns advisories for criteria that failed with a score below
// the needs-improvement threshold. Duplicate strings are suppressed;
// criterion order is preserved.
func ForCriteria(criteria []models.CriterionResult) []string {
	var out []string
	seen := make(map[string]struct{}, len(criteria))
	for _, c := range criteria {
		if c.Passed || c.Score >= NeedsImprovementThreshold || c.Feedback == "" {
			continue
		}
		if _, dup := seen[c.Feedback]; dup {
			continue
		}
		seen[c.Feedback] = struct{}{}
		out = append(out, c.Feedback)
	}
	return out
}
