package rules

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/apframework/core/apperrors"
	"github.com/apframework/core/entity"
)

// closestName returns the candidate nearest to name within a length-scaled
// edit distance, or "" when nothing is close enough.
func closestName(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && cand < best) {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// UnknownLocationError builds the error for a rule referencing a location
// absent from the table, with a closest-name suggestion when one exists.
func UnknownLocationError(name string, table *entity.LocationTable) error {
	metadata := map[string]string{"Location": name}
	msg := fmt.Sprintf("rule references unknown location %q", name)
	if suggestion := closestName(name, table.Names()); suggestion != "" {
		metadata["Suggestion"] = suggestion
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return apperrors.WithMetadata(apperrors.CodeRulesUnknownLocation, msg, metadata)
}

// UnknownItemError builds the error for a rule referencing an item absent
// from the table, with a closest-name suggestion when one exists.
func UnknownItemError(name string, table *entity.ItemTable) error {
	metadata := map[string]string{"Item": name}
	msg := fmt.Sprintf("rule references unknown item %q", name)
	if suggestion := closestName(name, table.Names()); suggestion != "" {
		metadata["Suggestion"] = suggestion
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return apperrors.WithMetadata(apperrors.CodeRulesUnknownItem, msg, metadata)
}
