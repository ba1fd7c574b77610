package todo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest normalised edit distance still treated
// as a likely typo.
const maxSuggestDistance = 0.4

// Suggest returns the task whose title or ID prefix is closest to query.
// It reports false when nothing is close enough.
func Suggest(tasks []Task, query string) (Task, bool) {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return Task{}, false
	}

	var best Task
	bestScore := maxSuggestDistance
	found := false
	for _, t := range tasks {
		candidates := []string{strings.ToUpper(t.Title)}
		if len(t.ID) >= len(query) {
			candidates = append(candidates, strings.ToUpper(t.ID[:len(query)]))
		}
		for _, c := range candidates {
			if score := distance(query, c); score < bestScore {
				best, bestScore, found = t, score, true
			}
		}
	}
	return best, found
}

// distance is the edit distance between a and b divided by the longer length.
func distance(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
