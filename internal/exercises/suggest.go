package exercises

import "sort"

const MaxSuggestions = 5

// RankSuggestions compares the input's normalized form against every
// cataloged name and returns up to max closest matches, ascending by
// Levenshtein distance, ties broken by lexical order.
func RankSuggestions(input string, catalogNames []string, max int) []string {
	normalized := NormalizeName(input)

	type rankedName struct {
		name     string
		distance int
	}

	ranked := make([]rankedName, 0, len(catalogNames))
	for _, name := range catalogNames {
		ranked = append(ranked, rankedName{
			name:     name,
			distance: levenshtein(normalized, NormalizeName(name)),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > max {
		ranked = ranked[:max]
	}

	suggestions := make([]string, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, r.name)
	}
	return suggestions
}

// levenshtein computes the edit distance between two strings, using
// two rolling rows instead of a full matrix.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
