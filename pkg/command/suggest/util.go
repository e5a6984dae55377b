// Package suggest ranks tab-completion candidates against the
// partially typed argument.
package suggest

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"go.minekube.com/brigodier"
)

// DefaultMinimumSimilarityScore is the score below which a candidate
// is considered too far off to be worth suggesting.
const DefaultMinimumSimilarityScore = 0.2

// Similar calls SimilarScore with DefaultMinimumSimilarityScore.
func Similar(builder *brigodier.SuggestionsBuilder, candidates []string) *brigodier.SuggestionsBuilder {
	return SimilarScore(builder, candidates, DefaultMinimumSimilarityScore)
}

// SimilarScore suggests the candidates similar to the argument typed
// so far, best match first.
//
// Candidates scoring below minScore are dropped. Passing a
// minScore >= 1 keeps every candidate, which turns this into a pure
// sort by similarity.
func SimilarScore(builder *brigodier.SuggestionsBuilder, candidates []string, minScore float64) *brigodier.SuggestionsBuilder {
	if builder.Input == "" {
		return builder
	}
	// The word being completed starts after the last space.
	given := builder.Input[strings.LastIndex(builder.Input, " ")+1:]

	var matches []scoredCandidate
	for _, text := range candidates {
		if score := Score(given, text); score >= minScore {
			matches = append(matches, scoredCandidate{text, score})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	for _, m := range matches {
		builder.Suggest(m.text)
	}
	return builder
}

type scoredCandidate struct {
	text  string
	score float64
}

// Score calculates the similarity of two strings in the range 0..1,
// where 1 means identical. Only the prefix of candidate up to the
// length of given is compared, so partial input scores fairly.
func Score(given, candidate string) float64 {
	i := len(given)
	if len(candidate) < i {
		i = len(candidate)
	}
	return levenshtein.Similarity(given, candidate[:i], nil)
}
