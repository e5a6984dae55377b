package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.minekube.com/brigodier"
)

func TestScore(t *testing.T) {
	require.Equal(t, float64(1), Score("bob", "bob"))
	// Partial input is compared against the candidate's prefix.
	require.Equal(t, float64(1), Score("bo", "bob"))
	require.Less(t, Score("xyz", "bob"), DefaultMinimumSimilarityScore)
}

func TestSimilar(t *testing.T) {
	builder := &brigodier.SuggestionsBuilder{Input: "op ali"}
	s := Similar(builder, []string{"Alice", "Alex", "Bob"}).Build()

	var texts []string
	for _, sug := range s.Suggestions {
		texts = append(texts, sug.Text)
	}
	require.Contains(t, texts, "Alice")
	require.NotContains(t, texts, "Bob")
}
