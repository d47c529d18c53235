package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricearaul/apriori-engine/internal/models"
)

func TestInitialCandidatesAreSingletons(t *testing.T) {
	candidates := initialCandidates([]string{"a", "b", "c"})

	assert.Equal(t, []models.Itemset{{"a"}, {"b"}, {"c"}}, candidates)
}

func TestNextCandidatesAtLevelTwoIsFullCrossProduct(t *testing.T) {
	frequent := []models.Itemset{{"a"}, {"b"}, {"c"}}
	candidates := nextCandidates(frequent, 2)

	assert.ElementsMatch(t, []models.Itemset{{"a", "b"}, {"a", "c"}, {"b", "c"}}, candidates)
}

func TestNextCandidatesPrunesInfrequentSubsetsAtLevelThree(t *testing.T) {
	// {a,b,c} cannot be a candidate because {b,c} never appeared among the
	// confirmed frequent 2-itemsets.
	frequent := []models.Itemset{{"a", "b"}, {"a", "c"}, {"a", "d"}}
	candidates := nextCandidates(frequent, 3)

	assert.Empty(t, candidates)
}

func TestNextCandidatesKeepsFullySupportedTriples(t *testing.T) {
	frequent := []models.Itemset{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	candidates := nextCandidates(frequent, 3)

	assert.Equal(t, []models.Itemset{{"a", "b", "c"}}, candidates)
}

func TestNextCandidatesUniverseSmallerThanLevelIsEmpty(t *testing.T) {
	frequent := []models.Itemset{{"a"}, {"b"}}
	assert.Empty(t, nextCandidates(frequent, 3))
}

func TestCombinationsLexicographicOrder(t *testing.T) {
	var got [][]string
	combinations([]string{"a", "b", "c", "d"}, 2, func(combo []string) {
		cp := append([]string(nil), combo...)
		got = append(got, cp)
	})

	want := [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"},
		{"c", "d"},
	}
	assert.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestCombinationsKEqualsLengthYieldsOneCombo(t *testing.T) {
	var got [][]string
	combinations([]string{"a", "b"}, 2, func(combo []string) {
		got = append(got, append([]string(nil), combo...))
	})
	assert.Equal(t, [][]string{{"a", "b"}}, got)
}

func TestCombinationsKGreaterThanLengthYieldsNothing(t *testing.T) {
	var called bool
	combinations([]string{"a"}, 2, func(combo []string) { called = true })
	assert.False(t, called)
}
