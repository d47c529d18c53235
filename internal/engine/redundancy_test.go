package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricearaul/apriori-engine/internal/models"
)

func rule(lhs, rhs []string, confidence float64) models.Rule {
	return models.Rule{LHS: lhs, RHS: rhs, Confidence: confidence}
}

func TestFilterRedundantMaskZeroIsNoOp(t *testing.T) {
	rules := []models.Rule{
		rule([]string{"a"}, []string{"b"}, 0.5),
		rule([]string{"b"}, []string{"a"}, 0.9),
	}
	filtered := FilterRedundant(rules, 0)
	assert.Equal(t, rules, filtered)
}

func TestFilterRedundantSwapDropsLowerConfidenceDirection(t *testing.T) {
	rules := []models.Rule{
		rule([]string{"a"}, []string{"b"}, 0.5),
		rule([]string{"b"}, []string{"a"}, 0.9),
	}
	filtered := FilterRedundant(rules, RedundancySwap)

	require.Len(t, filtered, 1)
	assert.Equal(t, models.Itemset{"b"}, filtered[0].LHS)
	assert.Equal(t, models.Itemset{"a"}, filtered[0].RHS)
}

func TestFilterRedundantSwapTieDropsBothDirections(t *testing.T) {
	rules := []models.Rule{
		rule([]string{"a"}, []string{"b"}, 0.7),
		rule([]string{"b"}, []string{"a"}, 0.7),
	}
	filtered := FilterRedundant(rules, RedundancySwap)
	assert.Empty(t, filtered)
}

func TestFilterRedundantFixedConsequentDropsSpecializedLHS(t *testing.T) {
	// {a}=>{z} and {b}=>{z} both exist, so {a,b}=>{z} is redundant.
	rules := []models.Rule{
		rule([]string{"a"}, []string{"z"}, 0.6),
		rule([]string{"b"}, []string{"z"}, 0.6),
		rule([]string{"a", "b"}, []string{"z"}, 0.8),
	}
	filtered := FilterRedundant(rules, RedundancyFixedConsequent)

	var lhsKeys []string
	for _, r := range filtered {
		lhsKeys = append(lhsKeys, itemsetKey(r.LHS))
	}
	assert.NotContains(t, lhsKeys, itemsetKey([]string{"a", "b"}))
	assert.Contains(t, lhsKeys, itemsetKey([]string{"a"}))
	assert.Contains(t, lhsKeys, itemsetKey([]string{"b"}))
}

func TestFilterRedundantFixedConsequentKeepsPartialCoverage(t *testing.T) {
	// Only {a}=>{z} exists, not {b}=>{z}, so {a,b}=>{z} survives.
	rules := []models.Rule{
		rule([]string{"a"}, []string{"z"}, 0.6),
		rule([]string{"a", "b"}, []string{"z"}, 0.8),
	}
	filtered := FilterRedundant(rules, RedundancyFixedConsequent)
	assert.Len(t, filtered, 2)
}

func TestFilterRedundantFixedAntecedentDropsSpecializedRHS(t *testing.T) {
	// {a}=>{y} and {a}=>{z} both exist, so {a}=>{y,z} is redundant.
	rules := []models.Rule{
		rule([]string{"a"}, []string{"y"}, 0.6),
		rule([]string{"a"}, []string{"z"}, 0.6),
		rule([]string{"a"}, []string{"y", "z"}, 0.8),
	}
	filtered := FilterRedundant(rules, RedundancyFixedAntecedent)

	var rhsKeys []string
	for _, r := range filtered {
		rhsKeys = append(rhsKeys, itemsetKey(r.RHS))
	}
	assert.NotContains(t, rhsKeys, itemsetKey([]string{"y", "z"}))
}

func TestFilterRedundantIsPureFunctionOfOriginalList(t *testing.T) {
	// Combining swap with fixed-consequent must still consult the
	// original, unfiltered list for both checks rather than chaining.
	rules := []models.Rule{
		rule([]string{"a"}, []string{"z"}, 0.6),
		rule([]string{"b"}, []string{"z"}, 0.6),
		rule([]string{"a", "b"}, []string{"z"}, 0.9),
		rule([]string{"z"}, []string{"a", "b"}, 0.95),
	}
	filtered := FilterRedundant(rules, RedundancySwap|RedundancyFixedConsequent)

	for _, r := range filtered {
		assert.NotEqual(t, itemsetKey([]string{"a", "b"}), itemsetKey(r.LHS))
	}
}
