package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/models"
)

func groceryTransactions() []models.RawTransaction {
	return []models.RawTransaction{
		{"bread", "milk"},
		{"bread", "diaper", "beer", "eggs"},
		{"milk", "diaper", "beer", "cola"},
		{"bread", "milk", "diaper", "beer"},
		{"bread", "milk", "diaper", "cola"},
	}
}

func TestMinCountRoundsUp(t *testing.T) {
	assert.Equal(t, 1, minCount(0.01, 5))
	assert.Equal(t, 3, minCount(0.5, 5))
	assert.Equal(t, 5, minCount(1.0, 5))
}

func TestFindFrequentItemsetsRespectsMinSupport(t *testing.T) {
	idx := index.New(groceryTransactions())
	cfg := config.Default()
	cfg.MinSupport = 0.6 // count >= 3 of 5
	cfg.MaxLength = 4

	itemsets := FindFrequentItemsets(idx, cfg)

	for _, fi := range itemsets {
		assert.GreaterOrEqual(t, fi.Count, 3)
		assert.InDelta(t, float64(fi.Count)/5.0, fi.Support, 1e-9)
	}

	var names []string
	for _, fi := range itemsets {
		if fi.Level() == 1 {
			names = append(names, fi.Items[0])
		}
	}
	assert.ElementsMatch(t, []string{"bread", "milk", "diaper", "beer"}, names)
}

func TestFindFrequentItemsetsRespectsMaxLength(t *testing.T) {
	idx := index.New(groceryTransactions())
	cfg := config.Default()
	cfg.MinSupport = 0.01
	cfg.MaxLength = 2

	itemsets := FindFrequentItemsets(idx, cfg)
	for _, fi := range itemsets {
		assert.LessOrEqual(t, fi.Level(), 2)
	}
}

func TestMineLevelWiseStopsImmediatelyWhenVisitReturnsTrue(t *testing.T) {
	idx := index.New(groceryTransactions())
	cfg := config.Default()
	cfg.MinSupport = 0.01
	cfg.MaxLength = 4

	var visited int
	mineLevelWise(idx, cfg, func(fi models.FrequentItemset) bool {
		visited++
		return true
	})

	require.Equal(t, 1, visited)
}

func TestFindFrequentItemsetsOnEmptyDatasetIsEmpty(t *testing.T) {
	idx := index.New(nil)
	cfg := config.Default()
	assert.Empty(t, FindFrequentItemsets(idx, cfg))
}
