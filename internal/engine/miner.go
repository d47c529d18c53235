package engine

import (
	"math"

	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/models"
)

// ItemsetVisitor is called once for every frequent itemset as it is
// confirmed, in level-ascending order. Returning true stops the miner
// immediately: no further candidates in the current level are evaluated
// and no further level is generated (spec §4.6's "no further itemsets
// evaluated").
type ItemsetVisitor func(models.FrequentItemset) (stop bool)

// mineLevelWise drives the level-wise candidate/verify loop of spec §4.3,
// calling visit for each itemset that clears minSupport.
func mineLevelWise(idx *index.TransactionIndex, cfg config.Config, visit ItemsetVisitor) {
	n := idx.N()
	if n == 0 {
		return
	}

	threshold := minCount(cfg.MinSupport, n)

	candidates := initialCandidates(idx.Items())
	k := 1
	for len(candidates) > 0 && k <= cfg.MaxLength {
		frequent := make([]models.Itemset, 0, len(candidates))
		for _, candidate := range candidates {
			count := idx.Count(candidate)
			if count < threshold {
				continue
			}
			support := float64(count) / float64(n)
			frequent = append(frequent, candidate)
			stop := visit(models.FrequentItemset{
				Items:   candidate,
				Count:   count,
				Support: support,
			})
			if stop {
				return
			}
		}
		if len(frequent) == 0 {
			return
		}
		k++
		candidates = nextCandidates(frequent, k)
	}
}

// FindFrequentItemsets runs the level-wise miner to completion and
// collects every frequent itemset, regardless of any rule-count ceiling
// (the max-rules cap only governs rule emission, per spec §4.6).
func FindFrequentItemsets(idx *index.TransactionIndex, cfg config.Config) []models.FrequentItemset {
	var result []models.FrequentItemset
	mineLevelWise(idx, cfg, func(fi models.FrequentItemset) bool {
		result = append(result, fi)
		return false
	})
	return result
}

// minCount converts a support threshold into the minimum transaction
// count meeting it, rounding up so floating-point support comparisons and
// integer counts agree at the boundary (spec invariant: count ≥
// ⌈min_support · N⌉).
func minCount(minSupport float64, n int) int {
	return int(math.Ceil(minSupport * float64(n)))
}
