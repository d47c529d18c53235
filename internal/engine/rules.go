package engine

import (
	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/models"
)

// RulesForItemset enumerates every non-trivial LHS/RHS partition of a
// frequent itemset (spec §4.4), keeping only those meeting MinConfidence
// and MinLift. LHS sizes are walked 1..|X|-1 and, within a size,
// combinations are visited in lexicographic order of the itemset's sorted
// items — both directions of a pair are emitted independently; redundancy
// across directions is RedundancyFilter's job, not this one's.
func RulesForItemset(idx *index.TransactionIndex, itemset models.FrequentItemset, cfg config.Config) []models.Rule {
	items := itemset.Items
	n := idx.N()
	if n == 0 || len(items) < 2 {
		return nil
	}

	var rules []models.Rule
	for size := 1; size < len(items); size++ {
		combinations(items, size, func(lhs []string) {
			lhsCopy := make(models.Itemset, len(lhs))
			copy(lhsCopy, lhs)

			rhs := difference(items, lhsCopy)

			lhsCount := idx.Count(lhsCopy)
			rhsCount := idx.Count(rhs)
			lhsSupport := float64(lhsCount) / float64(n)
			rhsSupport := float64(rhsCount) / float64(n)

			confidence := itemset.Support / lhsSupport
			if confidence < cfg.MinConfidence {
				return
			}
			lift := confidence / rhsSupport
			if lift < cfg.MinLift {
				return
			}

			leverage := itemset.Support - lhsSupport*rhsSupport

			var conviction float64
			if confidence != 1.0 {
				conviction = (1 - rhsSupport) / (1 - confidence)
			} else {
				conviction = models.ConvictionSentinel
			}

			rules = append(rules, models.Rule{
				LHS:         lhsCopy,
				RHS:         rhs,
				LHSCount:    lhsCount,
				LHSSupport:  lhsSupport,
				RHSCount:    rhsCount,
				RHSSupport:  rhsSupport,
				RuleCount:   itemset.Count,
				RuleSupport: itemset.Support,
				Confidence:  confidence,
				Lift:        lift,
				Leverage:    leverage,
				Conviction:  conviction,
			})
		})
	}
	return rules
}

// difference returns the items of superset not present in subset. Both
// arguments must be sorted; the result is sorted too.
func difference(superset, subset []string) models.Itemset {
	excluded := make(map[string]struct{}, len(subset))
	for _, item := range subset {
		excluded[item] = struct{}{}
	}
	result := make(models.Itemset, 0, len(superset)-len(subset))
	for _, item := range superset {
		if _, skip := excluded[item]; skip {
			continue
		}
		result = append(result, item)
	}
	return result
}
