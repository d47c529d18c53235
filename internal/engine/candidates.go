package engine

import (
	"sort"
	"strings"

	"github.com/ricearaul/apriori-engine/internal/models"
)

// initialCandidates returns the level-1 candidates: one singleton per
// distinct item (spec §4.2).
func initialCandidates(items []string) []models.Itemset {
	candidates := make([]models.Itemset, len(items))
	for i, item := range items {
		candidates[i] = models.Itemset{item}
	}
	return candidates
}

// nextCandidates produces the level-k candidate set from the confirmed
// frequent (k-1)-itemsets, by joining every k-subset of their union and,
// for k >= 3, pruning any candidate with an infrequent (k-1)-subset
// (spec §4.2). At k == 2 the prune step is a no-op: every 1-subset of a
// 2-candidate is a singleton, and singletons are frequent by construction.
func nextCandidates(frequent []models.Itemset, k int) []models.Itemset {
	universe := unionItems(frequent)
	if len(universe) < k {
		return nil
	}

	var frequentSet map[string]struct{}
	if k >= 3 {
		frequentSet = itemsetKeySet(frequent)
	}

	candidates := make([]models.Itemset, 0)
	combinations(universe, k, func(combo []string) {
		candidate := make(models.Itemset, k)
		copy(candidate, combo)

		if k >= 3 && !allSubsetsFrequent(candidate, frequentSet) {
			return
		}
		candidates = append(candidates, candidate)
	})
	return candidates
}

// unionItems returns the sorted set of distinct items appearing across
// every itemset in frequent.
func unionItems(frequent []models.Itemset) []string {
	seen := make(map[string]struct{})
	for _, itemset := range frequent {
		for _, item := range itemset {
			seen[item] = struct{}{}
		}
	}
	items := make([]string, 0, len(seen))
	for item := range seen {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// itemsetKeySet builds a hash-lookup structure keyed by the canonical
// joined form of each itemset, so a (k-1)-subset of a candidate can be
// probed in O(k).
func itemsetKeySet(itemsets []models.Itemset) map[string]struct{} {
	set := make(map[string]struct{}, len(itemsets))
	for _, itemset := range itemsets {
		set[itemsetKey(itemset)] = struct{}{}
	}
	return set
}

func itemsetKey(itemset []string) string {
	return strings.Join(itemset, "\x00")
}

// allSubsetsFrequent reports whether every (k-1)-subset of candidate is
// present in the frequent-itemset lookup.
func allSubsetsFrequent(candidate models.Itemset, frequentSet map[string]struct{}) bool {
	for skip := range candidate {
		subset := make([]string, 0, len(candidate)-1)
		for i, item := range candidate {
			if i == skip {
				continue
			}
			subset = append(subset, item)
		}
		if _, ok := frequentSet[itemsetKey(subset)]; !ok {
			return false
		}
	}
	return true
}

// combinations calls visit with every length-k combination of items, in
// lexicographic order. The slice passed to visit is reused and overwritten
// by the next combination, so visit must copy it to keep it.
func combinations(items []string, k int, visit func(combo []string)) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}
	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}
	combo := make([]string, k)
	for {
		for i, idx := range indices {
			combo[i] = items[idx]
		}
		visit(combo)

		i := k - 1
		for i >= 0 && indices[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}
