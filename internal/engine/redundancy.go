package engine

import "github.com/ricearaul/apriori-engine/internal/models"

const (
	// RedundancySwap drops a rule A=>B when B=>A exists with confidence
	// greater than or equal to it (spec §4.5 filter 1).
	RedundancySwap = 1 << iota
	// RedundancyFixedConsequent drops A=>B when every (|A|-1)-subset A'
	// has a rule A'=>B in the set (spec §4.5 filter 2).
	RedundancyFixedConsequent
	// RedundancyFixedAntecedent drops A=>B when every (|B|-1)-subset B'
	// has a rule A=>B' in the set (spec §4.5 filter 3).
	RedundancyFixedAntecedent
)

// FilterRedundant applies the bitmask-selected filters from spec §4.5 to
// rules, returning a new slice. All filters consult the original rule
// list, never a progressively-filtered one, so the result is a pure
// function of (rules, mask) independent of evaluation order.
func FilterRedundant(rules []models.Rule, mask int) []models.Rule {
	if mask == 0 {
		return append([]models.Rule(nil), rules...)
	}

	ridx := newRuleIndex(rules)

	kept := make([]models.Rule, 0, len(rules))
	for _, rule := range rules {
		if mask&RedundancySwap != 0 && swapDominates(rule, ridx) {
			continue
		}
		if mask&RedundancyFixedConsequent != 0 && subsumedByShorterLHS(rule, ridx) {
			continue
		}
		if mask&RedundancyFixedAntecedent != 0 && subsumedByShorterRHS(rule, ridx) {
			continue
		}
		kept = append(kept, rule)
	}
	return kept
}

// ruleIndex supports the O(1)-ish lookups the three redundancy filters
// need over the original, unfiltered rule list.
type ruleIndex struct {
	byLHSRHS map[string]models.Rule   // exact (LHS,RHS) -> rule, for swap lookups
	byRHS    map[string][]models.Rule // RHS key -> every rule with that RHS, for fixed-consequent
	byLHS    map[string][]models.Rule // LHS key -> every rule with that LHS, for fixed-antecedent
}

func newRuleIndex(rules []models.Rule) *ruleIndex {
	idx := &ruleIndex{
		byLHSRHS: make(map[string]models.Rule, len(rules)),
		byRHS:    make(map[string][]models.Rule),
		byLHS:    make(map[string][]models.Rule),
	}
	for _, rule := range rules {
		idx.byLHSRHS[itemsetKey(rule.LHS)+"=>"+itemsetKey(rule.RHS)] = rule
		idx.byRHS[itemsetKey(rule.RHS)] = append(idx.byRHS[itemsetKey(rule.RHS)], rule)
		idx.byLHS[itemsetKey(rule.LHS)] = append(idx.byLHS[itemsetKey(rule.LHS)], rule)
	}
	return idx
}

// swapDominates reports whether RHS=>LHS exists with confidence >= rule's,
// which per spec's documented (if debatable) tie behavior also drops
// rule when the reciprocal's confidence exactly ties.
func swapDominates(rule models.Rule, idx *ruleIndex) bool {
	reciprocal, ok := idx.byLHSRHS[itemsetKey(rule.RHS)+"=>"+itemsetKey(rule.LHS)]
	return ok && reciprocal.Confidence >= rule.Confidence
}

// subsumedByShorterLHS reports whether every (|LHS|-1)-subset of rule's
// LHS has its own rule to the same RHS.
func subsumedByShorterLHS(rule models.Rule, idx *ruleIndex) bool {
	if len(rule.LHS) < 2 {
		return false
	}
	rhsKey := itemsetKey(rule.RHS)
	found := 0
	combinations(rule.LHS, len(rule.LHS)-1, func(subset []string) {
		for _, candidate := range idx.byRHS[rhsKey] {
			if itemsetKey(candidate.LHS) == itemsetKey(subset) {
				found++
				return
			}
		}
	})
	return found == len(rule.LHS)
}

// subsumedByShorterRHS reports whether every (|RHS|-1)-subset of rule's
// RHS has its own rule from the same LHS.
func subsumedByShorterRHS(rule models.Rule, idx *ruleIndex) bool {
	if len(rule.RHS) < 2 {
		return false
	}
	lhsKey := itemsetKey(rule.LHS)
	found := 0
	combinations(rule.RHS, len(rule.RHS)-1, func(subset []string) {
		for _, candidate := range idx.byLHS[lhsKey] {
			if itemsetKey(candidate.RHS) == itemsetKey(subset) {
				found++
				return
			}
		}
	})
	return found == len(rule.RHS)
}
