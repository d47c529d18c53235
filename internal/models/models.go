// Package models defines the shared data types passed between the loader,
// index, engine, and output layers of the mining pipeline.
package models

// RawTransaction is a single transaction as handed to the index by a
// loader: an unordered, possibly-duplicated set of item identifiers.
type RawTransaction []string

// Itemset is a canonical, ascending-sorted sequence of items. Two itemsets
// with the same members always compare equal as slices.
type Itemset []string

// FrequentItemset is an itemset whose support met the configured minimum.
type FrequentItemset struct {
	Items   Itemset
	Count   int
	Support float64
}

// Level reports the itemset's size, i.e. its position in the level-wise
// Apriori lattice.
func (f FrequentItemset) Level() int {
	return len(f.Items)
}

// Rule is a directed LHS => RHS partition of a FrequentItemset, carrying
// the twelve attributes spec'd for association rules.
type Rule struct {
	LHS Itemset
	RHS Itemset

	LHSCount   int
	LHSSupport float64

	RHSCount   int
	RHSSupport float64

	RuleCount   int
	RuleSupport float64

	Confidence float64
	Lift       float64
	Leverage   float64
	Conviction float64
}

// ConvictionSentinel is reported in place of a mathematically infinite
// conviction when a rule's confidence is exactly 1.0.
const ConvictionSentinel = 100.0
