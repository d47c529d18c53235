// Package index builds the inverted posting-list index the engine queries
// to answer "how many transactions contain itemset S?" (spec §4.1).
package index

import (
	"sort"

	"github.com/ricearaul/apriori-engine/internal/models"
)

// TransactionIndex holds an inverted item -> posting-list index over the
// normalized transactions; the transactions themselves are not kept. It is
// built once and never mutated.
type TransactionIndex struct {
	n int // number of transactions

	// itemID interns each distinct item string to a dense integer so
	// posting-list operations never touch the string comparator.
	itemID map[string]int
	items  []string // itemID -> item string, in first-seen order

	// postings[itemID] is the ascending-sorted list of transaction ids
	// containing that item.
	postings [][]int
}

// New builds a TransactionIndex from a sequence of raw transactions.
// Duplicate items within a transaction are coalesced, so its id is
// recorded at most once in each relevant posting list.
func New(transactions []models.RawTransaction) *TransactionIndex {
	idx := &TransactionIndex{
		itemID: make(map[string]int),
	}

	for txID, tx := range transactions {
		seen := make(map[string]struct{}, len(tx))
		for _, item := range tx {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}

			id, ok := idx.itemID[item]
			if !ok {
				id = len(idx.items)
				idx.itemID[item] = id
				idx.items = append(idx.items, item)
				idx.postings = append(idx.postings, nil)
			}
			idx.postings[id] = append(idx.postings[id], txID)
		}
	}
	idx.n = len(transactions)
	return idx
}

// N returns the number of transactions the index was built from.
func (idx *TransactionIndex) N() int {
	return idx.n
}

// Items returns the sorted list of distinct items seen across all
// transactions. The returned slice must not be mutated by the caller.
func (idx *TransactionIndex) Items() []string {
	sorted := make([]string, len(idx.items))
	copy(sorted, idx.items)
	sort.Strings(sorted)
	return sorted
}

// Count answers spec §4.1's count(S) contract: the number of transactions
// whose item set contains every item in S. An empty S counts as every
// transaction; an S containing an item absent from the vocabulary counts
// as zero.
func (idx *TransactionIndex) Count(itemset []string) int {
	if len(itemset) == 0 {
		return idx.n
	}
	if idx.n == 0 {
		return 0
	}

	lists := make([][]int, 0, len(itemset))
	for _, item := range itemset {
		id, ok := idx.itemID[item]
		if !ok {
			return 0
		}
		lists = append(lists, idx.postings[id])
	}

	// Smallest-first so the running intersection shrinks fastest.
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	running := lists[0]
	for _, next := range lists[1:] {
		running = intersectSorted(running, next)
		if len(running) == 0 {
			return 0
		}
	}
	return len(running)
}

// intersectSorted merges two ascending-sorted transaction-id lists.
func intersectSorted(a, b []int) []int {
	result := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			result = append(result, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return result
}
