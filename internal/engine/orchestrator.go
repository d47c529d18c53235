// Package engine implements the Apriori mining core: level-wise frequent
// itemset discovery, rule enumeration, and redundancy filtering (spec
// §4.2-§4.6). It is single-threaded and synchronous (spec §5); Mine is the
// main entry point, and FindFrequentItemsets, RulesForItemset and
// FilterRedundant are exported for callers that need a single stage.
package engine

import (
	"fmt"

	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/models"
)

// Result is everything Mine hands back to its caller.
type Result struct {
	Rules []models.Rule
	// Marker is the "@NNNN" diagnostic string from spec §6, set only
	// when the max-rules ceiling was hit mid-run.
	Marker string
}

// Mine is the core's single external entry point (spec §6):
// transactions + Configuration -> rules. transactions with zero elements
// produce an empty, unmarked Result (spec §7's EmptyInput case), not an
// error.
func Mine(transactions []models.RawTransaction, cfg config.Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	idx := index.New(transactions)

	var raw []models.Rule
	var marker string
	mineLevelWise(idx, cfg, func(fi models.FrequentItemset) bool {
		if fi.Level() < 2 {
			return false
		}
		rules := RulesForItemset(idx, fi, cfg)
		if len(rules) == 0 {
			return false
		}
		raw = append(raw, rules...)
		if len(raw) >= cfg.MaxRules {
			marker = fmt.Sprintf("@%04d", cfg.MaxRules)
			return true
		}
		return false
	})

	return Result{
		Rules:  FilterRedundant(raw, cfg.RedundancyMask),
		Marker: marker,
	}, nil
}
