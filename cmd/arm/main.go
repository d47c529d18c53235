// Command arm mines association rules from a transactional CSV dataset
// using the Apriori algorithm. It wires the loader, config, engine, and
// output packages together; none of the mining logic lives here.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/engine"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/loader"
	"github.com/ricearaul/apriori-engine/internal/output"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var (
		input         = flag.String("input", "", "path to the dataset CSV file (required)")
		datasetType   = flag.String("type", "basket", "dataset convention: basket|detail|sparse|nominal")
		sep           = flag.String("sep", ",", "dataset field separator")
		absent        = flag.String("absent", "", "sentinel value denoting an absent item")
		groupCol      = flag.String("group-col", "", "group-id column (detail convention)")
		itemCol       = flag.String("item-col", "", "item column (detail convention)")
		columns       = flag.String("columns", "", "comma-separated item columns (basket/sparse/nominal)")
		minSupport    = flag.Float64("min-support", 0.01, "minimum itemset support (0,1]")
		minConfidence = flag.Float64("min-confidence", 0.2, "minimum rule confidence (0,1]")
		minLift       = flag.Float64("min-lift", 1.0, "minimum rule lift (0,inf)")
		maxLength     = flag.Int("max-length", 4, "maximum itemset length, inclusive")
		maxRules      = flag.Int("max-rules", 1000, "rule-count ceiling before mining halts")
		redundancy    = flag.Int("redundancy", 0, "redundancy filter bitmask 0-7")
		sortKey       = flag.String("sort", "lift", "sort key: lhs|rhs|confidence|lift|conviction|lhs-support|rhs-support|support")
		descending    = flag.Bool("desc", true, "sort descending")
		format        = flag.String("format", "text", "output format: text|json")
		out           = flag.String("out", "", "output file path (stdout if empty)")
		publicOut     = flag.String("public-out", "", "optional second JSON output path")
		itemsetsOut   = flag.String("itemsets", "", "optional path to write frequent itemsets CSV")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: arm -input FILE [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Config{
		MinSupport:     *minSupport,
		MinConfidence:  *minConfidence,
		MinLift:        *minLift,
		MaxLength:      *maxLength,
		MaxRules:       *maxRules,
		RedundancyMask: *redundancy,
		DatasetType:    parseDatasetType(*datasetType),
		Separator:      *sep,
		AbsentSentinel: *absent,
		GroupColumn:    *groupCol,
		ItemColumn:     *itemCol,
		Columns:        splitColumns(*columns),
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	loadStart := time.Now()
	transactions, err := loader.Load(*input, int(cfg.DatasetType), cfg.Separator, cfg.AbsentSentinel,
		cfg.GroupColumn, cfg.ItemColumn, cfg.Columns, func(requested, kept int) {
			log.Warn().Int("requested", requested).Int("kept", kept).Msg("column list truncated")
		})
	if err != nil {
		log.Fatal().Err(err).Msg("loading dataset")
	}
	loadTime := time.Since(loadStart)
	log.Info().Int("transactions", len(transactions)).Dur("elapsed", loadTime).Msg("dataset loaded")

	if *itemsetsOut != "" {
		idx := index.New(transactions)
		itemsets := engine.FindFrequentItemsets(idx, cfg)
		if err := output.WriteItemsetsCSV(itemsets, *itemsetsOut); err != nil {
			log.Fatal().Err(err).Msg("writing itemsets")
		}
		log.Info().Int("itemsets", len(itemsets)).Msg("itemsets written")
	}

	mineStart := time.Now()
	result, err := engine.Mine(transactions, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("mining failed")
	}
	mineTime := time.Since(mineStart)
	log.Info().Int("rules", len(result.Rules)).Dur("elapsed", mineTime).Str("marker", result.Marker).Msg("mining finished")

	output.Sort(result.Rules, parseSortKey(*sortKey), *descending)

	meta := output.RunMeta{
		Records:       len(transactions),
		RecordTime:    loadTime,
		RuleCount:     len(result.Rules),
		MiningTime:    mineTime,
		MinSupport:    cfg.MinSupport,
		MinConfidence: cfg.MinConfidence,
		MinLift:       cfg.MinLift,
		MaxLength:     cfg.MaxLength,
		Marker:        result.Marker,
	}

	w := os.Stdout
	var file *os.File
	if *out != "" {
		file, err = os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("creating output file")
		}
		defer file.Close()
	}

	writeTo := func(target *os.File) error {
		if *format == "json" {
			var public *os.File
			if *publicOut != "" {
				public, err = os.Create(*publicOut)
				if err != nil {
					return err
				}
				defer public.Close()
			}
			return output.WriteJSON(target, result.Rules, meta, public)
		}
		return output.WriteText(target, result.Rules, meta)
	}

	if file != nil {
		if err := writeTo(file); err != nil {
			log.Fatal().Err(err).Msg("writing output file")
		}
	} else if err := writeTo(w); err != nil {
		log.Fatal().Err(err).Msg("writing output")
	}
}

func parseDatasetType(s string) config.DatasetType {
	switch strings.ToLower(s) {
	case "detail":
		return config.Detail
	case "sparse":
		return config.Sparse
	case "nominal":
		return config.Nominal
	default:
		return config.Basket
	}
}

func splitColumns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseSortKey(s string) output.SortKey {
	switch strings.ToLower(s) {
	case "lhs":
		return output.ByLHS
	case "rhs":
		return output.ByRHS
	case "confidence":
		return output.ByConfidence
	case "conviction":
		return output.ByConviction
	case "lhs-support":
		return output.ByLHSSupport
	case "rhs-support":
		return output.ByRHSSupport
	case "support":
		return output.ByRuleSupport
	default:
		return output.ByLift
	}
}
