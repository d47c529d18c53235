// Package output renders a mined rule list for presentation: sorting by
// one of the eight presentation keys from spec §6 and serializing to the
// plain-text or JSON shapes the original tool produced.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/ricearaul/apriori-engine/internal/models"
)

// SortKey selects one of the eight presentation sort keys from spec §6.
type SortKey int

const (
	ByLHS SortKey = iota
	ByRHS
	ByConfidence
	ByLift
	ByConviction
	ByLHSSupport
	ByRHSSupport
	ByRuleSupport
)

// Sort orders rules by key, stably so ties keep the Apriori emission
// order (itself unspecified per spec §4.3, but deterministic for a given
// run).
func Sort(rules []models.Rule, key SortKey, descending bool) {
	less := func(i, j int) bool {
		switch key {
		case ByLHS:
			return strings.Join(rules[i].LHS, ",") < strings.Join(rules[j].LHS, ",")
		case ByRHS:
			return strings.Join(rules[i].RHS, ",") < strings.Join(rules[j].RHS, ",")
		case ByConfidence:
			return rules[i].Confidence < rules[j].Confidence
		case ByLift:
			return rules[i].Lift < rules[j].Lift
		case ByConviction:
			return rules[i].Conviction < rules[j].Conviction
		case ByLHSSupport:
			return rules[i].LHSSupport < rules[j].LHSSupport
		case ByRHSSupport:
			return rules[i].RHSSupport < rules[j].RHSSupport
		default:
			return rules[i].RuleSupport < rules[j].RuleSupport
		}
	}
	if descending {
		base := less
		less = func(i, j int) bool { return base(j, i) }
	}
	sort.SliceStable(rules, less)
}

// RunMeta carries the run-level banner fields the original tool printed
// alongside its rule list.
type RunMeta struct {
	Records      int
	RecordTime   time.Duration
	RuleCount    int
	MiningTime   time.Duration
	MinSupport   float64
	MinConfidence float64
	MinLift      float64
	MaxLength    int
	Marker       string
}

func itemsetString(items []string) string {
	return "{" + strings.Join(items, ", ") + "}"
}

// WriteText renders rules in the numbered, human-readable shape the
// original tool's outputType==1 produced.
func WriteText(w io.Writer, rules []models.Rule, meta RunMeta) error {
	fmt.Fprintf(w, "Input Parameters\n")
	fmt.Fprintf(w, "Minimum Support   :%.3f     Minimum confidence:%.3f\n", meta.MinSupport, meta.MinConfidence)
	fmt.Fprintf(w, "Minimum Lift      :%.3f     Maximum rule items:%05d\n", meta.MinLift, meta.MaxLength)
	fmt.Fprintf(w, "-----------------------------------------------------\n\n")
	fmt.Fprintf(w, "Records           :%06d   Transformation time:%.3f\n", meta.Records, meta.RecordTime.Seconds())
	fmt.Fprintf(w, "Association Rules :%06d            Time elapsed:%.3f\n", meta.RuleCount, meta.MiningTime.Seconds())
	fmt.Fprintf(w, "-----------------------------------------------------\n")

	for i, rule := range rules {
		fmt.Fprintf(w, "%4d) %s([%d]%.3f) ==> %s([%d]%.3f)\n",
			i+1,
			itemsetString(rule.LHS), rule.LHSCount, rule.LHSSupport,
			itemsetString(rule.RHS), rule.RHSCount, rule.RHSSupport)
		fmt.Fprintf(w, "        Count:%05d  Supp:%.3f  Conf:%.3f  Lift:%.3f  Conv:%.3f  Levr:%.3f\n",
			rule.RuleCount, rule.RuleSupport, rule.Confidence, rule.Lift, rule.Conviction, rule.Leverage)
	}

	if meta.Marker != "" {
		fmt.Fprintf(w, "%s\n", meta.Marker)
	}
	return nil
}

// jsonRule is the flat, original-tool-compatible shape each rule takes in
// the JSON sink.
type jsonRule struct {
	LHS         []string `json:"LHS"`
	RHS         []string `json:"RHS"`
	Confidence  float64  `json:"Confidence"`
	Lift        float64  `json:"Lift"`
	Conviction  float64  `json:"Conviction"`
	Leverage    float64  `json:"Leverage"`
	LHSCount    int      `json:"LHS_Count"`
	LHSSupport  float64  `json:"LHS_Support"`
	RHSCount    int      `json:"RHS_Count"`
	RHSSupport  float64  `json:"RHS_Support"`
	Support     float64  `json:"Support"`
	Count       int      `json:"Count"`
}

type jsonReport struct {
	MinSupport    float64    `json:"min_support"`
	MinConfidence float64    `json:"min_confidence"`
	MinLift       float64    `json:"min_lift"`
	MaxLength     int        `json:"max_length"`
	Records       int        `json:"records"`
	RecordTime    float64    `json:"records_creation_time"`
	RulesCount    int        `json:"rules_count"`
	RulesTime     float64    `json:"rules_creation_time"`
	Marker        string     `json:"marker,omitempty"`
	Rules         []jsonRule `json:"rules"`
}

func toReport(rules []models.Rule, meta RunMeta) jsonReport {
	report := jsonReport{
		MinSupport:    meta.MinSupport,
		MinConfidence: meta.MinConfidence,
		MinLift:       meta.MinLift,
		MaxLength:     meta.MaxLength,
		Records:       meta.Records,
		RecordTime:    meta.RecordTime.Seconds(),
		RulesCount:    meta.RuleCount,
		RulesTime:     meta.MiningTime.Seconds(),
		Marker:        meta.Marker,
		Rules:         make([]jsonRule, len(rules)),
	}
	for i, rule := range rules {
		report.Rules[i] = jsonRule{
			LHS:        rule.LHS,
			RHS:        rule.RHS,
			Confidence: rule.Confidence,
			Lift:       rule.Lift,
			Conviction: rule.Conviction,
			Leverage:   rule.Leverage,
			LHSCount:   rule.LHSCount,
			LHSSupport: rule.LHSSupport,
			RHSCount:   rule.RHSCount,
			RHSSupport: rule.RHSSupport,
			Support:    rule.RuleSupport,
			Count:      rule.RuleCount,
		}
	}
	return report
}

// WriteJSON renders rules as a single JSON object matching the original
// tool's outputType==2/3 shape. When public is non-nil, the same document
// is also written there (the original's "public copy" behavior).
func WriteJSON(w io.Writer, rules []models.Rule, meta RunMeta, public io.Writer) error {
	report := toReport(rules, meta)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding rules as json")
	}

	if public != nil {
		pubEnc := json.NewEncoder(public)
		pubEnc.SetIndent("", "  ")
		if err := pubEnc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding public rules copy as json")
		}
	}
	return nil
}

// WriteItemsetsCSV saves frequent itemsets to a CSV file, the optional
// "-itemsets FILE" artifact from spec §6's original tool.
func WriteItemsetsCSV(itemsets []models.FrequentItemset, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "creating itemsets file %q", filePath)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"support", "itemset", "length"}); err != nil {
		return errors.Wrap(err, "writing itemsets header")
	}
	for _, itemset := range itemsets {
		record := []string{
			fmt.Sprintf("%.6f", itemset.Support),
			itemsetString(itemset.Items),
			fmt.Sprintf("%d", itemset.Level()),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "writing itemset row")
		}
	}
	return nil
}
