// Command benchmark sweeps the mining engine across a grid of
// support/confidence/max-length configurations over one dataset and
// records timing, result-size, and memory metrics for each combination.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/ricearaul/apriori-engine/internal/config"
	"github.com/ricearaul/apriori-engine/internal/engine"
	"github.com/ricearaul/apriori-engine/internal/index"
	"github.com/ricearaul/apriori-engine/internal/loader"
	"github.com/ricearaul/apriori-engine/internal/models"
)

type benchmarkResult struct {
	MinSupport    float64
	MinConfidence float64
	MaxLength     int
	ItemsetTime   time.Duration
	RuleTime      time.Duration
	TotalTime     time.Duration
	ItemsetCount  int
	RuleCount     int
	Capped        bool
	Memory        uint64
}

func main() {
	cpuProfile := flag.Bool("cpuprofile", false, "profile the whole sweep with github.com/pkg/profile")
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		fmt.Println("Usage: benchmark [-cpuprofile] <csv_file> [output_file]")
		fmt.Println("  - csv_file: Path to the basket-convention CSV dataset")
		fmt.Println("  - output_file: Optional path to save benchmark results (default: benchmark_results.csv)")
		os.Exit(1)
	}
	if *cpuProfile {
		defer profile.Start().Stop()
	}

	inputFile := args[0]
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("Input file %s does not exist", inputFile)
	}

	outputFile := "benchmark_results.csv"
	if len(args) > 1 {
		outputFile = args[1]
	}

	minSupports := []float64{0.001, 0.005, 0.01, 0.02, 0.05}
	minConfidences := []float64{0.1, 0.2, 0.3, 0.5, 0.7}
	maxLengths := []int{2, 3, 4, 5}

	fmt.Println("Loading dataset...")
	transactions, err := loader.LoadBasket(inputFile, ",", "", nil, nil)
	if err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	idx := index.New(transactions)
	fmt.Printf("Dataset loaded with %d transactions and %d unique items\n\n", idx.N(), len(idx.Items()))

	fmt.Printf("%-10s %-10s %-10s %-15s %-15s %-15s %-10s %-10s %-8s\n",
		"Support", "Confidence", "MaxLen", "Itemset Time", "Rule Time", "Total Time", "Itemsets", "Rules", "Capped")
	fmt.Println(strings.Repeat("-", 110))

	results := make([]benchmarkResult, 0)
	for _, minSupport := range minSupports {
		for _, minConfidence := range minConfidences {
			for _, maxLength := range maxLengths {
				if minSupport < 0.005 && maxLength > 3 {
					continue
				}

				cfg := config.Config{
					MinSupport:    minSupport,
					MinConfidence: minConfidence,
					MinLift:       1.0,
					MaxLength:     maxLength,
					MaxRules:      1000,
				}
				result := runBenchmark(idx, transactions, cfg)
				results = append(results, result)

				fmt.Printf("%-10.4f %-10.4f %-10d %-15s %-15s %-15s %-10d %-10d %-8t\n",
					minSupport, minConfidence, maxLength,
					formatDuration(result.ItemsetTime),
					formatDuration(result.RuleTime),
					formatDuration(result.TotalTime),
					result.ItemsetCount,
					result.RuleCount,
					result.Capped)

				runtime.GC()
			}
		}
	}

	if err := saveResultsToCSV(results, outputFile); err != nil {
		log.Fatalf("Error saving results: %v", err)
	}
	fmt.Printf("\nBenchmark completed. Results saved to %s\n", outputFile)

	memProfile, err := os.Create("memory_profile.prof")
	if err != nil {
		log.Fatal("Could not create memory profile: ", err)
	}
	defer memProfile.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(memProfile); err != nil {
		log.Fatal("Could not write memory profile: ", err)
	}
}

func runBenchmark(idx *index.TransactionIndex, transactions []models.RawTransaction, cfg config.Config) benchmarkResult {
	startTotal := time.Now()
	var memStats runtime.MemStats

	startItemset := time.Now()
	itemsets := engine.FindFrequentItemsets(idx, cfg)
	itemsetTime := time.Since(startItemset)

	startRule := time.Now()
	result, err := engine.Mine(transactions, cfg)
	if err != nil {
		log.Fatalf("mining failed: %v", err)
	}
	ruleTime := time.Since(startRule)

	runtime.ReadMemStats(&memStats)

	return benchmarkResult{
		MinSupport:    cfg.MinSupport,
		MinConfidence: cfg.MinConfidence,
		MaxLength:     cfg.MaxLength,
		ItemsetTime:   itemsetTime,
		RuleTime:      ruleTime,
		TotalTime:     time.Since(startTotal),
		ItemsetCount:  len(itemsets),
		RuleCount:     len(result.Rules),
		Capped:        result.Marker != "",
		Memory:        memStats.Alloc,
	}
}

func saveResultsToCSV(results []benchmarkResult, outputFile string) error {
	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"min_support", "min_confidence", "max_length",
		"itemset_time_ms", "rule_time_ms", "total_time_ms",
		"itemset_count", "rule_count", "capped", "memory_usage_mb",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("error writing header: %v", err)
	}

	for _, result := range results {
		row := []string{
			fmt.Sprintf("%.6f", result.MinSupport),
			fmt.Sprintf("%.6f", result.MinConfidence),
			fmt.Sprintf("%d", result.MaxLength),
			fmt.Sprintf("%d", result.ItemsetTime.Milliseconds()),
			fmt.Sprintf("%d", result.RuleTime.Milliseconds()),
			fmt.Sprintf("%d", result.TotalTime.Milliseconds()),
			fmt.Sprintf("%d", result.ItemsetCount),
			fmt.Sprintf("%d", result.RuleCount),
			fmt.Sprintf("%t", result.Capped),
			fmt.Sprintf("%.2f", float64(result.Memory)/(1024*1024)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing result: %v", err)
		}
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d.Seconds() < 1 {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d.Minutes() < 1 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fm %.1fs", d.Minutes(), d.Seconds()-float64(int(d.Minutes()))*60)
}
