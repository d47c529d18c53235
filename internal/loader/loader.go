// Package loader implements the four dataset-shaping conventions from
// spec §6: Basket, Detail, Sparse, and Nominal. It is a collaborator of
// the mining core, not part of it — the core only ever sees
// []models.RawTransaction.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ricearaul/apriori-engine/internal/models"
)

// MaxColumns bounds how many dataset columns a caller may select before
// the loader starts silently dropping the overflow (spec §7's
// VocabularyOverflow), mirroring the original tool's 999-column ceiling.
const MaxColumns = 999

// OverflowFunc is called when the requested column list is truncated; the
// default is a no-op, callers that want to log the drop set their own.
type OverflowFunc func(requested, kept int)

func readCSV(path, sep string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %q", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	if sep != "" {
		reader.Comma = rune(sep[0])
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset %q", path)
	}
	return records, nil
}

func clampColumns(columns []string, overflow OverflowFunc) []string {
	if len(columns) <= MaxColumns {
		return columns
	}
	if overflow != nil {
		overflow(len(columns), MaxColumns)
	}
	return columns[:MaxColumns]
}

// LoadBasket implements dataset type 1: each row is a transaction. With no
// columns requested, every field of every row is an item (no header is
// assumed). With columns requested, row 0 is treated as a header and only
// those named columns are read. Cells equal to absentSentinel are
// stripped.
func LoadBasket(path, sep, absentSentinel string, columns []string, overflow OverflowFunc) ([]models.RawTransaction, error) {
	records, err := readCSV(path, sep)
	if err != nil {
		return nil, err
	}
	columns = clampColumns(columns, overflow)

	var selected []int
	rows := records
	if len(columns) > 0 && len(records) > 0 {
		header := records[0]
		selected = make([]int, 0, len(columns))
		for _, want := range columns {
			for i, have := range header {
				if have == want {
					selected = append(selected, i)
					break
				}
			}
		}
		rows = records[1:]
	}

	transactions := make([]models.RawTransaction, 0, len(rows))
	for _, row := range rows {
		var fields []string
		if selected != nil {
			fields = make([]string, 0, len(selected))
			for _, i := range selected {
				if i < len(row) {
					fields = append(fields, row[i])
				}
			}
		} else {
			fields = row
		}

		tx := make(models.RawTransaction, 0, len(fields))
		for _, item := range fields {
			item = strings.TrimSpace(item)
			if item == "" || item == absentSentinel {
				continue
			}
			tx = append(tx, item)
		}
		if len(tx) > 0 {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// LoadDetail implements dataset type 2: long-form (group, item) rows. A
// header row is mandatory; groupColumn and itemColumn name it. Items
// within a group are de-duplicated and sorted; groups with fewer than two
// distinct items are discarded (spec §6).
func LoadDetail(path, sep, groupColumn, itemColumn string) ([]models.RawTransaction, error) {
	records, err := readCSV(path, sep)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	groupIdx, itemIdx := -1, -1
	for i, col := range header {
		switch col {
		case groupColumn:
			groupIdx = i
		case itemColumn:
			itemIdx = i
		}
	}
	if groupIdx == -1 || itemIdx == -1 {
		return nil, errors.Errorf("detail dataset missing group/item column %q/%q", groupColumn, itemColumn)
	}

	order := make([]string, 0)
	groups := make(map[string]map[string]struct{})
	for _, row := range records[1:] {
		if groupIdx >= len(row) || itemIdx >= len(row) {
			continue
		}
		group := strings.TrimSpace(row[groupIdx])
		item := strings.TrimSpace(row[itemIdx])
		if group == "" || item == "" {
			continue
		}
		if _, seen := groups[group]; !seen {
			groups[group] = make(map[string]struct{})
			order = append(order, group)
		}
		groups[group][item] = struct{}{}
	}

	transactions := make([]models.RawTransaction, 0, len(order))
	for _, group := range order {
		items := groups[group]
		if len(items) < 2 {
			continue
		}
		tx := make(models.RawTransaction, 0, len(items))
		for item := range items {
			tx = append(tx, item)
		}
		sort.Strings(tx)
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// LoadSparse implements dataset type 3: wide form where a selected
// column stands for one item. A row carries that item iff the column's
// cell is present (non-empty and not absentSentinel); the item
// identifier is the column's name, not the cell's content (mirrors
// Main04.py's datasetType==3 substitution of the column name for the
// cell). A header row is mandatory and columns names the item columns
// to read.
func LoadSparse(path, sep, absentSentinel string, columns []string, overflow OverflowFunc) ([]models.RawTransaction, error) {
	records, err := readCSV(path, sep)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	columns = clampColumns(columns, overflow)

	header := records[0]
	selected := make([]int, 0, len(columns))
	names := make([]string, 0, len(columns))
	for _, want := range columns {
		for i, have := range header {
			if have == want {
				selected = append(selected, i)
				names = append(names, want)
				break
			}
		}
	}

	transactions := make([]models.RawTransaction, 0, len(records)-1)
	for _, row := range records[1:] {
		tx := make(models.RawTransaction, 0, len(selected))
		for k, i := range selected {
			if i >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[i])
			if value == "" || value == absentSentinel {
				continue
			}
			tx = append(tx, names[k])
		}
		if len(tx) > 0 {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// LoadNominal implements dataset type 4: wide form where every selected
// column's value is synthesized into a "column=value" item identifier. A
// header row is optional; when columns is empty every column of the row
// is used, addressed positionally as "col<N>=value".
func LoadNominal(path, sep string, columns []string, overflow OverflowFunc) ([]models.RawTransaction, error) {
	records, err := readCSV(path, sep)
	if err != nil {
		return nil, err
	}
	columns = clampColumns(columns, overflow)

	var selected []int
	var names []string
	rows := records
	if len(columns) > 0 && len(records) > 0 {
		header := records[0]
		for _, want := range columns {
			for i, have := range header {
				if have == want {
					selected = append(selected, i)
					names = append(names, want)
					break
				}
			}
		}
		rows = records[1:]
	}

	transactions := make([]models.RawTransaction, 0, len(rows))
	for _, row := range rows {
		tx := make(models.RawTransaction, 0, len(row))
		if selected != nil {
			for k, i := range selected {
				if i >= len(row) {
					continue
				}
				tx = append(tx, fmt.Sprintf("%s=%s", names[k], strings.TrimSpace(row[i])))
			}
		} else {
			for i, value := range row {
				tx = append(tx, fmt.Sprintf("col%d=%s", i, strings.TrimSpace(value)))
			}
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// Load dispatches to the convention named by datasetType (1-4), matching
// the numbering from spec §6 / the original tool's datasetType parameter.
func Load(path string, datasetType int, sep, absentSentinel, groupColumn, itemColumn string, columns []string, overflow OverflowFunc) ([]models.RawTransaction, error) {
	switch datasetType {
	case 1:
		return LoadBasket(path, sep, absentSentinel, columns, overflow)
	case 2:
		return LoadDetail(path, sep, groupColumn, itemColumn)
	case 3:
		return LoadSparse(path, sep, absentSentinel, columns, overflow)
	case 4:
		return LoadNominal(path, sep, columns, overflow)
	default:
		return nil, errors.Errorf("unknown dataset type %d", datasetType)
	}
}
